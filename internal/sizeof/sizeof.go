// Package sizeof estimates the in-memory footprint of index values and
// formats byte counts for reports. Estimates count headers and backing
// arrays, not allocator slack, so they are approximate by design.
package sizeof

import (
	"github.com/dustin/go-humanize"

	"github.com/Chebil-Ilef/Indexation-Lab1/internal/index"
)

// Header sizes on 64-bit platforms.
const (
	stringHeaderSize = 16
	sliceHeaderSize  = 24
	mapHeaderSize    = 48
	// Rough per-entry map bookkeeping: hash, tophash byte, bucket share.
	mapEntryOverhead = 16
)

// Index estimates the memory held by an uncompressed index.
func Index(idx index.Index) uint64 {
	var size uint64 = mapHeaderSize
	for term, postings := range idx {
		size += mapEntryOverhead
		size += stringHeaderSize + uint64(len(term))
		size += sliceHeaderSize + 4*uint64(len(postings))
	}
	return size
}

// Compact estimates the memory held by a compact index.
func Compact(c index.Compact) uint64 {
	var size uint64 = mapHeaderSize
	for term, data := range c {
		size += mapEntryOverhead
		size += stringHeaderSize + uint64(len(term))
		size += sliceHeaderSize + uint64(len(data))
	}
	return size
}

// FormatBytes renders a byte count in human-readable IEC units.
func FormatBytes(n uint64) string {
	return humanize.IBytes(n)
}
