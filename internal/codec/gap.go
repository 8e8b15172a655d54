// Package codec implements gap encoding and variable-byte compression for
// postings lists.
package codec

import (
	"fmt"
	"math"
)

// GapEncode converts a sorted postings list into its gap sequence: the first
// element is kept as-is, every following element is replaced by its distance
// to the previous one. Returns ErrOutOfOrder if the input is not
// non-decreasing, since a decreasing pair has no representable gap.
func GapEncode(postings []uint32) ([]uint32, error) {
	if len(postings) == 0 {
		return nil, nil
	}
	gaps := make([]uint32, len(postings))
	gaps[0] = postings[0]
	for i := 1; i < len(postings); i++ {
		if postings[i] < postings[i-1] {
			return nil, fmt.Errorf("position %d: %d after %d: %w", i, postings[i], postings[i-1], ErrOutOfOrder)
		}
		gaps[i] = postings[i] - postings[i-1]
	}
	return gaps, nil
}

// GapDecode is the inverse of GapEncode: it rebuilds absolute document IDs
// by accumulating gaps. Returns ErrValueOverflow if an accumulated ID does
// not fit in 32 bits.
func GapDecode(gaps []uint32) ([]uint32, error) {
	if len(gaps) == 0 {
		return nil, nil
	}
	postings := make([]uint32, len(gaps))
	acc := uint64(gaps[0])
	postings[0] = gaps[0]
	for i := 1; i < len(gaps); i++ {
		acc += uint64(gaps[i])
		if acc > math.MaxUint32 {
			return nil, fmt.Errorf("position %d: %w", i, ErrValueOverflow)
		}
		postings[i] = uint32(acc)
	}
	return postings, nil
}
