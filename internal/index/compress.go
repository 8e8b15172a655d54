package index

import (
	"fmt"
	"time"

	"github.com/Chebil-Ilef/Indexation-Lab1/internal/codec"
	"github.com/Chebil-Ilef/Indexation-Lab1/internal/metrics"
)

// Compress encodes every postings list as gaps followed by variable-byte
// bytes. The input index is not modified. Returns an error if a postings
// list violates the sorted invariant; the byte output per term is
// deterministic, so two equal indexes compress to identical bytes.
func Compress(idx Index) (Compact, error) {
	start := time.Now()

	compact := make(Compact, len(idx))
	for term, postings := range idx {
		if len(postings) == 0 {
			return nil, fmt.Errorf("compress term %q: %w", term, ErrEmptyPostings)
		}
		gaps, err := codec.GapEncode(postings)
		if err != nil {
			return nil, fmt.Errorf("compress term %q: %w", term, err)
		}
		compact[term] = codec.EncodePostings(gaps)
	}

	metrics.CodecDuration.WithLabelValues("compress").Observe(time.Since(start).Seconds())
	return compact, nil
}

// Decompress rebuilds an index from its compact form. Any term whose byte
// sequence does not fully decode rejects the whole compact index; a
// successful decompression is value-equal to the index that produced the
// compact form.
func Decompress(compact Compact) (Index, error) {
	start := time.Now()

	idx := make(Index, len(compact))
	for term, data := range compact {
		gaps, err := codec.DecodePostings(data)
		if err != nil {
			return nil, fmt.Errorf("decompress term %q: %w", term, err)
		}
		postings, err := codec.GapDecode(gaps)
		if err != nil {
			return nil, fmt.Errorf("decompress term %q: %w", term, err)
		}
		if len(postings) == 0 {
			return nil, fmt.Errorf("decompress term %q: %w", term, ErrEmptyPostings)
		}
		idx[term] = postings
	}

	metrics.CodecDuration.WithLabelValues("decompress").Observe(time.Since(start).Seconds())
	return idx, nil
}
