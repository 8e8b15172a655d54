package index

import (
	"context"
	"time"

	"github.com/RoaringBitmap/roaring"

	"github.com/Chebil-Ilef/Indexation-Lab1/internal/metrics"
)

// How often a chunk worker polls for cancellation.
const cancelCheckInterval = 1024

// Build constructs an inverted index from tokenized documents. The position
// of a document in docs is its document ID. Duplicate terms within a
// document collapse to a single posting.
func Build(docs [][]string) Index {
	start := time.Now()

	partial, _ := buildChunk(context.Background(), docs, 0)
	idx := materialize(partial)

	metrics.BuildDuration.WithLabelValues("sequential").Observe(time.Since(start).Seconds())
	metrics.DocumentsIndexed.WithLabelValues("sequential").Add(float64(len(docs)))
	metrics.IndexTerms.Set(float64(len(idx)))
	return idx
}

// buildChunk indexes a contiguous slice of documents whose first document
// has ID base. The bitmap per term keeps postings deduplicated and sorted
// for free. Checks ctx periodically so a cancelled parallel build stops
// mid-chunk.
func buildChunk(ctx context.Context, docs [][]string, base uint32) (map[string]*roaring.Bitmap, error) {
	partial := make(map[string]*roaring.Bitmap)
	for i, tokens := range docs {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		id := base + uint32(i)
		for _, term := range tokens {
			bm, ok := partial[term]
			if !ok {
				bm = roaring.New()
				partial[term] = bm
			}
			bm.Add(id)
		}
	}
	return partial, nil
}

// materialize converts per-term bitmaps into final postings lists. Bitmaps
// iterate in ascending order, so the resulting lists satisfy the sorted
// invariant by construction.
func materialize(partial map[string]*roaring.Bitmap) Index {
	idx := make(Index, len(partial))
	for term, bm := range partial {
		idx[term] = bm.ToArray()
	}
	return idx
}
