package index

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/Chebil-Ilef/Indexation-Lab1/internal/metrics"
)

// Options configures a parallel build.
type Options struct {
	// Workers is the number of concurrent chunk builders. Values below 1
	// select GOMAXPROCS.
	Workers int
}

func (o Options) workerCount() int {
	if o.Workers < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Workers
}

// BuildParallel constructs the same index as Build using a pool of chunk
// workers. The document set is split into contiguous chunks of roughly
// equal size, each worker indexes its chunk into a private partial index,
// and the partial indexes are merged only after every worker has finished.
// Merging is a set union per term, so the result is identical to Build for
// any worker count.
//
// If ctx is cancelled before the merge phase, no index is returned: the
// build fails as a whole rather than yielding a partial result.
func BuildParallel(ctx context.Context, docs [][]string, opts Options) (Index, error) {
	start := time.Now()
	workers := opts.workerCount()

	if len(docs) == 0 {
		return make(Index), nil
	}

	chunkSize := (len(docs) + workers - 1) / workers
	var bases []int
	for off := 0; off < len(docs); off += chunkSize {
		bases = append(bases, off)
	}

	partials := make([]map[string]*roaring.Bitmap, len(bases))
	g, gctx := errgroup.WithContext(ctx)
	for i, base := range bases {
		i, base := i, base
		end := base + chunkSize
		if end > len(docs) {
			end = len(docs)
		}
		chunk := docs[base:end]
		g.Go(func() error {
			partial, err := buildChunk(gctx, chunk, uint32(base))
			if err != nil {
				return fmt.Errorf("chunk at doc %d: %w", base, err)
			}
			partials[i] = partial
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("parallel build: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parallel build: %w", err)
	}

	idx := mergePartials(partials, workers)

	metrics.BuildDuration.WithLabelValues("parallel").Observe(time.Since(start).Seconds())
	metrics.DocumentsIndexed.WithLabelValues("parallel").Add(float64(len(docs)))
	metrics.IndexTerms.Set(float64(len(idx)))
	return idx, nil
}

// mergePartials unions the partial indexes into one. The term space is
// sharded by hash so shard workers own disjoint term sets and need no
// locking; union is commutative and associative, so the outcome does not
// depend on chunk completion order.
func mergePartials(partials []map[string]*roaring.Bitmap, shards int) Index {
	if shards < 1 {
		shards = 1
	}

	buckets := make([]map[string][]*roaring.Bitmap, shards)
	for s := range buckets {
		buckets[s] = make(map[string][]*roaring.Bitmap)
	}
	for _, partial := range partials {
		for term, bm := range partial {
			s := xxhash.Sum64String(term) % uint64(shards)
			buckets[s][term] = append(buckets[s][term], bm)
		}
	}

	results := make([]Index, shards)
	var wg sync.WaitGroup
	for s := 0; s < shards; s++ {
		s := s
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := make(Index, len(buckets[s]))
			for term, bms := range buckets[s] {
				if len(bms) == 1 {
					out[term] = bms[0].ToArray()
					continue
				}
				out[term] = roaring.FastOr(bms...).ToArray()
			}
			results[s] = out
		}()
	}
	wg.Wait()

	idx := make(Index)
	for _, part := range results {
		for term, postings := range part {
			idx[term] = postings
		}
	}
	return idx
}
