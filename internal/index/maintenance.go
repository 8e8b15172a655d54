package index

import (
	"sort"

	"github.com/Chebil-Ilef/Indexation-Lab1/internal/metrics"
)

// AddDocument inserts docID into the postings list of every term in tokens,
// creating term entries as needed. Inserting an ID that is already present
// is a no-op, so the call is idempotent. Re-adding a document with a
// different token set is additive: postings under terms from earlier calls
// are left untouched.
//
// The index is mutated in place. Callers embedding the index in a
// concurrent service must serialize AddDocument, RemoveDocument, and any
// builder or compressor access to the same instance.
func (idx Index) AddDocument(docID uint32, tokens []string) {
	for _, term := range tokens {
		postings, ok := idx[term]
		if !ok {
			idx[term] = Postings{docID}
			continue
		}
		i := sort.Search(len(postings), func(i int) bool { return postings[i] >= docID })
		if i < len(postings) && postings[i] == docID {
			continue
		}
		postings = append(postings, 0)
		copy(postings[i+1:], postings[i:])
		postings[i] = docID
		idx[term] = postings
	}
	metrics.MaintenanceOps.WithLabelValues("add").Inc()
	metrics.IndexTerms.Set(float64(len(idx)))
}

// RemoveDocument deletes docID from every postings list that contains it.
// A term whose postings list becomes empty is removed from the index
// entirely. Removing an absent document is a no-op. The scan visits every
// term, so cost is linear in index size.
func (idx Index) RemoveDocument(docID uint32) {
	for term, postings := range idx {
		i := sort.Search(len(postings), func(i int) bool { return postings[i] >= docID })
		if i >= len(postings) || postings[i] != docID {
			continue
		}
		if len(postings) == 1 {
			delete(idx, term)
			continue
		}
		idx[term] = append(postings[:i], postings[i+1:]...)
	}
	metrics.MaintenanceOps.WithLabelValues("remove").Inc()
	metrics.IndexTerms.Set(float64(len(idx)))
}
