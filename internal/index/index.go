// Package index implements an in-memory inverted index: construction from
// tokenized documents (sequential and parallel), in-place maintenance, and
// postings compression.
package index

import "sort"

// Postings is the sorted list of document IDs containing a term. A stored
// postings list is strictly increasing and never empty.
type Postings []uint32

// Index maps each term to its postings list. Terms are opaque strings
// produced by an upstream analyzer; the index never stores a term with an
// empty postings list.
type Index map[string]Postings

// Compact maps each term to its gap+vbyte encoded postings bytes.
type Compact map[string][]byte

// Terms returns the index terms in lexicographic order.
func (idx Index) Terms() []string {
	terms := make([]string, 0, len(idx))
	for term := range idx {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// Postings returns the postings list for a term, or nil if the term is
// absent. The returned slice is a copy and safe to retain.
func (idx Index) Postings(term string) Postings {
	p, ok := idx[term]
	if !ok {
		return nil
	}
	out := make(Postings, len(p))
	copy(out, p)
	return out
}

// Clone returns a deep copy of the index.
func (idx Index) Clone() Index {
	out := make(Index, len(idx))
	for term, p := range idx {
		cp := make(Postings, len(p))
		copy(cp, p)
		out[term] = cp
	}
	return out
}

// Equal reports whether two indexes hold the same terms with the same
// postings, posting for posting.
func (idx Index) Equal(other Index) bool {
	if len(idx) != len(other) {
		return false
	}
	for term, p := range idx {
		q, ok := other[term]
		if !ok || len(p) != len(q) {
			return false
		}
		for i := range p {
			if p[i] != q[i] {
				return false
			}
		}
	}
	return true
}

// Terms returns the compact index terms in lexicographic order.
func (c Compact) Terms() []string {
	terms := make([]string, 0, len(c))
	for term := range c {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
