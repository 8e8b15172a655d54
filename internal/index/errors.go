package index

import "errors"

var (
	ErrEmptyPostings = errors.New("term with empty postings list")
)
