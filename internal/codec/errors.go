package codec

import "errors"

var (
	ErrOutOfOrder      = errors.New("postings out of order")
	ErrTruncatedStream = errors.New("truncated vbyte stream")
	ErrValueOverflow   = errors.New("decoded value overflows")
)
