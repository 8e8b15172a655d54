package codec

import (
	"fmt"
	"math"
)

// Variable-byte layout: each byte carries 7 payload bits, emitted from the
// least-significant group up. The high bit is clear on continuation bytes
// and set on the byte that completes a number, so every encoded number is
// self-delimiting within a stream.
const (
	payloadMask = 0x7F
	terminator  = 0x80
)

// EncodeNumber appends the variable-byte encoding of n to dst and returns
// the extended slice. Zero encodes to a single terminator byte.
func EncodeNumber(dst []byte, n uint64) []byte {
	for n >= 0x80 {
		dst = append(dst, byte(n&payloadMask))
		n >>= 7
	}
	return append(dst, byte(n)|terminator)
}

// EncodedLen reports how many bytes EncodeNumber emits for n.
func EncodedLen(n uint64) int {
	l := 1
	for n >= 0x80 {
		n >>= 7
		l++
	}
	return l
}

// DecodeStream decodes a concatenation of variable-byte numbers. Each byte
// contributes 7 bits above the bits accumulated so far; a terminator byte
// closes the current number. Returns ErrTruncatedStream if the input ends
// with an unterminated number and ErrValueOverflow if a number does not fit
// in 64 bits.
func DecodeStream(data []byte) ([]uint64, error) {
	var (
		numbers []uint64
		current uint64
		shift   uint
	)
	for i, b := range data {
		if shift >= 64 || (shift == 63 && b&payloadMask > 1) {
			return nil, fmt.Errorf("byte %d: %w", i, ErrValueOverflow)
		}
		current |= uint64(b&payloadMask) << shift
		if b&terminator != 0 {
			numbers = append(numbers, current)
			current = 0
			shift = 0
		} else {
			shift += 7
		}
	}
	if shift != 0 {
		return nil, ErrTruncatedStream
	}
	return numbers, nil
}

// EncodePostings encodes a gap sequence as a single byte stream, one
// variable-byte number per gap, in order.
func EncodePostings(gaps []uint32) []byte {
	out := make([]byte, 0, len(gaps))
	for _, g := range gaps {
		out = EncodeNumber(out, uint64(g))
	}
	return out
}

// DecodePostings is the inverse of EncodePostings. Returns ErrValueOverflow
// if a decoded gap does not fit in 32 bits.
func DecodePostings(data []byte) ([]uint32, error) {
	numbers, err := DecodeStream(data)
	if err != nil {
		return nil, err
	}
	gaps := make([]uint32, len(numbers))
	for i, n := range numbers {
		if n > math.MaxUint32 {
			return nil, fmt.Errorf("gap %d: %w", i, ErrValueOverflow)
		}
		gaps[i] = uint32(n)
	}
	return gaps, nil
}
