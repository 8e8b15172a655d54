package sizeof

import (
	"strings"
	"testing"

	"github.com/Chebil-Ilef/Indexation-Lab1/internal/index"
)

func TestIndexGrowsWithContent(t *testing.T) {
	small := index.Index{"a": {0}}
	large := index.Index{
		"a":                {0, 1, 2, 3, 4, 5, 6, 7},
		"b":                {0, 1, 2, 3},
		"longer-term-name": {9},
	}

	if Index(small) >= Index(large) {
		t.Errorf("Index(small) = %d, Index(large) = %d; want small < large", Index(small), Index(large))
	}
	if Index(index.Index{}) == 0 {
		t.Error("empty index should still account for its header")
	}
}

func TestCompactSmallerThanIndex(t *testing.T) {
	// Dense postings compress to one byte per gap, so the compact form
	// must come out smaller than the 4-bytes-per-ID original.
	postings := make(index.Postings, 1000)
	for i := range postings {
		postings[i] = uint32(i)
	}
	idx := index.Index{"term": postings}

	compact, err := index.Compress(idx)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}

	if Compact(compact) >= Index(idx) {
		t.Errorf("Compact = %d, Index = %d; want compact < index", Compact(compact), Index(idx))
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
	}

	for _, tt := range tests {
		if got := FormatBytes(tt.n); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatBytes_Units(t *testing.T) {
	if got := FormatBytes(3 * 1024 * 1024); !strings.Contains(got, "MiB") {
		t.Errorf("FormatBytes(3 MiB) = %q, want MiB units", got)
	}
}
