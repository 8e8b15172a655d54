package index

import (
	"fmt"
	"reflect"
	"testing"
)

func TestBuild(t *testing.T) {
	docs := [][]string{
		{"a", "b"},
		{"b", "c"},
	}

	idx := Build(docs)

	want := Index{
		"a": {0},
		"b": {0, 1},
		"c": {1},
	}
	if !idx.Equal(want) {
		t.Errorf("Build() = %v, want %v", idx, want)
	}
}

func TestBuild_Empty(t *testing.T) {
	idx := Build(nil)
	if len(idx) != 0 {
		t.Errorf("Build(nil) = %v, want empty index", idx)
	}

	// Documents with no tokens contribute nothing.
	idx = Build([][]string{{}, nil, {}})
	if len(idx) != 0 {
		t.Errorf("Build(empty docs) = %v, want empty index", idx)
	}
}

func TestBuild_DeduplicatesWithinDocument(t *testing.T) {
	docs := [][]string{
		{"x", "x", "y", "x"},
		{"y"},
	}

	idx := Build(docs)

	if got := idx["x"]; !reflect.DeepEqual(got, Postings{0}) {
		t.Errorf(`postings for "x" = %v, want [0]`, got)
	}
	if got := idx["y"]; !reflect.DeepEqual(got, Postings{0, 1}) {
		t.Errorf(`postings for "y" = %v, want [0 1]`, got)
	}
}

func TestBuild_PostingsSorted(t *testing.T) {
	var docs [][]string
	for i := 0; i < 100; i++ {
		docs = append(docs, []string{"common", fmt.Sprintf("term%d", i%7)})
	}

	idx := Build(docs)

	for term, postings := range idx {
		if len(postings) == 0 {
			t.Fatalf("term %q has empty postings", term)
		}
		for i := 1; i < len(postings); i++ {
			if postings[i] <= postings[i-1] {
				t.Fatalf("term %q postings not strictly increasing: %v", term, postings)
			}
		}
	}
	if got := len(idx["common"]); got != 100 {
		t.Errorf(`postings length for "common" = %d, want 100`, got)
	}
}

func TestIndex_Equal(t *testing.T) {
	a := Index{"x": {1, 2}, "y": {3}}

	tests := []struct {
		name  string
		other Index
		want  bool
	}{
		{"identical", Index{"x": {1, 2}, "y": {3}}, true},
		{"different posting", Index{"x": {1, 4}, "y": {3}}, false},
		{"missing term", Index{"x": {1, 2}}, false},
		{"extra term", Index{"x": {1, 2}, "y": {3}, "z": {0}}, false},
		{"different length", Index{"x": {1, 2, 3}, "y": {3}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIndex_Clone(t *testing.T) {
	orig := Build([][]string{{"a", "b"}, {"b"}})
	clone := orig.Clone()

	if !orig.Equal(clone) {
		t.Fatalf("clone %v not equal to original %v", clone, orig)
	}

	clone.RemoveDocument(0)
	want := Index{"a": {0}, "b": {0, 1}}
	if !orig.Equal(want) {
		t.Errorf("mutating clone changed original: %v", orig)
	}
}

func TestIndex_Terms(t *testing.T) {
	idx := Build([][]string{{"delta", "alpha"}, {"charlie", "bravo"}})

	got := idx.Terms()
	want := []string{"alpha", "bravo", "charlie", "delta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Terms() = %v, want %v", got, want)
	}
}

func TestIndex_Postings(t *testing.T) {
	idx := Build([][]string{{"a"}, {"a"}})

	p := idx.Postings("a")
	if !reflect.DeepEqual(p, Postings{0, 1}) {
		t.Fatalf(`Postings("a") = %v, want [0 1]`, p)
	}

	// Returned slice is a copy.
	p[0] = 99
	if got := idx.Postings("a"); !reflect.DeepEqual(got, Postings{0, 1}) {
		t.Errorf("mutating returned postings changed index: %v", got)
	}

	if got := idx.Postings("missing"); got != nil {
		t.Errorf(`Postings("missing") = %v, want nil`, got)
	}
}
