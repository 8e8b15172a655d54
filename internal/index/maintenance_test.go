package index

import (
	"reflect"
	"testing"
)

func TestAddDocument(t *testing.T) {
	idx := Build([][]string{
		{"a", "b"},
		{"b", "c"},
	})

	idx.AddDocument(2, []string{"c", "d"})

	want := Index{
		"a": {0},
		"b": {0, 1},
		"c": {1, 2},
		"d": {2},
	}
	if !idx.Equal(want) {
		t.Errorf("after AddDocument: %v, want %v", idx, want)
	}
}

func TestAddDocument_Idempotent(t *testing.T) {
	idx := Build([][]string{{"a", "b"}, {"b", "c"}})

	idx.AddDocument(2, []string{"c", "d"})
	once := idx.Clone()
	idx.AddDocument(2, []string{"c", "d"})

	if !idx.Equal(once) {
		t.Errorf("second AddDocument changed the index: %v, want %v", idx, once)
	}
}

func TestAddDocument_InsertsSorted(t *testing.T) {
	idx := make(Index)
	idx.AddDocument(5, []string{"t"})
	idx.AddDocument(1, []string{"t"})
	idx.AddDocument(9, []string{"t"})
	idx.AddDocument(3, []string{"t"})

	if got := idx["t"]; !reflect.DeepEqual(got, Postings{1, 3, 5, 9}) {
		t.Errorf(`postings for "t" = %v, want [1 3 5 9]`, got)
	}
}

func TestAddDocument_ReAddIsAdditive(t *testing.T) {
	idx := make(Index)
	idx.AddDocument(0, []string{"old"})
	idx.AddDocument(0, []string{"new"})

	// Postings under terms from the earlier call remain.
	want := Index{"old": {0}, "new": {0}}
	if !idx.Equal(want) {
		t.Errorf("after re-add: %v, want %v", idx, want)
	}
}

func TestRemoveDocument(t *testing.T) {
	idx := Build([][]string{{"a", "b"}, {"b", "c"}})
	idx.AddDocument(2, []string{"c", "d"})

	idx.RemoveDocument(1)

	want := Index{
		"a": {0},
		"b": {0},
		"c": {2},
		"d": {2},
	}
	if !idx.Equal(want) {
		t.Errorf("after RemoveDocument(1): %v, want %v", idx, want)
	}
}

func TestRemoveDocument_DeletesEmptyTerms(t *testing.T) {
	idx := Build([][]string{{"only"}, {"shared"}})

	idx.RemoveDocument(0)

	if _, ok := idx["only"]; ok {
		t.Error(`term "only" should be deleted once its last posting is removed`)
	}
	want := Index{"shared": {1}}
	if !idx.Equal(want) {
		t.Errorf("after RemoveDocument(0): %v, want %v", idx, want)
	}
}

func TestRemoveDocument_Absent(t *testing.T) {
	idx := Build([][]string{{"a"}, {"b"}})
	before := idx.Clone()

	idx.RemoveDocument(42)

	if !idx.Equal(before) {
		t.Errorf("removing an absent document changed the index: %v", idx)
	}
}

func TestMaintenanceScenario(t *testing.T) {
	// The end-to-end mutation sequence: build, add a document, then remove
	// one, checking invariants at each step.
	idx := Build([][]string{{"a", "b"}, {"b", "c"}})

	idx.AddDocument(2, []string{"c", "d"})
	want := Index{"a": {0}, "b": {0, 1}, "c": {1, 2}, "d": {2}}
	if !idx.Equal(want) {
		t.Fatalf("after add: %v, want %v", idx, want)
	}

	idx.RemoveDocument(1)
	want = Index{"a": {0}, "b": {0}, "c": {2}, "d": {2}}
	if !idx.Equal(want) {
		t.Fatalf("after remove: %v, want %v", idx, want)
	}

	for term, postings := range idx {
		if len(postings) == 0 {
			t.Errorf("term %q maps to empty postings", term)
		}
		for _, id := range postings {
			if id == 1 {
				t.Errorf("term %q still references removed document 1", term)
			}
		}
	}
}
