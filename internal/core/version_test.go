package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSortVersionIDsNewestFirst(t *testing.T) {
	ids := []string{"1.8.9", "1.20.1", "1.16.5", "1.20.4"}
	SortVersionIDs(ids)
	want := []string{"1.20.4", "1.20.1", "1.16.5", "1.8.9"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestSortVersionIDsComparesNumerically(t *testing.T) {
	// Lexical ordering would put 1.9 ahead of 1.10.
	ids := []string{"1.9", "1.10"}
	SortVersionIDs(ids)
	want := []string{"1.10", "1.9"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}
