package id

import (
	"sort"
	"testing"
)

func TestNewIsUniqueAndSortable(t *testing.T) {
	ids := make([]string, 200)
	seen := make(map[string]bool, len(ids))

	for i := range ids {
		ids[i] = New()
		if len(ids[i]) != 26 {
			t.Fatalf("id %q: length %d, want 26", ids[i], len(ids[i]))
		}
		if seen[ids[i]] {
			t.Fatalf("duplicate id %q", ids[i])
		}
		seen[ids[i]] = true
	}

	// Run records listed by ID must come out in creation order.
	if !sort.StringsAreSorted(ids) {
		t.Error("ids generated in sequence are not lexicographically increasing")
	}
}
