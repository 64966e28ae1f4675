package quiz

import (
	"math/rand"
	"testing"
)

var testItemIDs = []string{"A", "B", "C", "D", "E", "F"}

func TestBindVariables_PairAlwaysDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		vars := BindVariables(rng, []string{"itemA", "itemB"}, testItemIDs)

		a, b := vars["itemA"], vars["itemB"]
		if a == "" || b == "" {
			t.Fatalf("trial %d: unbound pair %v", i, vars)
		}
		if a == b {
			t.Fatalf("trial %d: itemA == itemB == %s", i, a)
		}
	}
}

func TestBindVariables_ItemBWithoutItemA(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		vars := BindVariables(rng, []string{"itemB"}, testItemIDs)
		seen[vars["itemB"]] = true
	}

	// With no sibling bound, itemB may land on any identifier.
	if len(seen) != len(testItemIDs) {
		t.Errorf("itemB alone covered %d identifiers, want %d", len(seen), len(testItemIDs))
	}
}

func TestBindVariables_ThreeSiblingsDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 1000; i++ {
		vars := BindVariables(rng, []string{"itemA", "itemB", "itemC"}, testItemIDs)

		a, b, c := vars["itemA"], vars["itemB"], vars["itemC"]
		if a == b || a == c || b == c {
			t.Fatalf("trial %d: siblings not distinct: %v", i, vars)
		}
	}
}

func TestBindVariables_PlainItemDoesNotConstrainSiblings(t *testing.T) {
	rng := rand.New(rand.NewSource(23))

	// Only lettered siblings exclude each other; a template mixing the
	// plain "item" role with "itemB" may bind both to the same identifier.
	sawEqual := false
	for i := 0; i < 1000; i++ {
		vars := BindVariables(rng, []string{"item", "itemB"}, testItemIDs)

		if vars["item"] == "" || vars["itemB"] == "" {
			t.Fatalf("trial %d: unbound variable in %v", i, vars)
		}
		if vars["item"] == vars["itemB"] {
			sawEqual = true
			break
		}
	}
	if !sawEqual {
		t.Error("itemB never equaled the plain item binding; it must not be excluded")
	}
}

func TestBindVariables_UnknownNamesLeftUnbound(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	vars := BindVariables(rng, []string{"item", "flavor", "items"}, testItemIDs)

	if _, ok := vars["item"]; !ok {
		t.Error("expected item to be bound")
	}
	if _, ok := vars["flavor"]; ok {
		t.Error("expected flavor to stay unbound")
	}
	if _, ok := vars["items"]; ok {
		t.Error("expected items to stay unbound")
	}
}

func TestBindVariables_UniformishCoverage(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	counts := make(map[string]int)
	const trials = 6000
	for i := 0; i < trials; i++ {
		vars := BindVariables(rng, []string{"item"}, testItemIDs)
		counts[vars["item"]]++
	}

	// Loose bound: each identifier should land well within 2x of fair share.
	fair := trials / len(testItemIDs)
	for _, id := range testItemIDs {
		if counts[id] < fair/2 || counts[id] > fair*2 {
			t.Errorf("item %s drawn %d times, fair share %d", id, counts[id], fair)
		}
	}
}
