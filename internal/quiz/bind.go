package quiz

import "math/rand"

// BindVariables assigns a concrete item identifier to each declared
// variable name, in order.
//
// Roles:
//   - "item" and "itemA" draw uniformly from all identifiers.
//   - any other "itemX" role (itemB, itemC, ...) draws uniformly from the
//     identifiers not already bound to a lettered sibling (itemA, itemC,
//     ...), so lettered pairs are always distinct. The plain "item" role
//     does not constrain siblings: a template declaring both "item" and
//     "itemB" may bind them to the same identifier. If no sibling was
//     bound, any item may be chosen.
//
// Unknown variable names are left unbound; an unresolved {name}
// placeholder renders verbatim.
func BindVariables(rng *rand.Rand, variables []string, itemIDs []string) map[string]string {
	vars := make(map[string]string, len(variables))

	for _, name := range variables {
		switch {
		case name == "item" || name == "itemA":
			vars[name] = itemIDs[rng.Intn(len(itemIDs))]

		case isItemRole(name):
			available := excludingSiblings(itemIDs, vars)
			if len(available) == 0 {
				available = itemIDs
			}
			vars[name] = available[rng.Intn(len(available))]
		}
	}

	return vars
}

// isItemRole reports whether name is a sibling item role like "itemB".
func isItemRole(name string) bool {
	if len(name) != 5 || name[:4] != "item" {
		return false
	}
	return name[4] >= 'A' && name[4] <= 'Z'
}

// excludingSiblings returns the identifiers not already bound to a
// lettered item role. Bindings under other names, including the plain
// "item" role, do not exclude anything.
func excludingSiblings(itemIDs []string, bound map[string]string) []string {
	used := make(map[string]bool, len(bound))
	for name, id := range bound {
		if isItemRole(name) {
			used[id] = true
		}
	}
	out := make([]string, 0, len(itemIDs))
	for _, id := range itemIDs {
		if !used[id] {
			out = append(out, id)
		}
	}
	return out
}
