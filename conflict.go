package keybind

import "github.com/dshills/keybind/key"

// Conflict reports two shortcut definitions that normalize to the same
// combination on a platform. ID1 is the first-seen definition in table
// order, ID2 the later duplicate, and Keys the shared normalized
// combination string.
type Conflict struct {
	ID1  string
	ID2  string
	Keys string
}

// DetectConflicts scans definitions in order and reports each definition
// whose normalized combination was already claimed by an earlier one.
// Every subsequent duplicate is reported against the first-seen id, so
// three shortcuts sharing one combination yield two conflicts, both
// naming the first.
//
// Detection is purely informational: it never mutates its input or blocks
// registration. Scope is deliberately ignored, so two shortcuts with the
// same keys in disjoint scopes are still reported.
func DetectConflicts(shortcuts []Shortcut, platform key.Platform) []Conflict {
	seen := make(map[string]string, len(shortcuts))
	var conflicts []Conflict

	for _, sc := range shortcuts {
		norm := key.Normalize(sc.Keys, platform)
		if first, ok := seen[norm]; ok {
			conflicts = append(conflicts, Conflict{
				ID1:  first,
				ID2:  sc.ID,
				Keys: norm,
			})
			continue
		}
		seen[norm] = sc.ID
	}

	return conflicts
}
