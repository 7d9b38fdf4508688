package triage

import "sort"

// Match returns every condition sharing at least one symptom id with the
// selection, ordered by descending overlap count. Conditions with equal
// overlap keep their relative catalog definition order; that tie-break is
// a documented contract, not an accident of the sort routine. The
// selection is a set: duplicates and ordering in the input have no effect
// on the result. An empty selection yields an empty slice, never an error.
func (c *Catalog) Match(selected []string) []Condition {
	if len(selected) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		set[id] = struct{}{}
	}

	var matched []Condition
	for _, cond := range c.Conditions {
		if overlap(cond, set) > 0 {
			matched = append(matched, cond)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return overlap(matched[i], set) > overlap(matched[j], set)
	})

	return matched
}

// Overlap counts how many of the condition's symptoms are present in the
// selection; it is the sole ranking signal.
func (c *Catalog) Overlap(cond Condition, selected []string) int {
	set := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		set[id] = struct{}{}
	}
	return overlap(cond, set)
}

func overlap(cond Condition, selected map[string]struct{}) int {
	count := 0
	for _, id := range cond.Symptoms {
		if _, ok := selected[id]; ok {
			count++
		}
	}
	return count
}
