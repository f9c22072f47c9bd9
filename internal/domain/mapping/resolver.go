package mapping

import "sort"

// ResolveDuplicates is a pure post-processing pass over MapColumns output
// that guarantees at most one column can offer or hold a given field. Columns
// are grouped by their top suggested field; within a contested group the
// highest score wins (lowest column index breaks ties), losers have their
// suggestions demoted to ConflictMatches and become custom-field candidates.
// Columns whose top suggestion is uncontested pass through unchanged.
//
// This complements, rather than replaces, the greedy auto-selection inside
// MapColumns: callers that only need exclusivity of selections can skip this
// pass, callers that want a single owner for every suggested field run it.
func ResolveDuplicates(mappings []ColumnMapping) []ColumnMapping {
	byField := make(map[string][]int)
	for i := range mappings {
		top := mappings[i].TopMatch()
		if top == nil {
			continue
		}
		byField[top.FieldKey] = append(byField[top.FieldKey], i)
	}

	resolved := make([]ColumnMapping, len(mappings))
	copy(resolved, mappings)

	for _, group := range byField {
		if len(group) < 2 {
			continue
		}

		sort.SliceStable(group, func(a, b int) bool {
			ma := resolved[group[a]]
			mb := resolved[group[b]]
			if ma.SuggestedMatches[0].Score != mb.SuggestedMatches[0].Score {
				return ma.SuggestedMatches[0].Score > mb.SuggestedMatches[0].Score
			}
			return ma.Index < mb.Index
		})

		winner := &resolved[group[0]]
		if winner.SuggestedMatches[0].Confidence == ConfidenceHigh && winner.SelectedField == nil {
			key := winner.SuggestedMatches[0].FieldKey
			winner.SelectedField = &key
		}

		for _, idx := range group[1:] {
			loser := &resolved[idx]
			contested := loser.SuggestedMatches[0].FieldKey
			loser.ConflictMatches = loser.SuggestedMatches
			loser.SuggestedMatches = nil
			if loser.SelectedField != nil && *loser.SelectedField == contested {
				loser.SelectedField = nil
			}
			loser.IsCustomField = true
		}
	}

	return resolved
}
