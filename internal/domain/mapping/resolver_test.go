package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestResolveDuplicates(t *testing.T) {
	t.Run("highest score wins a contested field", func(t *testing.T) {
		mappings := []ColumnMapping{
			{
				Header: "Mail", Index: 0,
				SuggestedMatches: []FieldMatch{{FieldKey: "email", FieldLabel: "Email", Score: 65, Confidence: ConfidenceMedium}},
			},
			{
				Header: "Email", Index: 1,
				SuggestedMatches: []FieldMatch{{FieldKey: "email", FieldLabel: "Email", Score: 100, Confidence: ConfidenceHigh}},
				SelectedField:    strPtr("email"),
			},
		}

		resolved := ResolveDuplicates(mappings)
		require.Len(t, resolved, 2)

		loser := resolved[0]
		assert.Empty(t, loser.SuggestedMatches)
		assert.True(t, loser.IsCustomField)
		require.Len(t, loser.ConflictMatches, 1)
		assert.Equal(t, "email", loser.ConflictMatches[0].FieldKey)

		winner := resolved[1]
		require.NotNil(t, winner.SelectedField)
		assert.Equal(t, "email", *winner.SelectedField)
		assert.Equal(t, "email", winner.SuggestedMatches[0].FieldKey)
	})

	t.Run("winner gains selection when high confidence and unselected", func(t *testing.T) {
		mappings := []ColumnMapping{
			{Header: "A", Index: 0, SuggestedMatches: []FieldMatch{{FieldKey: "phone", Score: 80, Confidence: ConfidenceHigh}}},
			{Header: "B", Index: 1, SuggestedMatches: []FieldMatch{{FieldKey: "phone", Score: 65, Confidence: ConfidenceMedium}}},
		}

		resolved := ResolveDuplicates(mappings)
		require.NotNil(t, resolved[0].SelectedField)
		assert.Equal(t, "phone", *resolved[0].SelectedField)
	})

	t.Run("medium confidence winner is not auto-selected", func(t *testing.T) {
		mappings := []ColumnMapping{
			{Header: "A", Index: 0, SuggestedMatches: []FieldMatch{{FieldKey: "phone", Score: 65, Confidence: ConfidenceMedium}}},
			{Header: "B", Index: 1, SuggestedMatches: []FieldMatch{{FieldKey: "phone", Score: 55, Confidence: ConfidenceMedium}}},
		}

		resolved := ResolveDuplicates(mappings)
		assert.Nil(t, resolved[0].SelectedField)
		assert.NotEmpty(t, resolved[0].SuggestedMatches)
	})

	t.Run("equal scores break ties by column index", func(t *testing.T) {
		mappings := []ColumnMapping{
			{Header: "B", Index: 1, SuggestedMatches: []FieldMatch{{FieldKey: "email", Score: 75, Confidence: ConfidenceHigh}}},
			{Header: "A", Index: 0, SuggestedMatches: []FieldMatch{{FieldKey: "email", Score: 75, Confidence: ConfidenceHigh}}},
		}

		resolved := ResolveDuplicates(mappings)
		// Column index 0 wins even though it appears second in the slice.
		assert.NotEmpty(t, resolved[1].SuggestedMatches)
		assert.Empty(t, resolved[0].SuggestedMatches)
	})

	t.Run("loser selection pointing at the contested field is cleared", func(t *testing.T) {
		mappings := []ColumnMapping{
			{
				Header: "A", Index: 0,
				SuggestedMatches: []FieldMatch{{FieldKey: "email", Score: 100, Confidence: ConfidenceHigh}},
				SelectedField:    strPtr("email"),
			},
			{
				Header: "B", Index: 1,
				SuggestedMatches: []FieldMatch{{FieldKey: "email", Score: 100, Confidence: ConfidenceHigh}},
				SelectedField:    strPtr("email"),
			},
		}

		// Both claim email (e.g. produced by separate runs); index 0 wins.
		resolved := ResolveDuplicates(mappings)
		require.NotNil(t, resolved[0].SelectedField)
		assert.Nil(t, resolved[1].SelectedField)
		assert.True(t, resolved[1].IsCustomField)
	})

	t.Run("uncontested columns pass through unchanged", func(t *testing.T) {
		mappings := []ColumnMapping{
			{Header: "Email", Index: 0, SuggestedMatches: []FieldMatch{{FieldKey: "email", Score: 100, Confidence: ConfidenceHigh}}},
			{Header: "Phone", Index: 1, SuggestedMatches: []FieldMatch{{FieldKey: "phone", Score: 100, Confidence: ConfidenceHigh}}},
			{Header: "Custom", Index: 2, IsCustomField: true},
		}

		resolved := ResolveDuplicates(mappings)
		assert.Equal(t, mappings, resolved)
	})

	t.Run("no two columns offer the same top field after resolution", func(t *testing.T) {
		engine := NewEngine(testCatalog())
		mappings := engine.MapColumns([]string{"Email", "E-mail Address", "Mail", "Phone"}, nil)
		resolved := ResolveDuplicates(mappings)

		seen := make(map[string]bool)
		for _, m := range resolved {
			top := m.TopMatch()
			if top == nil {
				continue
			}
			assert.False(t, seen[top.FieldKey], "field %q offered twice", top.FieldKey)
			seen[top.FieldKey] = true
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		mappings := []ColumnMapping{
			{Header: "A", Index: 0, SuggestedMatches: []FieldMatch{{FieldKey: "email", Score: 80, Confidence: ConfidenceHigh}}},
			{Header: "B", Index: 1, SuggestedMatches: []FieldMatch{{FieldKey: "email", Score: 60, Confidence: ConfidenceMedium}}},
		}

		_ = ResolveDuplicates(mappings)
		assert.NotEmpty(t, mappings[1].SuggestedMatches)
		assert.False(t, mappings[1].IsCustomField)
	})
}
