package mapping

// FieldType represents the semantic type of a target schema field
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypePhone    FieldType = "phone"
	FieldTypeEmail    FieldType = "email"
	FieldTypeDateTime FieldType = "datetime"
)

// ValidFieldTypes returns all valid field types
func ValidFieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText,
		FieldTypeNumber,
		FieldTypePhone,
		FieldTypeEmail,
		FieldTypeDateTime,
	}
}

// IsValidFieldType checks if the field type is valid
func IsValidFieldType(t string) bool {
	for _, valid := range ValidFieldTypes() {
		if string(valid) == t {
			return true
		}
	}
	return false
}

// TargetField is one entry of the destination schema catalog a source column
// may be mapped onto. Catalog entries are supplied by the caller and never
// mutated by the matching engine.
type TargetField struct {
	Key    string    `json:"key"`
	Label  string    `json:"label"`
	Type   FieldType `json:"type"`
	IsCore bool      `json:"is_core"`
}

// Confidence is the coarse bucket derived from a match's numeric score
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Score thresholds for confidence tiers, on the 0-100 integer scale.
const (
	highConfidenceScore   = 75
	mediumConfidenceScore = 50
)

// ConfidenceForScore returns the confidence tier for an integer score
func ConfidenceForScore(score int) Confidence {
	switch {
	case score >= highConfidenceScore:
		return ConfidenceHigh
	case score >= mediumConfidenceScore:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// FieldMatch is the scored result of comparing one source column against one
// target field. Matches are ephemeral and recomputed on every mapping run.
type FieldMatch struct {
	FieldKey   string     `json:"field_key"`
	FieldLabel string     `json:"field_label"`
	Confidence Confidence `json:"confidence"`
	Score      int        `json:"score"`
	Reason     string     `json:"reason"`
}

// ColumnMapping is the per-column result of a mapping run: the column's
// header and position, the top suggested matches sorted descending by score,
// the auto-selected field key (if any), and whether the column should be
// treated as a new custom field.
//
// ConflictMatches holds suggestions demoted by ResolveDuplicates so a
// reviewer can still see the losing column's evidence for a contested field.
type ColumnMapping struct {
	Header           string       `json:"header"`
	Index            int          `json:"index"`
	SuggestedMatches []FieldMatch `json:"suggested_matches"`
	SelectedField    *string      `json:"selected_field"`
	IsCustomField    bool         `json:"is_custom_field"`
	ConflictMatches  []FieldMatch `json:"conflict_matches,omitempty"`
}

// TopMatch returns the highest-scoring suggestion, or nil if there is none
func (m *ColumnMapping) TopMatch() *FieldMatch {
	if len(m.SuggestedMatches) == 0 {
		return nil
	}
	return &m.SuggestedMatches[0]
}
