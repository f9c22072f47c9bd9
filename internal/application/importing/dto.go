package importing

import (
	"github.com/fieldmap/backend/internal/domain/mapping"
)

// PreviewOptions controls how column mappings are computed
type PreviewOptions struct {
	// ResolveDuplicates collapses columns competing for the same field
	ResolveDuplicates bool
}

// ColumnMappingResponse is the API shape of a single column mapping
type ColumnMappingResponse struct {
	Header           string               `json:"header"`
	Index            int                  `json:"index"`
	SuggestedMatches []mapping.FieldMatch `json:"suggested_matches"`
	SelectedField    *string              `json:"selected_field"`
	IsCustomField    bool                 `json:"is_custom_field"`
	ConflictMatches  []mapping.FieldMatch `json:"conflict_matches,omitempty"`
}

// AgentRef identifies a known agent matched in the owner column
type AgentRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OwnerColumnResponse describes the detected agent/owner email column
type OwnerColumnResponse struct {
	Header        string     `json:"header"`
	Index         int        `json:"index"`
	Score         int        `json:"score"`
	MatchedAgents []AgentRef `json:"matched_agents,omitempty"`
}

// PreviewResponse is the result of sampling a file and mapping its columns
type PreviewResponse struct {
	SessionID   string                  `json:"session_id"`
	FileName    string                  `json:"file_name"`
	Headers     []string                `json:"headers"`
	Preview     [][]string              `json:"preview"`
	SampledRows int                     `json:"sampled_rows"`
	Mappings    []ColumnMappingResponse `json:"mappings"`
	OwnerColumn *OwnerColumnResponse    `json:"owner_column,omitempty"`
	Fields      []mapping.TargetField   `json:"fields"`
}

// RemapResponse is the result of recomputing mappings for a stored session
type RemapResponse struct {
	SessionID   string                  `json:"session_id"`
	Mappings    []ColumnMappingResponse `json:"mappings"`
	OwnerColumn *OwnerColumnResponse    `json:"owner_column,omitempty"`
}

// toMappingResponses converts domain mappings to their API shape
func toMappingResponses(mappings []mapping.ColumnMapping) []ColumnMappingResponse {
	out := make([]ColumnMappingResponse, len(mappings))
	for i, m := range mappings {
		out[i] = ColumnMappingResponse{
			Header:           m.Header,
			Index:            m.Index,
			SuggestedMatches: m.SuggestedMatches,
			SelectedField:    m.SelectedField,
			IsCustomField:    m.IsCustomField,
			ConflictMatches:  m.ConflictMatches,
		}
	}
	return out
}
