package mapping

import (
	"math"
	"regexp"
	"strings"
)

// OwnerColumn identifies the single column most likely to hold the record
// owner's email address, for downstream owner-assignment of imported rows.
type OwnerColumn struct {
	Header string `json:"header"`
	Index  int    `json:"index"`
	Score  int    `json:"score"`
}

// Weights and cutoff for combining header and content evidence.
const (
	ownerHeaderWeight  = 0.7
	ownerContentWeight = 0.3
	ownerScoreCutoff   = 45
)

// ownerHeaderPhrases are normalized headers that name an owner email column
// outright.
var ownerHeaderPhrases = map[string]bool{
	"agent email":    true,
	"agent e mail":   true,
	"agent mail":     true,
	"assigned agent": true,
	"owner email":    true,
	"realtor email":  true,
	"broker email":   true,
	"advisor email":  true,
}

// ownerRoleTokens mark a header as referring to the person responsible for
// the record rather than the record subject.
var ownerRoleTokens = map[string]bool{
	"agent":          true,
	"advisor":        true,
	"rep":            true,
	"representative": true,
	"owner":          true,
	"assignee":       true,
	"assigned":       true,
	"manager":        true,
	"realtor":        true,
	"broker":         true,
}

var ownerEmailTokens = map[string]bool{
	"email":   true,
	"mail":    true,
	"e":       true,
	"address": true,
}

var headerTokenSplit = regexp.MustCompile(`[^a-z0-9]+`)

// DetectOwnerEmailColumn scans all columns for the one most likely to hold
// an owner/agent email address, independent of the field catalog. Header
// evidence is weighted over content evidence; columns scoring below the
// cutoff are discarded. Returns nil when no column qualifies, which callers
// must treat as "no owner column found" rather than an error. Ties keep the
// first-seen column.
func DetectOwnerEmailColumn(headers []string, rows [][]string) *OwnerColumn {
	var best *OwnerColumn

	for i, header := range headers {
		headerScore := ownerHeaderScore(header)
		contentScore := ownerContentScore(ColumnSamples(rows, i, MaxSampleValues))

		combined := int(math.Round(float64(headerScore)*ownerHeaderWeight + contentScore*100*ownerContentWeight))
		if combined < ownerScoreCutoff {
			continue
		}
		if best == nil || combined > best.Score {
			best = &OwnerColumn{Header: header, Index: i, Score: combined}
		}
	}

	return best
}

// ownerHeaderScore rates how strongly a header alone suggests an owner email
// column, from exact known phrases down to a lone owner-role token.
func ownerHeaderScore(header string) int {
	h := Normalize(header)
	if h == "" {
		return 0
	}
	if ownerHeaderPhrases[h] {
		return 95
	}

	hasOwner := false
	hasEmail := false
	for _, token := range headerTokenSplit.Split(h, -1) {
		if token == "" {
			continue
		}
		if ownerRoleTokens[token] {
			hasOwner = true
		}
		if ownerEmailTokens[token] {
			hasEmail = true
		}
	}

	switch {
	case hasOwner && hasEmail:
		return 85
	case hasOwner && strings.Contains(h, "mail"):
		return 75
	case strings.Contains(h, "assigned") && strings.Contains(h, "agent"):
		return 70
	case hasOwner:
		return 55
	}
	return 0
}

// ownerContentScore returns the fraction of non-blank samples shaped like an
// email address, or 0 when there are no usable samples.
func ownerContentScore(samples []string) float64 {
	nonEmpty := 0
	matches := 0
	for _, v := range samples {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		nonEmpty++
		if emailPattern.MatchString(v) {
			matches++
		}
	}
	if nonEmpty == 0 {
		return 0
	}
	return float64(matches) / float64(nonEmpty)
}
