package mapping

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Scoring constants for the header-matching rules, on the 0-100 scale.
const (
	scoreExactHeader    = 100
	scoreSimilarHeader  = 80
	scoreSynonymExact   = 75
	scoreSynonymPartial = 65

	// Fuzzy fallback: bigram similarity above the threshold scales into a
	// sub-synonym score.
	fuzzySimilarityThreshold = 0.6
	fuzzyScoreWeight         = 60

	// Content-pattern adjustments.
	strongPatternThreshold = 0.8
	weakPatternThreshold   = 0.3
	patternBoost           = 20
	patternPenaltyFactor   = 0.6
	minScoreForBoost       = 40
	minScoreForPenalty     = 50

	// Neutral pattern score for the generic text type, which has no
	// content classifier.
	neutralPatternScore = 0.5

	// Columns whose best score falls below this are proposed as new
	// custom fields.
	customFieldThreshold = 40

	// MaxSuggestions is the number of top matches kept per column.
	MaxSuggestions = 3

	// MaxSampleValues bounds how many values per column are examined by
	// the content classifiers.
	MaxSampleValues = 100
)

// Engine scores source columns against a fixed target field catalog and
// produces per-column mapping suggestions. An Engine is stateless across
// runs and safe for concurrent use.
type Engine struct {
	fields []TargetField
}

// NewEngine creates a matching engine for the given field catalog
func NewEngine(fields []TargetField) *Engine {
	return &Engine{fields: fields}
}

// Fields returns the engine's field catalog
func (e *Engine) Fields() []TargetField {
	return e.fields
}

// MapColumns scores every column against every catalog field and returns one
// ColumnMapping per header, in header order. Auto-selection is a single
// greedy left-to-right pass: a column claims its best match only when that
// match is high confidence and no earlier column claimed the same field.
// Columns competing for an already-claimed field keep their suggestions but
// get no selection; ResolveDuplicates offers the stricter score-based pass.
func (e *Engine) MapColumns(headers []string, rows [][]string) []ColumnMapping {
	mappings := make([]ColumnMapping, 0, len(headers))
	claimed := make(map[string]bool, len(headers))

	for i, header := range headers {
		samples := ColumnSamples(rows, i, MaxSampleValues)
		matches := e.scoreColumn(header, samples)

		m := ColumnMapping{
			Header:           header,
			Index:            i,
			SuggestedMatches: matches,
		}
		if len(matches) == 0 || matches[0].Score < customFieldThreshold {
			m.IsCustomField = true
		}
		if len(matches) > 0 && matches[0].Confidence == ConfidenceHigh && !claimed[matches[0].FieldKey] {
			key := matches[0].FieldKey
			m.SelectedField = &key
			claimed[key] = true
		}

		mappings = append(mappings, m)
	}

	return mappings
}

// scoreColumn evaluates all catalog fields for one column and keeps the top
// suggestions sorted descending by score.
func (e *Engine) scoreColumn(header string, samples []string) []FieldMatch {
	var matches []FieldMatch
	for _, field := range e.fields {
		if match := scoreField(header, samples, field); match != nil {
			matches = append(matches, *match)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > MaxSuggestions {
		matches = matches[:MaxSuggestions]
	}
	return matches
}

// scoreField scores one (column, field) pair. It returns nil when the pair
// cannot match: empty header, excluded combination, or a final score of zero.
func scoreField(header string, samples []string, field TargetField) *FieldMatch {
	h := Normalize(header)
	if h == "" {
		return nil
	}

	// A combined full-name column must not silently claim a single-name field.
	if isFullNameHeader(h) && (field.Key == "firstName" || field.Key == "lastName") {
		return nil
	}

	label := Normalize(field.Label)

	var score float64
	var reason string
	switch {
	case label != "" && h == label:
		score, reason = scoreExactHeader, "Exact header match"
	case label != "" && (strings.Contains(h, label) || strings.Contains(label, h)):
		score, reason = scoreSimilarHeader, "Similar header match"
	default:
		for _, syn := range SynonymsFor(field.Key) {
			s := Normalize(syn)
			if s == "" {
				continue
			}
			if h == s {
				score, reason = scoreSynonymExact, "Synonym match"
				break
			}
			if score == 0 && (strings.Contains(h, s) || strings.Contains(s, h)) {
				score, reason = scoreSynonymPartial, "Synonym match"
			}
		}
	}

	if score == 0 {
		if sim := Similarity(h, label); sim > fuzzySimilarityThreshold {
			score = math.Floor(sim * fuzzyScoreWeight)
			reason = "Similar header name"
		}
	}

	pattern, patternReason := contentScore(field.Type, samples)
	switch {
	case pattern > strongPatternThreshold:
		if score >= minScoreForBoost {
			score = math.Min(100, score+patternBoost)
		} else {
			// Header says little but the content is unambiguous.
			score = mediumConfidenceScore
			reason = patternReason
		}
	case score >= minScoreForPenalty && pattern > 0 && pattern < weakPatternThreshold:
		// A decent header match contradicted by poor content evidence.
		score *= patternPenaltyFactor
	}

	final := int(math.Floor(score))
	if final <= 0 {
		return nil
	}

	if reason == "" {
		reason = "Possible match"
		if patternReason != "" {
			reason = patternReason
		}
	}

	return &FieldMatch{
		FieldKey:   field.Key,
		FieldLabel: field.Label,
		Confidence: ConfidenceForScore(final),
		Score:      final,
		Reason:     reason,
	}
}

// isFullNameHeader reports whether a normalized header names a combined
// full-name column.
func isFullNameHeader(normalized string) bool {
	return strings.Contains(normalized, "full name") || strings.Contains(normalized, "fullname")
}

// contentScore returns the content-pattern score for a column against a field
// type, plus the reason string used when the pattern alone carries the match.
// The generic text type has no classifier and scores a neutral 0.5.
func contentScore(fieldType FieldType, samples []string) (float64, string) {
	var score float64
	var kind string

	switch fieldType {
	case FieldTypeEmail:
		score, kind = EmailPatternScore(samples), "email"
	case FieldTypePhone:
		score, kind = PhonePatternScore(samples), "phone"
	case FieldTypeDateTime:
		score, kind = DatePatternScore(samples), "date"
	case FieldTypeNumber:
		score, kind = NumberPatternScore(samples), "number"
	default:
		return neutralPatternScore, ""
	}

	var reason string
	if score > strongPatternThreshold {
		reason = fmt.Sprintf("Strong %s pattern (%d%% match)", kind, int(math.Round(score*100)))
	}
	return score, reason
}

// ColumnSamples extracts up to max values of one column from row-major sample
// data. Missing cells on short rows become empty strings so sparse-column
// detection sees them.
func ColumnSamples(rows [][]string, col, max int) []string {
	n := len(rows)
	if n > max {
		n = max
	}
	samples := make([]string, 0, n)
	for _, row := range rows[:n] {
		if col < len(row) {
			samples = append(samples, row[col])
		} else {
			samples = append(samples, "")
		}
	}
	return samples
}
