package mapping

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[(]?\d{1,4}[)]?(?:[\s.\-()]?\d{1,4})+$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// dateLayouts are tried in order when classifying date columns. They cover
// ISO, RFC 3339, US and EU numeric forms, and month-name forms.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"02.01.2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// Columns that are at least this fraction empty carry too little signal for
// content classification.
const minSampleDensity = 0.1

// EmailPatternScore returns the fraction of non-blank sample values shaped
// like an email address, or 0 when the column is too sparse to judge.
func EmailPatternScore(samples []string) float64 {
	return patternScore(samples, isEmailValue)
}

// PhonePatternScore returns the fraction of non-blank sample values shaped
// like a phone number, or 0 when the column is too sparse to judge.
func PhonePatternScore(samples []string) float64 {
	return patternScore(samples, isPhoneValue)
}

// DatePatternScore returns the fraction of non-blank sample values that parse
// as a calendar date, or 0 when the column is too sparse to judge.
func DatePatternScore(samples []string) float64 {
	return patternScore(samples, isDateValue)
}

// NumberPatternScore returns the fraction of non-blank sample values that
// parse as a finite number, or 0 when the column is too sparse to judge.
func NumberPatternScore(samples []string) float64 {
	return patternScore(samples, isNumberValue)
}

// patternScore applies the shared sparse-column skip rule and counts matching
// values among the non-blank ones.
func patternScore(samples []string, match func(string) bool) float64 {
	if len(samples) == 0 {
		return 0
	}

	nonEmpty := make([]string, 0, len(samples))
	for _, v := range samples {
		if strings.TrimSpace(v) != "" {
			nonEmpty = append(nonEmpty, v)
		}
	}
	if float64(len(nonEmpty))/float64(len(samples)) <= minSampleDensity {
		return 0
	}

	matches := 0
	for _, v := range nonEmpty {
		if match(strings.TrimSpace(v)) {
			matches++
		}
	}
	return float64(matches) / float64(len(nonEmpty))
}

func isEmailValue(v string) bool {
	return emailPattern.MatchString(v)
}

// isPhoneValue requires both a phone-shaped string and at least 10 digits
// once separators are stripped, so short numeric codes don't classify as
// phone numbers.
func isPhoneValue(v string) bool {
	if !phonePattern.MatchString(v) {
		return false
	}
	return len(nonDigits.ReplaceAllString(v, "")) >= 10
}

func isDateValue(v string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}

func isNumberValue(v string) bool {
	// Tolerate thousands separators
	v = strings.ReplaceAll(v, ",", "")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return false
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
