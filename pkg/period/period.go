// Package period normalizes free-form training-period expressions
// ("2 m", "3 weeks", "empezando") into a single canonical Spanish form.
package period

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// JustStarting is the canonical phrase for an athlete with no current
// training period.
const JustStarting = "Empezando ahora"

// FormatError indicates the input could not be parsed as a training period.
type FormatError struct {
	Input string
}

// Error returns the parse failure with example-based guidance.
func (e *FormatError) Error() string {
	return fmt.Sprintf("unrecognized training period %q (valid examples: \"2 meses\", \"3 semanas\", \"1 año\", \"2 m\", \"3 weeks\", \"empezando\")", e.Input)
}

// Canonical singular/plural unit pairs.
const (
	unitDay   = "día"
	unitWeek  = "semana"
	unitMonth = "mes"
	unitYear  = "año"
)

//nolint:gochecknoglobals // Normalization tables
var pluralUnits = map[string]string{
	unitDay:   "días",
	unitWeek:  "semanas",
	unitMonth: "meses",
	unitYear:  "años",
}

// unitTable maps recognized unit tokens (Spanish and English, full words
// and abbreviations) to the canonical singular unit. Lookup is exact: a
// token like "manzana" must not parse just because it starts with "m".
//
//nolint:gochecknoglobals // Normalization tables
var unitTable = map[string]string{
	// Days
	"d": unitDay, "día": unitDay, "dia": unitDay, "días": unitDay, "dias": unitDay,
	"day": unitDay, "days": unitDay,

	// Weeks. "s" is reserved for semanas; "w" for weeks.
	"s": unitWeek, "semana": unitWeek, "semanas": unitWeek,
	"w": unitWeek, "week": unitWeek, "weeks": unitWeek,

	// Months
	"m": unitMonth, "mes": unitMonth, "meses": unitMonth,
	"mo": unitMonth, "month": unitMonth, "months": unitMonth,

	// Years
	"a": unitYear, "año": unitYear, "ano": unitYear, "años": unitYear, "anos": unitYear,
	"y": unitYear, "yr": unitYear, "yrs": unitYear, "year": unitYear, "years": unitYear,
}

//nolint:gochecknoglobals // Compiled once
var periodPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)?\s*([a-zñáéíóú]+)?$`)

// Normalize parses a free-form training-period expression and returns the
// canonical "<N> <unit>" string, or the just-starting phrase for starting
// keywords. A bare integer defaults to months. Normalizing an already
// canonical string returns it unchanged. Any other input fails with a
// *FormatError.
func Normalize(input string) (normalized string, err error) {
	text := strings.ToLower(strings.TrimSpace(input))

	if text == "" {
		err = &FormatError{Input: input}
		return normalized, err
	}

	// Starting-state keywords bypass numeric parsing entirely.
	for _, keyword := range []string{"empezando", "starting", "comenzando", "nuevo"} {
		if strings.Contains(text, keyword) {
			normalized = JustStarting
			return normalized, err
		}
	}

	match := periodPattern.FindStringSubmatch(text)
	if match == nil {
		err = &FormatError{Input: input}
		return normalized, err
	}

	numberToken, unitToken := match[1], match[2]
	if numberToken == "" && unitToken == "" {
		err = &FormatError{Input: input}
		return normalized, err
	}

	// Bare unit word means a count of one.
	count := 1.0
	if numberToken != "" {
		count, err = strconv.ParseFloat(numberToken, 64)
		if err != nil {
			err = &FormatError{Input: input}
			return normalized, err
		}
	}

	var unit string
	switch {
	case unitToken == "":
		// Bare integer defaults to months.
		unit = unitMonth
	case strings.Contains(unitToken, "sem") || strings.Contains(unitToken, "week"):
		// Disambiguate before the single-letter table: "s" alone is
		// reserved for semanas, but "sem..."/"week..." always win.
		unit = unitWeek
	default:
		var known bool
		unit, known = unitTable[unitToken]
		if !known {
			err = &FormatError{Input: input}
			return normalized, err
		}
	}

	if count != 1 {
		unit = pluralUnits[unit]
	}

	normalized = fmt.Sprintf("%s %s", formatCount(count), unit)
	return normalized, err
}

// formatCount renders whole counts without a decimal point.
func formatCount(count float64) (formatted string) {
	if count == float64(int64(count)) {
		formatted = strconv.FormatInt(int64(count), 10)
		return formatted
	}
	formatted = strconv.FormatFloat(count, 'f', -1, 64)
	return formatted
}
