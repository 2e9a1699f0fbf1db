package profile

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Interactive input arrives in Spanish or English, abbreviated or not.
// Each normalizer maps raw input onto the single canonical form the rest
// of the pipeline expects, or returns an error for unrecognized input.

//nolint:gochecknoglobals // static lookup table
var genderTable = map[string]string{
	"m":         "Masculino",
	"masculino": "Masculino",
	"hombre":    "Masculino",
	"male":      "Masculino",
	"man":       "Masculino",
	"f":         "Femenino",
	"femenino":  "Femenino",
	"mujer":     "Femenino",
	"female":    "Femenino",
	"woman":     "Femenino",
	"o":         "Otro",
	"otro":      "Otro",
	"other":     "Otro",
}

// NormalizeGender maps gender input onto "Masculino", "Femenino" or "Otro".
func NormalizeGender(input string) (gender string, err error) {
	key := strings.ToLower(strings.TrimSpace(input))
	gender, ok := genderTable[key]
	if !ok {
		err = errors.Errorf("unrecognized gender %q (expected M/F/O)", input)
		return gender, err
	}

	return gender, err
}

//nolint:gochecknoglobals // static lookup table
var weekdayTable = map[string]string{
	"lunes":     "Lunes",
	"monday":    "Lunes",
	"lun":       "Lunes",
	"mon":       "Lunes",
	"martes":    "Martes",
	"tuesday":   "Martes",
	"mar":       "Martes",
	"tue":       "Martes",
	"miercoles": "Miércoles",
	"miércoles": "Miércoles",
	"wednesday": "Miércoles",
	"mie":       "Miércoles",
	"mié":       "Miércoles",
	"wed":       "Miércoles",
	"jueves":    "Jueves",
	"thursday":  "Jueves",
	"jue":       "Jueves",
	"thu":       "Jueves",
	"viernes":   "Viernes",
	"friday":    "Viernes",
	"vie":       "Viernes",
	"fri":       "Viernes",
	"sabado":    "Sábado",
	"sábado":    "Sábado",
	"saturday":  "Sábado",
	"sab":       "Sábado",
	"sáb":       "Sábado",
	"sat":       "Sábado",
	"domingo":   "Domingo",
	"sunday":    "Domingo",
	"dom":       "Domingo",
	"sun":       "Domingo",
}

// NormalizeWeekday maps a weekday name in Spanish or English, full or
// abbreviated, onto the canonical Spanish weekday.
func NormalizeWeekday(input string) (day string, err error) {
	key := strings.ToLower(strings.TrimSpace(input))
	day, ok := weekdayTable[key]
	if !ok {
		err = errors.Errorf("unrecognized weekday %q", input)
		return day, err
	}

	return day, err
}

// NormalizeQualitySessionDays parses a comma or space separated list of
// weekdays into the canonical "Martes, Jueves" form. Duplicates collapse.
func NormalizeQualitySessionDays(input string) (days string, err error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return days, err
	}

	fields := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == ';' || r == ' '
	})

	seen := make(map[string]bool)
	normalized := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == "y" || f == "and" {
			continue
		}

		var day string
		day, err = NormalizeWeekday(f)
		if err != nil {
			return "", err
		}

		if !seen[day] {
			seen[day] = true
			normalized = append(normalized, day)
		}
	}

	days = strings.Join(normalized, ", ")

	return days, err
}

//nolint:gochecknoglobals // matches "4" or "4-5"
var trainingDaysPattern = regexp.MustCompile(`^([1-7])(?:\s*-\s*([1-7]))?$`)

// NormalizeTrainingDays validates a count of weekly training days, either
// a single digit or a range like "4-5", and returns the canonical form.
func NormalizeTrainingDays(input string) (days string, err error) {
	trimmed := strings.TrimSpace(input)
	matches := trainingDaysPattern.FindStringSubmatch(trimmed)
	if matches == nil {
		err = errors.Errorf("unrecognized training days %q (expected 1-7 or a range like 4-5)", input)
		return days, err
	}

	if matches[2] == "" {
		days = matches[1]
		return days, err
	}

	low, _ := strconv.Atoi(matches[1])
	high, _ := strconv.Atoi(matches[2])
	if low >= high {
		err = errors.Errorf("invalid training days range %q", input)
		return days, err
	}

	days = fmt.Sprintf("%d-%d", low, high)

	return days, err
}

//nolint:gochecknoglobals // accepts H:MM:SS, MM:SS, and bare minutes
var clockPattern = regexp.MustCompile(`^(?:(\d{1,2}):)?(\d{1,3}):(\d{2})$`)

// NormalizeClockTime parses a race time in "HH:MM:SS", "MM:SS" or bare
// minutes form and returns the canonical "HH:MM:SS" representation.
func NormalizeClockTime(input string) (clock string, err error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		err = errors.New("empty time")
		return clock, err
	}

	// Bare minutes, e.g. "45" meaning 45 minutes.
	if bare, convErr := strconv.Atoi(trimmed); convErr == nil {
		if bare <= 0 {
			err = errors.Errorf("invalid time %q", input)
			return clock, err
		}
		clock = FormatClockTime(bare * 60)
		return clock, err
	}

	var seconds int
	seconds, err = ParseClockTime(trimmed)
	if err != nil {
		return clock, err
	}

	clock = FormatClockTime(seconds)

	return clock, err
}

// ParseClockTime converts "HH:MM:SS" or "MM:SS" into total seconds.
func ParseClockTime(clock string) (seconds int, err error) {
	matches := clockPattern.FindStringSubmatch(strings.TrimSpace(clock))
	if matches == nil {
		err = errors.Errorf("invalid time %q (expected HH:MM:SS or MM:SS)", clock)
		return seconds, err
	}

	hours := 0
	if matches[1] != "" {
		hours, _ = strconv.Atoi(matches[1])
	}
	minutes, _ := strconv.Atoi(matches[2])
	secs, _ := strconv.Atoi(matches[3])

	if secs > 59 || (matches[1] != "" && minutes > 59) {
		err = errors.Errorf("invalid time %q", clock)
		return seconds, err
	}

	seconds = hours*3600 + minutes*60 + secs
	if seconds == 0 {
		err = errors.Errorf("invalid time %q", clock)
		return seconds, err
	}

	return seconds, err
}

// FormatClockTime renders total seconds as "HH:MM:SS".
func FormatClockTime(seconds int) (clock string) {
	clock = fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
	return clock
}

// FormatPace renders seconds-per-kilometer as "M:SS min/km".
func FormatPace(secondsPerKM float64) (pace string) {
	total := int(secondsPerKM + 0.5)
	pace = fmt.Sprintf("%d:%02d min/km", total/60, total%60)
	return pace
}

//nolint:gochecknoglobals // static lookup table
var namedDistances = []struct {
	km   float64
	name string
}{
	{5.0, "5K"},
	{10.0, "10K"},
	{15.0, "15K"},
	{21.097, "Media Maratón"},
	{42.195, "Maratón"},
}

// FormatDistance renders a distance under its common race name when one
// applies (within 100m), falling back to "<N>K".
func FormatDistance(distanceKM float64) (display string) {
	for _, d := range namedDistances {
		if math.Abs(distanceKM-d.km) < 0.1 {
			display = d.name
			return display
		}
	}

	if distanceKM == float64(int(distanceKM)) {
		display = fmt.Sprintf("%dK", int(distanceKM))
		return display
	}

	display = fmt.Sprintf("%.1fK", distanceKM)

	return display
}
