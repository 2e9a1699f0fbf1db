package profile

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Plausibility ranges for physical and physiological metrics. Values
// outside these bounds are almost certainly typos.
const (
	minAge, maxAge           = 10, 100
	minHeightCM, maxHeightCM = 120, 230
	minWeightKG, maxWeightKG = 30.0, 200.0
	minHR, maxHR             = 25, 230
	minVO2Max, maxVO2Max     = 20.0, 95.0
	maxWeeklyKM              = 300.0
)

// Validate checks every populated field against its plausibility range and
// returns one message per problem found. An empty slice means the profile
// is coherent; it does not mean it is complete.
func (p *AthleteProfile) Validate() (problems []string) {
	if p.Age != nil && (*p.Age < minAge || *p.Age > maxAge) {
		problems = append(problems, fmt.Sprintf("age %d outside plausible range %d-%d", *p.Age, minAge, maxAge))
	}

	if p.HeightCM != nil && (*p.HeightCM < minHeightCM || *p.HeightCM > maxHeightCM) {
		problems = append(problems, fmt.Sprintf("height %d cm outside plausible range %d-%d", *p.HeightCM, minHeightCM, maxHeightCM))
	}

	if p.WeightKG != nil && (*p.WeightKG < minWeightKG || *p.WeightKG > maxWeightKG) {
		problems = append(problems, fmt.Sprintf("weight %.1f kg outside plausible range %.0f-%.0f", *p.WeightKG, minWeightKG, maxWeightKG))
	}

	if p.MaxHR != nil && (*p.MaxHR < 120 || *p.MaxHR > maxHR) {
		problems = append(problems, fmt.Sprintf("max heart rate %d outside plausible range 120-%d", *p.MaxHR, maxHR))
	}

	if p.RestingHR != nil && (*p.RestingHR < minHR || *p.RestingHR > 120) {
		problems = append(problems, fmt.Sprintf("resting heart rate %d outside plausible range %d-120", *p.RestingHR, minHR))
	}

	if p.MaxHR != nil && p.RestingHR != nil && *p.MaxHR <= *p.RestingHR {
		problems = append(problems, fmt.Sprintf("max heart rate %d must exceed resting heart rate %d", *p.MaxHR, *p.RestingHR))
	}

	if p.VO2Max != nil && (*p.VO2Max < minVO2Max || *p.VO2Max > maxVO2Max) {
		problems = append(problems, fmt.Sprintf("VO2max %.1f outside plausible range %.0f-%.0f", *p.VO2Max, minVO2Max, maxVO2Max))
	}

	if p.LactateThresholdBPM != nil && p.MaxHR != nil && *p.LactateThresholdBPM > *p.MaxHR {
		problems = append(problems, fmt.Sprintf("lactate threshold %d exceeds max heart rate %d", *p.LactateThresholdBPM, *p.MaxHR))
	}

	if p.AvgWeeklyKM != nil && (*p.AvgWeeklyKM < 0 || *p.AvgWeeklyKM > maxWeeklyKM) {
		problems = append(problems, fmt.Sprintf("weekly volume %.1f km outside plausible range 0-%.0f", *p.AvgWeeklyKM, maxWeeklyKM))
	}

	if p.ExperienceYears != nil && p.Age != nil && *p.ExperienceYears > *p.Age {
		problems = append(problems, fmt.Sprintf("running experience %d years exceeds age %d", *p.ExperienceYears, *p.Age))
	}

	for label, pb := range p.PersonalBests {
		if pb == "" {
			continue
		}
		if _, err := ParseClockTime(pb); err != nil {
			problems = append(problems, fmt.Sprintf("personal best for %s is not a valid time: %q", label, pb))
		}
	}

	if p.MainObjective != nil {
		problems = append(problems, validateRace("main objective", p.MainObjective)...)
	}
	for i := range p.IntermediateRaces {
		problems = append(problems, validateRace(fmt.Sprintf("intermediate race %d", i+1), &p.IntermediateRaces[i])...)
	}

	return problems
}

func validateRace(label string, r *Race) (problems []string) {
	if r.DistanceKM <= 0 || r.DistanceKM > 500 {
		problems = append(problems, fmt.Sprintf("%s: distance %.1f km is not plausible", label, r.DistanceKM))
	}

	if r.Date != "" {
		if _, err := ValidateRaceDate(r.Date); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %s", label, err))
		}
	}

	if r.GoalTime != "" {
		if _, err := ParseClockTime(r.GoalTime); err != nil {
			problems = append(problems, fmt.Sprintf("%s: goal time %q is not a valid time", label, r.GoalTime))
		}
	}

	return problems
}

// ValidateRaceDate parses a YYYY-MM-DD race date and returns the number of
// full weeks between now and the race. Dates in the past are errors.
func ValidateRaceDate(date string) (weeksOut int, err error) {
	parsed, parseErr := time.Parse("2006-01-02", date)
	if parseErr != nil {
		err = errors.Wrapf(parseErr, "invalid race date %q (expected YYYY-MM-DD)", date)
		return weeksOut, err
	}

	until := time.Until(parsed)
	if until < 0 {
		err = errors.Errorf("race date %s is in the past", date)
		return weeksOut, err
	}

	weeksOut = int(until.Hours() / (24 * 7))

	return weeksOut, err
}
