// Package profile defines the athlete profile data model, the small input
// normalizers that feed it, and its JSON persistence.
package profile

import (
	"time"

	"github.com/joseantonio2001/Running-Fit-Tech/pkg/period"
)

// Injury is a single entry in the athlete's injury history.
type Injury struct {
	Type          string `json:"type"`
	DateApprox    string `json:"date_approx"`
	RecoveryDesc  string `json:"recovery_desc"`
	CurrentStatus string `json:"current_status,omitempty"`
}

// Race is a race goal, either the main objective or an intermediate race.
type Race struct {
	Name       string  `json:"name"`
	Date       string  `json:"date"` // YYYY-MM-DD
	DistanceKM float64 `json:"distance_km"`
	GoalTime   string  `json:"goal_time,omitempty"` // HH:MM:SS
	Terrain    string  `json:"terrain"`
}

// AthleteProfile is the single source of truth for one athlete. Optional
// fields are pointers; absence is explicit, never a sentinel value. The
// profile is treated as immutable input by the calculation and plan
// packages; only its own setters mutate it.
type AthleteProfile struct {
	// Identity
	Name        string
	GeneratedAt string

	// Personal info
	Age      *int
	Gender   string // normalized: "Masculino", "Femenino", "Otro"
	HeightCM *int
	WeightKG *float64

	// Physiological metrics
	MaxHR               *int
	RestingHR           *int
	HRVMS               *int
	VO2Max              *float64
	LactateThresholdBPM *int

	// Training context
	AvgWeeklyKM              *float64
	TrainingDaysPerWeek      string // "4" or "4-5"
	ExperienceYears          *int
	CurrentTrainingPeriod    string // always canonical, set via SetCurrentTrainingPeriod
	StrengthTrainingHistory  bool
	IncludeStrengthTraining  bool
	QualitySessionPreference string

	// Performance data: distance label ("5k", "10k", "half_marathon",
	// "marathon") to personal best in HH:MM:SS.
	PersonalBests map[string]string

	// Race goals
	MainObjective     *Race
	IntermediateRaces []Race

	// Injury history
	Injuries []Injury
}

// New creates an empty profile with the standard personal-best slots.
func New() (p *AthleteProfile) {
	p = &AthleteProfile{
		GeneratedAt: time.Now().Format(time.RFC3339),
		PersonalBests: map[string]string{
			"5k":            "",
			"10k":           "",
			"half_marathon": "",
			"marathon":      "",
		},
	}
	return p
}

// SetCurrentTrainingPeriod normalizes raw user input before storing it.
// The field never holds raw input; a *period.FormatError is returned for
// unparseable values and the profile is left unchanged.
func (p *AthleteProfile) SetCurrentTrainingPeriod(raw string) (err error) {
	var normalized string
	normalized, err = period.Normalize(raw)
	if err != nil {
		return err
	}
	p.CurrentTrainingPeriod = normalized
	return err
}

// JustStarting reports whether the athlete has no current training base.
func (p *AthleteProfile) JustStarting() (starting bool) {
	starting = p.CurrentTrainingPeriod == "" || p.CurrentTrainingPeriod == period.JustStarting
	return starting
}

// IsComplete reports whether the profile has the minimum data required to
// generate a training plan.
func (p *AthleteProfile) IsComplete() (complete bool) {
	complete = p.Name != "" && p.Age != nil && p.Gender != "" && p.MainObjective != nil
	return complete
}

// intPtr and friends keep sample construction readable.
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// NewSample returns the reference profile used for demos and tests.
func NewSample() (p *AthleteProfile) {
	p = New()
	p.Name = "Tomás Solórzano"
	p.Age = intPtr(19)
	p.Gender = "Masculino"
	p.HeightCM = intPtr(180)
	p.WeightKG = floatPtr(67.0)
	p.MaxHR = intPtr(184)
	p.RestingHR = intPtr(41)
	p.VO2Max = floatPtr(60.0)
	p.LactateThresholdBPM = intPtr(179)
	p.AvgWeeklyKM = floatPtr(50.0)
	p.TrainingDaysPerWeek = "5"
	p.ExperienceYears = intPtr(4)
	p.CurrentTrainingPeriod = "3 meses"
	p.StrengthTrainingHistory = false
	p.IncludeStrengthTraining = true
	p.QualitySessionPreference = "Martes, Jueves"

	p.PersonalBests = map[string]string{
		"5k":            "00:18:00",
		"10k":           "00:39:50",
		"half_marathon": "01:36:00",
		"marathon":      "",
	}

	p.MainObjective = &Race{
		Name:       "Media Maratón de Valencia",
		Date:       "2026-11-30",
		DistanceKM: 21.097,
		GoalTime:   "01:28:00",
		Terrain:    "Llano",
	}
	p.IntermediateRaces = []Race{
		{
			Name:       "10k de la Ciudad",
			Date:       "2026-10-15",
			DistanceKM: 10.0,
			GoalTime:   "00:38:00",
			Terrain:    "Llano",
		},
	}

	return p
}
