package profile

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// SchemaVersion identifies the on-disk profile layout.
const SchemaVersion = "1.0"

// The on-disk document groups fields into thematic sections so that both
// humans and the plan generator read the same structure.
type document struct {
	Version     string             `json:"version"`
	GeneratedAt string             `json:"generated_at"`
	Athlete     athleteSection     `json:"athlete"`
	Physiology  physiologySection  `json:"physiological_metrics"`
	Training    trainingSection    `json:"training_context"`
	Performance performanceSection `json:"performance_data"`
	Goals       goalsSection       `json:"race_goals"`
	Injuries    []Injury           `json:"injury_history"`
}

type athleteSection struct {
	Name     string   `json:"name"`
	Age      *int     `json:"age"`
	Gender   string   `json:"gender"`
	HeightCM *int     `json:"height_cm"`
	WeightKG *float64 `json:"weight_kg"`
}

type physiologySection struct {
	MaxHR               *int     `json:"max_hr"`
	RestingHR           *int     `json:"resting_hr"`
	HRVMS               *int     `json:"hrv_ms"`
	VO2Max              *float64 `json:"vo2max"`
	LactateThresholdBPM *int     `json:"lactate_threshold_bpm"`
}

type trainingSection struct {
	AvgWeeklyKM              *float64 `json:"avg_weekly_km"`
	TrainingDaysPerWeek      string   `json:"training_days_per_week"`
	ExperienceYears          *int     `json:"experience_years"`
	CurrentTrainingPeriod    string   `json:"current_training_period"`
	StrengthTrainingHistory  bool     `json:"strength_training_history"`
	IncludeStrengthTraining  bool     `json:"include_strength_training"`
	QualitySessionPreference string   `json:"quality_session_preference"`
}

type performanceSection struct {
	PersonalBests map[string]string `json:"personal_bests"`
}

type goalsSection struct {
	MainObjective     *Race  `json:"main_objective"`
	IntermediateRaces []Race `json:"intermediate_races"`
}

func (p *AthleteProfile) toDocument() (doc document) {
	doc = document{
		Version:     SchemaVersion,
		GeneratedAt: p.GeneratedAt,
		Athlete: athleteSection{
			Name:     p.Name,
			Age:      p.Age,
			Gender:   p.Gender,
			HeightCM: p.HeightCM,
			WeightKG: p.WeightKG,
		},
		Physiology: physiologySection{
			MaxHR:               p.MaxHR,
			RestingHR:           p.RestingHR,
			HRVMS:               p.HRVMS,
			VO2Max:              p.VO2Max,
			LactateThresholdBPM: p.LactateThresholdBPM,
		},
		Training: trainingSection{
			AvgWeeklyKM:              p.AvgWeeklyKM,
			TrainingDaysPerWeek:      p.TrainingDaysPerWeek,
			ExperienceYears:          p.ExperienceYears,
			CurrentTrainingPeriod:    p.CurrentTrainingPeriod,
			StrengthTrainingHistory:  p.StrengthTrainingHistory,
			IncludeStrengthTraining:  p.IncludeStrengthTraining,
			QualitySessionPreference: p.QualitySessionPreference,
		},
		Performance: performanceSection{PersonalBests: p.PersonalBests},
		Goals: goalsSection{
			MainObjective:     p.MainObjective,
			IntermediateRaces: p.IntermediateRaces,
		},
		Injuries: p.Injuries,
	}

	return doc
}

func fromDocument(doc document) (p *AthleteProfile) {
	p = &AthleteProfile{
		GeneratedAt:              doc.GeneratedAt,
		Name:                     doc.Athlete.Name,
		Age:                      doc.Athlete.Age,
		Gender:                   doc.Athlete.Gender,
		HeightCM:                 doc.Athlete.HeightCM,
		WeightKG:                 doc.Athlete.WeightKG,
		MaxHR:                    doc.Physiology.MaxHR,
		RestingHR:                doc.Physiology.RestingHR,
		HRVMS:                    doc.Physiology.HRVMS,
		VO2Max:                   doc.Physiology.VO2Max,
		LactateThresholdBPM:      doc.Physiology.LactateThresholdBPM,
		AvgWeeklyKM:              doc.Training.AvgWeeklyKM,
		TrainingDaysPerWeek:      doc.Training.TrainingDaysPerWeek,
		ExperienceYears:          doc.Training.ExperienceYears,
		CurrentTrainingPeriod:    doc.Training.CurrentTrainingPeriod,
		StrengthTrainingHistory:  doc.Training.StrengthTrainingHistory,
		IncludeStrengthTraining:  doc.Training.IncludeStrengthTraining,
		QualitySessionPreference: doc.Training.QualitySessionPreference,
		PersonalBests:            doc.Performance.PersonalBests,
		MainObjective:            doc.Goals.MainObjective,
		IntermediateRaces:        doc.Goals.IntermediateRaces,
		Injuries:                 doc.Injuries,
	}

	if p.PersonalBests == nil {
		p.PersonalBests = make(map[string]string)
	}

	return p
}

// MarshalIndented renders the profile as the sectioned JSON document.
func (p *AthleteProfile) MarshalIndented() (data []byte, err error) {
	data, err = json.MarshalIndent(p.toDocument(), "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal profile")
		return data, err
	}

	return data, err
}

// Save writes the profile to path as sectioned JSON.
func (p *AthleteProfile) Save(path string) (err error) {
	data, err := p.MarshalIndented()
	if err != nil {
		return err
	}

	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		err = errors.Wrapf(err, "failed to write profile to %s", path)
		return err
	}

	return err
}

// Load reads a profile previously written by Save.
func Load(path string) (p *AthleteProfile, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read profile from %s", path)
		return p, err
	}

	var doc document
	err = json.Unmarshal(data, &doc)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse profile %s", path)
		return p, err
	}

	p = fromDocument(doc)

	return p, err
}
