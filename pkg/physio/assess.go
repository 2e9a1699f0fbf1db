package physio

import (
	"errors"

	"github.com/joseantonio2001/Running-Fit-Tech/pkg/profile"
)

// Assessment aggregates every derivable metric for one athlete. Fields
// stay nil when the profile lacks the inputs to compute them.
type Assessment struct {
	BMI              *float64       `json:"bmi,omitempty"`
	HeartRateReserve *int           `json:"heart_rate_reserve,omitempty"`
	Zones            *TrainingZones `json:"training_zones,omitempty"`
	VO2MaxEstimate   *float64       `json:"vo2max_estimate,omitempty"`
	FitnessBand      string         `json:"fitness_band,omitempty"`
	PredictedPaces   []RacePace     `json:"predicted_paces,omitempty"`
	Insights         []string       `json:"insights,omitempty"`
}

// Assess computes everything the profile's data allows. Missing inputs
// simply leave the corresponding field unset; incoherent inputs (for
// example a max heart rate at or below resting) abort with an
// *InconsistentDataError because downstream zones would be garbage.
func Assess(p *profile.AthleteProfile) (a Assessment, err error) {
	if p.HeightCM != nil && p.WeightKG != nil {
		bmi, bmiErr := BMI(*p.HeightCM, *p.WeightKG)
		if bmiErr == nil {
			a.BMI = &bmi
		}
	}

	if p.MaxHR != nil && p.RestingHR != nil {
		reserve, hrErr := HeartRateReserve(*p.MaxHR, *p.RestingHR)
		if hrErr != nil {
			var inconsistent *InconsistentDataError
			if errors.As(hrErr, &inconsistent) {
				err = hrErr
				return a, err
			}
		} else {
			a.HeartRateReserve = &reserve

			zones, zonesErr := KarvonenZones(*p.MaxHR, *p.RestingHR)
			if zonesErr == nil {
				a.Zones = &zones
			}
		}
	}

	// A lab-measured VO2max wins over the race-result estimate.
	if p.VO2Max != nil {
		a.VO2MaxEstimate = p.VO2Max
	} else {
		a.VO2MaxEstimate = EstimateVO2Max(p.PersonalBests, p.Age)
	}

	if a.VO2MaxEstimate != nil {
		a.FitnessBand = FitnessLabel(*a.VO2MaxEstimate)
		a.PredictedPaces = PredictRacePaces(*a.VO2MaxEstimate)
	}

	a.Insights = Insights(p, &a)

	return a, err
}
