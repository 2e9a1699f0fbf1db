package physio

import (
	"errors"
	"testing"

	"github.com/joseantonio2001/Running-Fit-Tech/pkg/profile"
)

func TestAssessSampleProfile(t *testing.T) {
	p := profile.NewSample()

	a, err := Assess(p)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if a.BMI == nil {
		t.Fatal("expected a BMI")
	}
	if *a.BMI != 20.7 {
		t.Errorf("expected BMI 20.7, got %.1f", *a.BMI)
	}

	if a.HeartRateReserve == nil || *a.HeartRateReserve != 143 {
		t.Error("expected heart rate reserve 143")
	}

	if a.Zones == nil {
		t.Fatal("expected training zones")
	}
	if a.Zones[4].HighBPM != 184 {
		t.Errorf("top zone should end at max heart rate 184, got %d", a.Zones[4].HighBPM)
	}

	// The sample carries a measured VO2max; it must win over estimation.
	if a.VO2MaxEstimate == nil || *a.VO2MaxEstimate != 60.0 {
		t.Error("expected the measured VO2max of 60.0")
	}
	if a.FitnessBand != "Competitivo" {
		t.Errorf("expected fitness band Competitivo, got %q", a.FitnessBand)
	}

	if len(a.PredictedPaces) != 4 {
		t.Errorf("expected 4 predicted paces, got %d", len(a.PredictedPaces))
	}

	if len(a.Insights) == 0 {
		t.Error("expected at least one insight")
	}
}

func TestAssessPartialProfile(t *testing.T) {
	p := profile.New()
	p.Name = "Ana"

	a, err := Assess(p)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if a.BMI != nil || a.HeartRateReserve != nil || a.Zones != nil {
		t.Error("expected no derived metrics for an empty profile")
	}
	if a.VO2MaxEstimate != nil {
		t.Error("expected no VO2max estimate without personal bests")
	}
	if len(a.PredictedPaces) != 0 {
		t.Error("expected no pace predictions without a VO2max")
	}
}

func TestAssessInconsistentHeartRates(t *testing.T) {
	p := profile.New()
	maxHR := 150
	restingHR := 160
	p.MaxHR = &maxHR
	p.RestingHR = &restingHR

	_, err := Assess(p)
	var inconsistent *InconsistentDataError
	if !errors.As(err, &inconsistent) {
		t.Fatalf("expected InconsistentDataError, got %v", err)
	}
}

func TestAssessEstimatesWhenUnmeasured(t *testing.T) {
	p := profile.New()
	age := 30
	p.Age = &age
	p.PersonalBests["10k"] = "00:39:24" // 2364s, VDOT 50 before correction

	a, err := Assess(p)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if a.VO2MaxEstimate == nil {
		t.Fatal("expected a VO2max estimate from the 10K result")
	}
	// 5 years past 25 shaves 5% off VDOT 50.
	if *a.VO2MaxEstimate != 47.5 {
		t.Errorf("expected estimate 47.5, got %.1f", *a.VO2MaxEstimate)
	}
}
