package physio

import (
	"testing"
)

func TestCalculateVDOTExactRows(t *testing.T) {
	cases := []struct {
		name       string
		distanceKM float64
		seconds    int
		expected   float64
	}{
		{"5K at VDOT 50", Distance5K, 1140, 50},
		{"10K at VDOT 50", Distance10K, 2364, 50},
		{"half at VDOT 60", DistanceHalf, 4248, 60},
		{"marathon at VDOT 40", DistanceMarathon, 13248, 40},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual := CalculateVDOT(tc.distanceKM, tc.seconds)
			if actual != tc.expected {
				t.Errorf("expected VDOT %.1f, got %.1f", tc.expected, actual)
			}
		})
	}
}

func TestCalculateVDOTInterpolates(t *testing.T) {
	// 1150s for 5K falls between the VDOT 49 (1164s) and 50 (1140s) rows.
	vdot := CalculateVDOT(Distance5K, 1150)
	if vdot <= 49 || vdot >= 50 {
		t.Errorf("expected VDOT between 49 and 50, got %.1f", vdot)
	}
}

func TestCalculateVDOTClampsToTable(t *testing.T) {
	slow := CalculateVDOT(Distance5K, 3600)
	if slow != 30 {
		t.Errorf("expected clamp to VDOT 30, got %.1f", slow)
	}

	fast := CalculateVDOT(Distance5K, 600)
	if fast != 85 {
		t.Errorf("expected clamp to VDOT 85, got %.1f", fast)
	}

	if CalculateVDOT(Distance5K, 0) != 0 {
		t.Error("expected 0 for non-positive duration")
	}
}

func TestPredictTimeRoundTrip(t *testing.T) {
	seconds := PredictTime(50, Distance10K)
	if seconds != 2364 {
		t.Errorf("expected 2364s for VDOT 50 over 10K, got %d", seconds)
	}

	// Deriving VDOT from the predicted time lands back on the input.
	vdot := CalculateVDOT(Distance10K, seconds)
	if vdot != 50 {
		t.Errorf("expected round trip to VDOT 50, got %.1f", vdot)
	}
}

func TestPredictRacePacesMonotonic(t *testing.T) {
	paces := PredictRacePaces(52.5)
	if len(paces) != 4 {
		t.Fatalf("expected 4 predictions, got %d", len(paces))
	}

	for i := 1; i < len(paces); i++ {
		if paces[i].DistanceKM <= paces[i-1].DistanceKM {
			t.Fatalf("predictions out of distance order: %v", paces)
		}
		// Pace per km slows as distance grows.
		if paces[i].PaceSecondsPerKM <= paces[i-1].PaceSecondsPerKM {
			t.Errorf("pace for %s (%.1f s/km) should be slower than %s (%.1f s/km)",
				paces[i].Name, paces[i].PaceSecondsPerKM, paces[i-1].Name, paces[i-1].PaceSecondsPerKM)
		}
		if paces[i].TimeSeconds <= paces[i-1].TimeSeconds {
			t.Errorf("time for %s should exceed %s", paces[i].Name, paces[i-1].Name)
		}
	}
}

func TestEstimateVO2MaxPrefersLongestResult(t *testing.T) {
	age := 25
	pbs := map[string]string{
		"5k":            "00:19:00", // VDOT 50
		"half_marathon": "01:10:48", // 4248s, VDOT 60
	}

	estimate := EstimateVO2Max(pbs, &age)
	if estimate == nil {
		t.Fatal("expected an estimate")
	}
	if *estimate != 60 {
		t.Errorf("expected estimate 60 from the half marathon, got %.1f", *estimate)
	}
}

func TestEstimateVO2MaxAgeCorrection(t *testing.T) {
	pbs := map[string]string{"5k": "00:19:00"} // VDOT 50

	young := 25
	old := 45

	base := EstimateVO2Max(pbs, &young)
	corrected := EstimateVO2Max(pbs, &old)
	if base == nil || corrected == nil {
		t.Fatal("expected estimates for both ages")
	}
	if *base != 50 {
		t.Errorf("expected uncorrected VDOT 50, got %.1f", *base)
	}
	// 20 years past 25 means a 20% reduction.
	if *corrected != 40 {
		t.Errorf("expected age-corrected estimate 40, got %.1f", *corrected)
	}

	noAge := EstimateVO2Max(pbs, nil)
	if noAge == nil || *noAge != 50 {
		t.Error("missing age should skip the correction")
	}
}

func TestEstimateVO2MaxWithoutResults(t *testing.T) {
	if EstimateVO2Max(map[string]string{}, nil) != nil {
		t.Error("expected nil estimate with no personal bests")
	}

	pbs := map[string]string{"5k": "", "10k": "not-a-time"}
	if EstimateVO2Max(pbs, nil) != nil {
		t.Error("expected nil estimate with no parseable personal bests")
	}
}

func TestFitnessLabelBands(t *testing.T) {
	cases := []struct {
		vdot     float64
		expected string
	}{
		{80, "Elite"},
		{70, "Muy competitivo"},
		{60, "Competitivo"},
		{50, "Avanzado"},
		{40, "Intermedio"},
		{32, "Principiante"},
		{20, "Novato"},
	}

	for _, tc := range cases {
		actual := FitnessLabel(tc.vdot)
		if actual != tc.expected {
			t.Errorf("VDOT %.0f: expected %q, got %q", tc.vdot, tc.expected, actual)
		}
	}
}

func TestInterpolateNonStandardDistance(t *testing.T) {
	// 15K sits between 10K and the half marathon; so must its time.
	seconds := PredictTime(50, 15.0)
	if seconds <= 2364 || seconds >= 5100 {
		t.Errorf("15K prediction %ds should fall between the 10K and half marathon times", seconds)
	}
}
