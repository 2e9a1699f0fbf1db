package physio

import (
	"errors"
	"testing"
)

func TestKarvonenZonesReferenceCase(t *testing.T) {
	zones, err := KarvonenZones(190, 50)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expected := [5][2]int{
		{120, 134},
		{134, 148},
		{148, 162},
		{162, 176},
		{176, 190},
	}

	for i, zone := range zones {
		if zone.LowBPM != expected[i][0] || zone.HighBPM != expected[i][1] {
			t.Errorf("zone %d: expected %d-%d bpm, got %d-%d", i+1, expected[i][0], expected[i][1], zone.LowBPM, zone.HighBPM)
		}
	}
}

func TestKarvonenZonesLabels(t *testing.T) {
	zones, err := KarvonenZones(184, 41)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expected := []string{"Recovery", "Aerobic Base", "Aerobic", "Anaerobic Threshold", "VO2max"}
	for i, zone := range zones {
		if zone.Label != expected[i] {
			t.Errorf("zone %d: expected label %q, got %q", i+1, expected[i], zone.Label)
		}
		if !KnownZoneLabel(zone.Label) {
			t.Errorf("zone label %q should be known", zone.Label)
		}
	}

	if KnownZoneLabel("Tempo") {
		t.Error("'Tempo' should not be a known zone label")
	}
}

// Adjacent zones must share their boundary bpm exactly for any input pair,
// and the band must run from 50% of reserve up to the max heart rate.
func TestKarvonenZonesContiguity(t *testing.T) {
	pairs := [][2]int{
		{190, 50},
		{184, 41},
		{200, 65},
		{171, 58},
		{165, 44},
	}

	for _, pair := range pairs {
		maxHR, restingHR := pair[0], pair[1]
		zones, err := KarvonenZones(maxHR, restingHR)
		if err != nil {
			t.Fatalf("unexpected error for %d/%d: %s", maxHR, restingHR, err)
		}

		for i := 1; i < len(zones); i++ {
			if zones[i].LowBPM != zones[i-1].HighBPM {
				t.Errorf("%d/%d: gap between zone %d and %d: %d vs %d", maxHR, restingHR, i, i+1, zones[i-1].HighBPM, zones[i].LowBPM)
			}
		}

		if zones[4].HighBPM != maxHR {
			t.Errorf("%d/%d: top zone must end at max heart rate, got %d", maxHR, restingHR, zones[4].HighBPM)
		}

		for i, zone := range zones {
			if zone.LowBPM >= zone.HighBPM {
				t.Errorf("%d/%d: zone %d is empty or inverted: %d-%d", maxHR, restingHR, i+1, zone.LowBPM, zone.HighBPM)
			}
		}
	}
}

func TestKarvonenZonesInconsistent(t *testing.T) {
	_, err := KarvonenZones(150, 160)
	var inconsistent *InconsistentDataError
	if !errors.As(err, &inconsistent) {
		t.Fatalf("expected InconsistentDataError, got %v", err)
	}
}

func TestZoneLabelsOrder(t *testing.T) {
	labels := ZoneLabels()
	if len(labels) != 5 {
		t.Fatalf("expected 5 labels, got %d", len(labels))
	}
	if labels[0] != "Recovery" || labels[4] != "VO2max" {
		t.Errorf("unexpected label ordering: %v", labels)
	}
}
