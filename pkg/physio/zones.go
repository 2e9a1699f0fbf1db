package physio

import "math"

// Zone is one Karvonen training zone expressed both as a fraction of the
// heart rate reserve and as concrete bpm bounds.
type Zone struct {
	Label   string  `json:"label"`
	LowPct  float64 `json:"low_pct"`
	HighPct float64 `json:"high_pct"`
	LowBPM  int     `json:"low_bpm"`
	HighBPM int     `json:"high_bpm"`
}

// TrainingZones holds the five canonical zones in ascending intensity.
type TrainingZones [5]Zone

// zoneBands defines the canonical five-zone Karvonen model. Labels are
// the only zone names the plan generator is allowed to reference.
//
//nolint:gochecknoglobals // static zone definition
var zoneBands = [5]struct {
	label string
	low   float64
	high  float64
}{
	{"Recovery", 0.50, 0.60},
	{"Aerobic Base", 0.60, 0.70},
	{"Aerobic", 0.70, 0.80},
	{"Anaerobic Threshold", 0.80, 0.90},
	{"VO2max", 0.90, 1.00},
}

// ZoneLabels returns the five canonical zone labels in ascending order.
func ZoneLabels() (labels []string) {
	labels = make([]string, len(zoneBands))
	for i, band := range zoneBands {
		labels[i] = band.label
	}
	return labels
}

// KnownZoneLabel reports whether label is one of the five canonical ones.
func KnownZoneLabel(label string) (known bool) {
	for _, band := range zoneBands {
		if band.label == label {
			return true
		}
	}
	return known
}

// KarvonenZones computes the five training zones for the given max and
// resting heart rates. Each boundary bpm is computed once so adjacent
// zones share it exactly; rounding can never open a gap between zones.
func KarvonenZones(maxHR, restingHR int) (zones TrainingZones, err error) {
	reserve, err := HeartRateReserve(maxHR, restingHR)
	if err != nil {
		return zones, err
	}

	boundary := func(pct float64) (bpm int) {
		bpm = restingHR + int(math.Round(float64(reserve)*pct))
		return bpm
	}

	for i, band := range zoneBands {
		zones[i] = Zone{
			Label:   band.label,
			LowPct:  band.low,
			HighPct: band.high,
			LowBPM:  boundary(band.low),
			HighBPM: boundary(band.high),
		}
	}

	return zones, err
}
