package physio

import (
	"math"

	"github.com/joseantonio2001/Running-Fit-Tech/pkg/profile"
)

// Standard race distances in kilometers.
const (
	Distance5K       = 5.0
	Distance10K      = 10.0
	DistanceHalf     = 21.097
	DistanceMarathon = 42.195
)

// vdotEntry is one row of the Jack Daniels VDOT lookup table. Times are
// finish times in seconds for each reference distance.
type vdotEntry struct {
	vdot     float64
	time5K   float64
	time10K  float64
	timeHalf float64
	timeFull float64
}

// vdotTable covers recreational through elite runners (VDOT 30-85).
//
//nolint:gochecknoglobals // static lookup table
var vdotTable = []vdotEntry{
	{30, 1860, 3876, 8388, 17496},
	{31, 1806, 3762, 8136, 16980},
	{32, 1752, 3654, 7896, 16488},
	{33, 1704, 3552, 7674, 16020},
	{34, 1656, 3450, 7458, 15570},
	{35, 1614, 3360, 7254, 15138},
	{36, 1572, 3270, 7062, 14730},
	{37, 1530, 3186, 6876, 14334},
	{38, 1494, 3102, 6702, 13956},
	{39, 1458, 3024, 6534, 13596},
	{40, 1422, 2952, 6372, 13248},
	{41, 1392, 2880, 6222, 12918},
	{42, 1356, 2814, 6078, 12600},
	{43, 1326, 2748, 5940, 12300},
	{44, 1296, 2688, 5802, 12006},
	{45, 1266, 2628, 5676, 11730},
	{46, 1242, 2568, 5550, 11460},
	{47, 1212, 2514, 5430, 11202},
	{48, 1188, 2460, 5316, 10956},
	{49, 1164, 2412, 5208, 10722},
	{50, 1140, 2364, 5100, 10494},
	{51, 1116, 2316, 4998, 10278},
	{52, 1098, 2274, 4902, 10068},
	{53, 1074, 2232, 4806, 9870},
	{54, 1056, 2190, 4716, 9678},
	{55, 1038, 2154, 4632, 9492},
	{56, 1020, 2112, 4548, 9312},
	{57, 1002, 2076, 4470, 9144},
	{58, 984, 2040, 4392, 8976},
	{59, 972, 2010, 4320, 8820},
	{60, 954, 1974, 4248, 8664},
	{61, 942, 1944, 4182, 8520},
	{62, 924, 1914, 4116, 8376},
	{63, 912, 1884, 4050, 8238},
	{64, 900, 1860, 3990, 8106},
	{65, 888, 1830, 3930, 7980},
	{66, 876, 1806, 3876, 7860},
	{67, 864, 1782, 3822, 7740},
	{68, 852, 1758, 3768, 7626},
	{69, 840, 1734, 3720, 7518},
	{70, 834, 1716, 3672, 7410},
	{71, 822, 1692, 3624, 7308},
	{72, 810, 1674, 3582, 7212},
	{73, 804, 1656, 3540, 7116},
	{74, 792, 1632, 3498, 7026},
	{75, 786, 1614, 3456, 6936},
	{76, 774, 1596, 3420, 6852},
	{77, 768, 1578, 3384, 6768},
	{78, 756, 1560, 3348, 6690},
	{79, 750, 1548, 3312, 6612},
	{80, 744, 1530, 3282, 6540},
	{81, 738, 1518, 3246, 6468},
	{82, 726, 1500, 3216, 6396},
	{83, 720, 1488, 3186, 6330},
	{84, 714, 1470, 3156, 6264},
	{85, 708, 1458, 3126, 6198},
}

// timeForDistance returns the entry's finish time for a distance in km,
// using power-law interpolation for non-standard distances.
func (e vdotEntry) timeForDistance(distanceKM float64) (seconds float64) {
	switch {
	case matchesDistance(distanceKM, Distance5K):
		return e.time5K
	case matchesDistance(distanceKM, Distance10K):
		return e.time10K
	case matchesDistance(distanceKM, DistanceHalf):
		return e.timeHalf
	case matchesDistance(distanceKM, DistanceMarathon):
		return e.timeFull
	default:
		return e.interpolateTime(distanceKM)
	}
}

// matchesDistance checks whether a distance is within 5% of a target.
func matchesDistance(distance, target float64) (matches bool) {
	matches = math.Abs(distance-target) <= target*0.05
	return matches
}

// interpolateTime estimates the finish time for a non-standard distance
// using a power-law fit between the bracketing reference distances.
func (e vdotEntry) interpolateTime(distanceKM float64) (seconds float64) {
	type distTime struct {
		dist float64
		time float64
	}

	standards := []distTime{
		{Distance5K, e.time5K},
		{Distance10K, e.time10K},
		{DistanceHalf, e.timeHalf},
		{DistanceMarathon, e.timeFull},
	}

	if distanceKM <= standards[0].dist {
		// Scale down from 5K using Riegel's exponent.
		seconds = standards[0].time * math.Pow(distanceKM/standards[0].dist, 1.06)
		return seconds
	}
	if distanceKM >= standards[len(standards)-1].dist {
		last := standards[len(standards)-1]
		seconds = last.time * math.Pow(distanceKM/last.dist, 1.06)
		return seconds
	}

	var lower, upper distTime
	for i := 1; i < len(standards); i++ {
		if distanceKM <= standards[i].dist {
			lower = standards[i-1]
			upper = standards[i]
			break
		}
	}

	// Log-log interpolation between the bracketing distances.
	fraction := (math.Log(distanceKM) - math.Log(lower.dist)) / (math.Log(upper.dist) - math.Log(lower.dist))
	seconds = math.Exp(math.Log(lower.time) + fraction*(math.Log(upper.time)-math.Log(lower.time)))

	return seconds
}

// CalculateVDOT derives a VDOT value from a race result, interpolating
// linearly between table rows and rounding to one decimal. Results slower
// than the slowest row clamp to the table edge.
func CalculateVDOT(distanceKM float64, durationSeconds int) (vdot float64) {
	if durationSeconds <= 0 || distanceKM <= 0 {
		return vdot
	}

	duration := float64(durationSeconds)

	if duration >= vdotTable[0].timeForDistance(distanceKM) {
		vdot = vdotTable[0].vdot
		return vdot
	}
	last := len(vdotTable) - 1
	if duration <= vdotTable[last].timeForDistance(distanceKM) {
		vdot = vdotTable[last].vdot
		return vdot
	}

	// Times decrease monotonically as VDOT rises, so binary search for
	// the bracketing rows.
	low, high := 0, last
	for high-low > 1 {
		mid := (low + high) / 2
		if duration <= vdotTable[mid].timeForDistance(distanceKM) {
			low = mid
		} else {
			high = mid
		}
	}

	lowTime := vdotTable[low].timeForDistance(distanceKM)
	highTime := vdotTable[high].timeForDistance(distanceKM)
	if lowTime == highTime {
		vdot = vdotTable[low].vdot
		return vdot
	}

	fraction := (lowTime - duration) / (lowTime - highTime)
	vdot = vdotTable[low].vdot + fraction*(vdotTable[high].vdot-vdotTable[low].vdot)
	vdot = math.Round(vdot*10) / 10

	return vdot
}

// PredictTime predicts the finish time in seconds for a target distance
// given a VDOT value.
func PredictTime(vdot float64, distanceKM float64) (seconds int) {
	if vdot <= 0 || distanceKM <= 0 {
		return seconds
	}

	last := len(vdotTable) - 1
	low, high := 0, last
	switch {
	case vdot <= vdotTable[0].vdot:
		low, high = 0, 0
	case vdot >= vdotTable[last].vdot:
		low, high = last, last
	default:
		for high-low > 1 {
			mid := (low + high) / 2
			if vdotTable[mid].vdot <= vdot {
				low = mid
			} else {
				high = mid
			}
		}
	}

	if low == high {
		seconds = int(math.Round(vdotTable[low].timeForDistance(distanceKM)))
		return seconds
	}

	fraction := (vdot - vdotTable[low].vdot) / (vdotTable[high].vdot - vdotTable[low].vdot)
	lowTime := vdotTable[low].timeForDistance(distanceKM)
	highTime := vdotTable[high].timeForDistance(distanceKM)
	seconds = int(math.Round(lowTime + fraction*(highTime-lowTime)))

	return seconds
}

// FitnessLabel maps a VDOT value onto a coarse fitness band.
func FitnessLabel(vdot float64) (label string) {
	switch {
	case vdot >= 75:
		label = "Elite"
	case vdot >= 65:
		label = "Muy competitivo"
	case vdot >= 55:
		label = "Competitivo"
	case vdot >= 45:
		label = "Avanzado"
	case vdot >= 38:
		label = "Intermedio"
	case vdot >= 30:
		label = "Principiante"
	default:
		label = "Novato"
	}

	return label
}

// pbDistances maps personal-best keys to distances in km, ordered longest
// first. Longer races weight aerobic capacity more heavily, so the
// longest available result drives the estimate.
//
//nolint:gochecknoglobals // static lookup table
var pbDistances = []struct {
	key  string
	dist float64
}{
	{"marathon", DistanceMarathon},
	{"half_marathon", DistanceHalf},
	{"10k", Distance10K},
	{"5k", Distance5K},
}

// EstimateVO2Max estimates VO2max from the athlete's personal bests. The
// longest parseable result is converted to VDOT and corrected downward by
// 1% per year of age past 25, clamped to the table range 25-85. Returns
// nil when no personal best can be parsed.
func EstimateVO2Max(personalBests map[string]string, age *int) (estimate *float64) {
	for _, pb := range pbDistances {
		raw, ok := personalBests[pb.key]
		if !ok || raw == "" {
			continue
		}

		seconds, err := profile.ParseClockTime(raw)
		if err != nil {
			continue
		}

		vdot := CalculateVDOT(pb.dist, seconds)
		if vdot <= 0 {
			continue
		}

		if age != nil && *age > 25 {
			vdot *= 1.0 - 0.01*float64(*age-25)
		}

		vdot = math.Min(math.Max(vdot, 25), 85)
		vdot = math.Round(vdot*10) / 10
		estimate = &vdot

		return estimate
	}

	return estimate
}

// RacePace is a predicted result for one reference distance.
type RacePace struct {
	Name             string  `json:"name"`
	DistanceKM       float64 `json:"distance_km"`
	TimeSeconds      int     `json:"time_seconds"`
	PaceSecondsPerKM float64 `json:"pace_seconds_per_km"`
}

// PredictRacePaces predicts times and paces for the four reference
// distances, ordered shortest to longest.
func PredictRacePaces(vdot float64) (paces []RacePace) {
	if vdot <= 0 {
		return paces
	}

	targets := []struct {
		name string
		dist float64
	}{
		{"5K", Distance5K},
		{"10K", Distance10K},
		{"Media maratón", DistanceHalf},
		{"Maratón", DistanceMarathon},
	}

	paces = make([]RacePace, 0, len(targets))
	for _, target := range targets {
		seconds := PredictTime(vdot, target.dist)
		paces = append(paces, RacePace{
			Name:             target.name,
			DistanceKM:       target.dist,
			TimeSeconds:      seconds,
			PaceSecondsPerKM: float64(seconds) / target.dist,
		})
	}

	return paces
}
