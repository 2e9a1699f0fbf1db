package physio

import "math"

// BMI computes body mass index from height in centimeters and weight in
// kilograms, rounded to one decimal.
func BMI(heightCM int, weightKG float64) (bmi float64, err error) {
	if heightCM <= 0 {
		err = &MissingDataError{Field: "height_cm"}
		return bmi, err
	}
	if weightKG <= 0 {
		err = &MissingDataError{Field: "weight_kg"}
		return bmi, err
	}

	meters := float64(heightCM) / 100.0
	bmi = math.Round(weightKG/(meters*meters)*10) / 10

	return bmi, err
}

// HeartRateReserve computes the Karvonen reserve, max minus resting.
func HeartRateReserve(maxHR, restingHR int) (reserve int, err error) {
	if maxHR <= 0 {
		err = &MissingDataError{Field: "max_hr"}
		return reserve, err
	}
	if restingHR <= 0 {
		err = &MissingDataError{Field: "resting_hr"}
		return reserve, err
	}
	if maxHR <= restingHR {
		err = &InconsistentDataError{Reason: "max heart rate must exceed resting heart rate"}
		return reserve, err
	}

	reserve = maxHR - restingHR

	return reserve, err
}
