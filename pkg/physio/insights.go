package physio

import (
	"fmt"

	"github.com/joseantonio2001/Running-Fit-Tech/pkg/profile"
)

// Insights derives short deterministic observations from the profile and
// its computed assessment. They are rendered verbatim into the plan
// prompt, so the wording stays stable across runs.
func Insights(p *profile.AthleteProfile, a *Assessment) (insights []string) {
	if a.BMI != nil {
		insights = append(insights, bmiInsight(*a.BMI))
	}

	if p.RestingHR != nil {
		switch {
		case *p.RestingHR < 50:
			insights = append(insights, fmt.Sprintf("Frecuencia cardíaca en reposo de %d ppm: excelente adaptación aeróbica de base.", *p.RestingHR))
		case *p.RestingHR < 60:
			insights = append(insights, fmt.Sprintf("Frecuencia cardíaca en reposo de %d ppm: buena condición cardiovascular.", *p.RestingHR))
		}
	}

	if a.VO2MaxEstimate != nil {
		insights = append(insights, fmt.Sprintf("VO2max estimado de %.1f ml/kg/min sitúa al atleta en la banda %q.", *a.VO2MaxEstimate, a.FitnessBand))
	}

	if p.AvgWeeklyKM != nil && p.MainObjective != nil {
		insights = append(insights, volumeInsight(*p.AvgWeeklyKM, p.MainObjective.DistanceKM))
	}

	if p.JustStarting() {
		insights = append(insights, "El atleta está empezando ahora: la progresión de carga debe ser conservadora las primeras semanas.")
	}

	if len(p.Injuries) > 0 {
		insights = append(insights, fmt.Sprintf("Historial de %d lesión(es): incluir trabajo preventivo y vigilar la carga en sesiones de calidad.", len(p.Injuries)))
	}

	if p.ExperienceYears != nil && *p.ExperienceYears >= 3 {
		insights = append(insights, fmt.Sprintf("Con %d años de experiencia el atleta tolera estructuras de entrenamiento avanzadas.", *p.ExperienceYears))
	}

	return insights
}

func bmiInsight(bmi float64) (insight string) {
	var band string
	switch {
	case bmi < 18.5:
		band = "por debajo del rango saludable"
	case bmi < 25:
		band = "dentro del rango saludable"
	case bmi < 30:
		band = "por encima del rango saludable"
	default:
		band = "muy por encima del rango saludable"
	}

	insight = fmt.Sprintf("IMC de %.1f, %s para corredores de fondo.", bmi, band)

	return insight
}

func volumeInsight(weeklyKM, goalDistanceKM float64) (insight string) {
	switch {
	case goalDistanceKM >= DistanceHalf && weeklyKM < 30:
		insight = fmt.Sprintf("Volumen semanal actual de %.0f km es bajo para preparar %.1f km: construir base antes de introducir intensidad.", weeklyKM, goalDistanceKM)
	case weeklyKM >= goalDistanceKM*2:
		insight = fmt.Sprintf("Volumen semanal de %.0f km ofrece una base sólida para el objetivo de %.1f km.", weeklyKM, goalDistanceKM)
	default:
		insight = fmt.Sprintf("Volumen semanal de %.0f km es adecuado como punto de partida para el objetivo de %.1f km.", weeklyKM, goalDistanceKM)
	}

	return insight
}
