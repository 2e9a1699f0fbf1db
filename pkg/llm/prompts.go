package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joseantonio2001/Running-Fit-Tech/pkg/physio"
	"github.com/joseantonio2001/Running-Fit-Tech/pkg/profile"
)

// BuildPlanPrompt compiles the athlete profile and its computed assessment
// into the plan generation prompt. Section order is fixed; the prompt is
// deterministic for a given profile and assessment so retries resend the
// exact same request.
func BuildPlanPrompt(p *profile.AthleteProfile, a *physio.Assessment, weeks int) (prompt string) {
	var sb strings.Builder

	sb.WriteString("You are an expert running coach. Design a complete training plan for the athlete below.\n\n")

	sb.WriteString("## ATHLETE SUMMARY\n\n")
	sb.WriteString(athleteSummary(p))
	sb.WriteString("\n\n")

	sb.WriteString("## PHYSIOLOGICAL METRICS AND TRAINING ZONES\n\n")
	sb.WriteString(physiologySection(p, a))
	sb.WriteString("\n\n")

	sb.WriteString("## TRAINING CONTEXT\n\n")
	sb.WriteString(trainingContext(p))
	sb.WriteString("\n\n")

	sb.WriteString("## PERFORMANCE DATA AND PREDICTED PACES\n\n")
	sb.WriteString(performanceSection(p, a))
	sb.WriteString("\n\n")

	sb.WriteString("## RACE GOALS\n\n")
	sb.WriteString(raceGoals(p))
	sb.WriteString("\n\n")

	sb.WriteString("## INJURY HISTORY\n\n")
	sb.WriteString(injuryHistory(p))
	sb.WriteString("\n\n")

	sb.WriteString(responseFormatInstructions(p, weeks))

	prompt = sb.String()

	return prompt
}

// jsonBlock renders v as an indented JSON code block.
func jsonBlock(v interface{}) (block string) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		block = "{}"
		return block
	}
	block = string(data)
	return block
}

func athleteSummary(p *profile.AthleteProfile) (section string) {
	summary := map[string]interface{}{
		"name":   p.Name,
		"gender": p.Gender,
	}
	if p.Age != nil {
		summary["age"] = *p.Age
	}
	if p.HeightCM != nil {
		summary["height_cm"] = *p.HeightCM
	}
	if p.WeightKG != nil {
		summary["weight_kg"] = *p.WeightKG
	}

	section = jsonBlock(summary)

	return section
}

func physiologySection(p *profile.AthleteProfile, a *physio.Assessment) (section string) {
	metrics := map[string]interface{}{}
	if p.MaxHR != nil {
		metrics["max_hr"] = *p.MaxHR
	}
	if p.RestingHR != nil {
		metrics["resting_hr"] = *p.RestingHR
	}
	if p.LactateThresholdBPM != nil {
		metrics["lactate_threshold_bpm"] = *p.LactateThresholdBPM
	}
	if p.HRVMS != nil {
		metrics["hrv_ms"] = *p.HRVMS
	}
	if a.BMI != nil {
		metrics["bmi"] = *a.BMI
	}
	if a.HeartRateReserve != nil {
		metrics["heart_rate_reserve"] = *a.HeartRateReserve
	}
	if a.VO2MaxEstimate != nil {
		metrics["vo2max"] = *a.VO2MaxEstimate
		metrics["fitness_band"] = a.FitnessBand
	}
	if a.Zones != nil {
		metrics["training_zones"] = a.Zones
	}

	section = jsonBlock(metrics)

	if a.Zones != nil {
		section += fmt.Sprintf("\n\nEvery session's target_zone MUST be one of: %s.", strings.Join(physio.ZoneLabels(), ", "))
	}

	return section
}

func trainingContext(p *profile.AthleteProfile) (section string) {
	ctx := map[string]interface{}{
		"training_days_per_week":     p.TrainingDaysPerWeek,
		"current_training_period":    p.CurrentTrainingPeriod,
		"strength_training_history":  p.StrengthTrainingHistory,
		"include_strength_training":  p.IncludeStrengthTraining,
		"quality_session_preference": p.QualitySessionPreference,
	}
	if p.AvgWeeklyKM != nil {
		ctx["avg_weekly_km"] = *p.AvgWeeklyKM
	}
	if p.ExperienceYears != nil {
		ctx["experience_years"] = *p.ExperienceYears
	}

	section = jsonBlock(ctx)

	return section
}

func performanceSection(p *profile.AthleteProfile, a *physio.Assessment) (section string) {
	perf := map[string]interface{}{
		"personal_bests": p.PersonalBests,
	}
	if len(a.PredictedPaces) > 0 {
		predictions := make([]map[string]interface{}, 0, len(a.PredictedPaces))
		for _, pace := range a.PredictedPaces {
			predictions = append(predictions, map[string]interface{}{
				"distance":       pace.Name,
				"predicted_time": profile.FormatClockTime(pace.TimeSeconds),
				"pace":           profile.FormatPace(pace.PaceSecondsPerKM),
			})
		}
		perf["predicted_results"] = predictions
	}
	if len(a.Insights) > 0 {
		perf["coach_insights"] = a.Insights
	}

	section = jsonBlock(perf)

	return section
}

func raceGoals(p *profile.AthleteProfile) (section string) {
	races := make([]map[string]interface{}, 0, len(p.IntermediateRaces))
	for i := range p.IntermediateRaces {
		races = append(races, raceDetails(&p.IntermediateRaces[i]))
	}

	goals := map[string]interface{}{
		"main_objective":     raceDetails(p.MainObjective),
		"intermediate_races": races,
	}

	section = jsonBlock(goals)

	return section
}

func raceDetails(r *profile.Race) (details map[string]interface{}) {
	if r == nil {
		return details
	}

	details = map[string]interface{}{
		"name":             r.Name,
		"date":             r.Date,
		"distance_km":      r.DistanceKM,
		"distance_display": profile.FormatDistance(r.DistanceKM),
		"terrain":          r.Terrain,
	}
	if r.GoalTime != "" {
		details["goal_time"] = r.GoalTime
	}

	return details
}

func injuryHistory(p *profile.AthleteProfile) (section string) {
	if len(p.Injuries) == 0 {
		section = "No relevant injury history."
		return section
	}

	section = jsonBlock(p.Injuries)

	return section
}

func responseFormatInstructions(p *profile.AthleteProfile, weeks int) (section string) {
	directive := "The athlete has an established training habit: continue that progression, without resetting to a beginner base."
	if p.CurrentTrainingPeriod != "" {
		directive = fmt.Sprintf("The athlete has been training consistently for %s: continue that progression, without resetting to a beginner base.", p.CurrentTrainingPeriod)
	}
	if p.JustStarting() {
		directive = "The athlete is just starting: begin conservatively, with low volume and no intensity during the first weeks."
	}

	section = fmt.Sprintf(`## RESPONSE FORMAT INSTRUCTIONS

%s

Produce a %d-week plan. Write all athlete-facing text in Spanish.

Respond with a single JSON object and nothing else. No prose before or
after, no markdown code fences. The object MUST have exactly these two
top-level keys:

{
  "plan_markdown": "the complete plan as a markdown document",
  "plan_structured": {
    "weeks": [
      {
        "week_number": 1,
        "theme": "short description of the week's focus",
        "target_volume_km": 40,
        "sessions": [
          {
            "day": "Lunes",
            "activity": "description of the session",
            "duration_min": 60,
            "target_zone": "Aerobic Base",
            "rpe": "3-4",
            "notes": "optional execution notes"
          }
        ]
      }
    ]
  }
}

Every week must contain at least one session. plan_markdown and
plan_structured must describe the same plan.`, directive, weeks)

	return section
}
