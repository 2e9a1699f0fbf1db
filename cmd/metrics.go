package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/joseantonio2001/Running-Fit-Tech/pkg/config"
	"github.com/joseantonio2001/Running-Fit-Tech/pkg/physio"
	"github.com/joseantonio2001/Running-Fit-Tech/pkg/profile"
)

//nolint:gochecknoglobals // Cobra boilerplate
var metricsJSON bool

//nolint:gochecknoglobals // Cobra boilerplate
var metricsSample bool

//nolint:gochecknoglobals // Cobra boilerplate
var metricsCmd = &cobra.Command{
	Use:   "metrics [profile-file]",
	Short: "Show the computed physiological metrics for a profile",
	Long: `Compute and display BMI, heart rate training zones, estimated VO2max and
predicted race times for an athlete profile, without generating a plan.

Example:
  running-fit-tech metrics
  running-fit-tech metrics ./profile.json --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMetrics,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(metricsCmd)
	metricsCmd.Flags().BoolVar(&metricsJSON, "json", false, "Output as JSON")
	metricsCmd.Flags().BoolVar(&metricsSample, "sample", false, "Use the built-in sample profile")
}

func runMetrics(cmd *cobra.Command, args []string) (err error) {
	var p *profile.AthleteProfile
	if metricsSample {
		p = profile.NewSample()
	} else {
		var cfg config.Config
		cfg, err = config.Load(getConfigFile())
		if err != nil {
			return err
		}

		path := cfg.ProfileLocation
		if len(args) > 0 {
			path = args[0]
		}
		p, err = profile.Fetch(path)
		if err != nil {
			return err
		}
	}

	var assessment physio.Assessment
	assessment, err = physio.Assess(p)
	if err != nil {
		err = errors.Wrap(err, "failed to assess profile")
		return err
	}

	if metricsJSON {
		var data []byte
		data, err = json.MarshalIndent(assessment, "", "  ")
		if err != nil {
			err = errors.Wrap(err, "failed to marshal assessment")
			return err
		}
		fmt.Println(string(data))
		return err
	}

	printAssessment(p, &assessment)

	return err
}

func printAssessment(p *profile.AthleteProfile, a *physio.Assessment) {
	fmt.Printf("Athlete: %s\n", p.Name)
	if p.MainObjective != nil {
		fmt.Printf("Objective: %s, %s (%s)\n",
			p.MainObjective.Name, profile.FormatDistance(p.MainObjective.DistanceKM), p.MainObjective.Date)
	}

	if a.BMI != nil {
		fmt.Printf("BMI: %.1f\n", *a.BMI)
	}
	if a.HeartRateReserve != nil {
		fmt.Printf("Heart rate reserve: %d bpm\n", *a.HeartRateReserve)
	}

	if a.Zones != nil {
		fmt.Println("\nTraining zones (Karvonen):")
		for i, zone := range a.Zones {
			fmt.Printf("  Z%d %-20s %3.0f-%3.0f%%  %d-%d bpm\n",
				i+1, zone.Label, zone.LowPct*100, zone.HighPct*100, zone.LowBPM, zone.HighBPM)
		}
	}

	if a.VO2MaxEstimate != nil {
		fmt.Printf("\nVO2max: %.1f ml/kg/min (%s)\n", *a.VO2MaxEstimate, a.FitnessBand)
	}

	if len(a.PredictedPaces) > 0 {
		fmt.Println("\nPredicted race times:")
		for _, pace := range a.PredictedPaces {
			fmt.Printf("  %-14s %s  (%s)\n",
				pace.Name, profile.FormatClockTime(pace.TimeSeconds), profile.FormatPace(pace.PaceSecondsPerKM))
		}
	}

	if len(a.Insights) > 0 {
		fmt.Println("\nInsights:")
		for _, insight := range a.Insights {
			fmt.Printf("  - %s\n", insight)
		}
	}
}
