package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/joseantonio2001/Running-Fit-Tech/pkg/config"
	"github.com/joseantonio2001/Running-Fit-Tech/pkg/llm"
	"github.com/joseantonio2001/Running-Fit-Tech/pkg/physio"
	"github.com/joseantonio2001/Running-Fit-Tech/pkg/profile"
	"github.com/joseantonio2001/Running-Fit-Tech/pkg/render"
)

//nolint:gochecknoglobals // Cobra boilerplate
var outputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var skipPDF bool

//nolint:gochecknoglobals // Cobra boilerplate
var useSample bool

//nolint:gochecknoglobals // Cobra boilerplate
var modelOverride string

//nolint:gochecknoglobals // Cobra boilerplate
var planCmd = &cobra.Command{
	Use:   "plan [profile-file]",
	Short: "Generate a personalized training plan",
	Long: `Generate a multi-week training plan from an athlete profile.

The profile file defaults to the profile_location in the config. The plan
is written as markdown and JSON, plus a PDF when pandoc is available.

Example:
  running-fit-tech plan
  running-fit-tech plan ./profile.json --output-dir ./plans
  running-fit-tech plan --sample --skip-pdf`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory (default from config)")
	planCmd.Flags().BoolVar(&skipPDF, "skip-pdf", false, "Skip PDF generation")
	planCmd.Flags().BoolVar(&useSample, "sample", false, "Use the built-in sample profile")
	planCmd.Flags().StringVar(&modelOverride, "model", "", "Model to use (default from config)")
}

func runPlan(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		return err
	}

	var p *profile.AthleteProfile
	p, err = loadProfile(cfg, args)
	if err != nil {
		return err
	}

	problems := p.Validate()
	if len(problems) > 0 {
		err = errors.Errorf("profile is not coherent:\n  - %s", strings.Join(problems, "\n  - "))
		return err
	}
	if !p.IsComplete() {
		err = errors.New("profile is incomplete: name, age, gender and a main objective are required")
		return err
	}

	var assessment physio.Assessment
	assessment, err = physio.Assess(p)
	if err != nil {
		err = errors.Wrap(err, "failed to assess profile")
		return err
	}

	if getVerbose() {
		printAssessment(p, &assessment)
	}

	model := modelOverride
	if model == "" {
		model = cfg.GetModel()
	}

	client := llm.NewClient(cfg.GoogleAPIKey, model)
	orchestrator := llm.NewOrchestrator(client, cfg.GetMaxAttempts(), cfg.GetBackoff())

	fmt.Printf("Generating plan for %s with %s...\n", p.Name, model)

	var plan *llm.GeneratedPlan
	plan, err = orchestrator.GeneratePlan(ctx, p, &assessment)
	if err != nil {
		return err
	}

	var outDir string
	outDir, err = createPlanOutputDir(baseOutputDir(cfg), p.Name)
	if err != nil {
		return err
	}

	markdownPath := filepath.Join(outDir, "plan.md")
	err = render.WriteMarkdown(plan.Markdown, markdownPath)
	if err != nil {
		return err
	}

	err = render.WritePlanJSON(plan, filepath.Join(outDir, "plan.json"))
	if err != nil {
		return err
	}

	err = render.WriteProfileJSON(p, filepath.Join(outDir, "profile.json"))
	if err != nil {
		return err
	}

	if !skipPDF {
		pdfErr := render.RenderPDF(markdownPath, filepath.Join(outDir, "plan.pdf"), cfg.Pandoc.TemplatePath)
		if pdfErr != nil {
			// The markdown and JSON outputs are already on disk; a missing
			// pandoc install should not fail the whole run.
			fmt.Fprintf(os.Stderr, "Warning: PDF generation failed: %s\n", pdfErr)
		}
	}

	fmt.Printf("Plan %s generated in %d attempt(s): %s\n", plan.ID, plan.Attempts, outDir)

	return err
}

func loadProfile(cfg config.Config, args []string) (p *profile.AthleteProfile, err error) {
	if useSample {
		p = profile.NewSample()
		return p, err
	}

	path := cfg.ProfileLocation
	if len(args) > 0 {
		path = args[0]
	}

	// The profile argument can be a local file or an http(s) URL.
	p, err = profile.Fetch(path)

	return p, err
}

func baseOutputDir(cfg config.Config) (dir string) {
	dir = outputDir
	if dir == "" {
		dir = cfg.Defaults.OutputDir
	}
	return dir
}

// createPlanOutputDir creates a per-run directory named after the athlete
// and the date, so repeated runs never clobber each other.
func createPlanOutputDir(baseDir, athleteName string) (outDir string, err error) {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(athleteName), " ", "-"))
	outDir = filepath.Join(baseDir, fmt.Sprintf("%s-%s", slug, time.Now().Format("2006-01-02-150405")))

	err = os.MkdirAll(outDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outDir)
		return outDir, err
	}

	return outDir, err
}
