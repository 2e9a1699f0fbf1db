package llm

import (
	"strings"
	"testing"

	"github.com/joseantonio2001/Running-Fit-Tech/pkg/physio"
	"github.com/joseantonio2001/Running-Fit-Tech/pkg/profile"
)

func TestBuildPlanPromptSectionOrder(t *testing.T) {
	p, a := testAssessment(t)
	prompt := BuildPlanPrompt(p, a, 12)

	sections := []string{
		"## ATHLETE SUMMARY",
		"## PHYSIOLOGICAL METRICS AND TRAINING ZONES",
		"## TRAINING CONTEXT",
		"## PERFORMANCE DATA AND PREDICTED PACES",
		"## RACE GOALS",
		"## INJURY HISTORY",
		"## RESPONSE FORMAT INSTRUCTIONS",
	}

	lastIndex := -1
	for _, section := range sections {
		index := strings.Index(prompt, section)
		if index == -1 {
			t.Fatalf("Prompt missing section %q", section)
		}
		if index <= lastIndex {
			t.Errorf("Section %q out of order", section)
		}
		lastIndex = index
	}
}

func TestBuildPlanPromptContent(t *testing.T) {
	p, a := testAssessment(t)
	prompt := BuildPlanPrompt(p, a, 14)

	for _, expected := range []string{
		"Tomás Solórzano",
		"Media Maratón de Valencia",
		"plan_markdown",
		"plan_structured",
		"Produce a 14-week plan",
		"distance_display",
		"Media Maratón",
	} {
		if !strings.Contains(prompt, expected) {
			t.Errorf("Prompt missing %q", expected)
		}
	}

	// All five canonical zone labels must be spelled out.
	for _, label := range physio.ZoneLabels() {
		if !strings.Contains(prompt, label) {
			t.Errorf("Prompt missing zone label %q", label)
		}
	}
}

func TestBuildPlanPromptConservativeDirective(t *testing.T) {
	p, a := testAssessment(t)
	prompt := BuildPlanPrompt(p, a, 12)
	if strings.Contains(prompt, "just starting") {
		t.Error("Established athlete should not get the conservative directive")
	}
	if !strings.Contains(prompt, "training consistently for "+p.CurrentTrainingPeriod) {
		t.Error("Continuation directive should cite the athlete's stated training period")
	}

	err := p.SetCurrentTrainingPeriod("empezando")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	prompt = BuildPlanPrompt(p, a, 12)
	if !strings.Contains(prompt, "just starting") {
		t.Error("Expected the conservative directive for a just-starting athlete")
	}
}

func TestBuildPlanPromptHRV(t *testing.T) {
	p, a := testAssessment(t)
	prompt := BuildPlanPrompt(p, a, 12)
	if strings.Contains(prompt, "hrv_ms") {
		t.Error("Prompt should omit hrv_ms when the profile has no HRV reading")
	}

	hrv := 85
	p.HRVMS = &hrv
	prompt = BuildPlanPrompt(p, a, 12)
	if !strings.Contains(prompt, `"hrv_ms": 85`) {
		t.Error("Prompt should include the athlete's HRV reading")
	}
}

func TestBuildPlanPromptDeterministic(t *testing.T) {
	p, a := testAssessment(t)

	first := BuildPlanPrompt(p, a, 12)
	second := BuildPlanPrompt(p, a, 12)
	if first != second {
		t.Error("Prompt must be identical for identical inputs")
	}
}

func TestBuildPlanPromptNoInjuries(t *testing.T) {
	p, a := testAssessment(t)
	p.Injuries = nil

	prompt := BuildPlanPrompt(p, a, 12)
	if !strings.Contains(prompt, "No relevant injury history.") {
		t.Error("Expected explicit no-injury statement")
	}
}

func TestBuildPlanPromptPartialProfile(t *testing.T) {
	p := profile.New()
	p.Name = "Ana"
	a, err := physio.Assess(p)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	prompt := BuildPlanPrompt(p, &a, 12)
	if !strings.Contains(prompt, "Ana") {
		t.Error("Prompt should include the athlete name")
	}
	if !strings.Contains(prompt, "## RESPONSE FORMAT INSTRUCTIONS") {
		t.Error("Prompt should keep the response contract even for sparse profiles")
	}
}
