package llm

import (
	"context"
	"encoding/json"
	"net"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/joseantonio2001/Running-Fit-Tech/pkg/physio"
	"github.com/joseantonio2001/Running-Fit-Tech/pkg/profile"
)

// Plan length bounds in weeks. The race date drives the length; without a
// usable date the plan defaults to defaultPlanWeeks.
const (
	minPlanWeeks     = 4
	maxPlanWeeks     = 24
	defaultPlanWeeks = 12
)

// PlanClient is the slice of the Gemini client the orchestrator needs.
type PlanClient interface {
	Complete(ctx context.Context, prompt string) (responseText string, err error)
	ModelName() (model string)
}

// Orchestrator drives plan generation: it compiles the prompt once, calls
// the model with a bounded retry budget, and validates each response
// before accepting it.
type Orchestrator struct {
	client      PlanClient
	maxAttempts int
	backoff     time.Duration
}

// NewOrchestrator creates an orchestrator. Non-positive arguments fall
// back to 3 attempts and a 2 second backoff.
func NewOrchestrator(client PlanClient, maxAttempts int, backoff time.Duration) (o *Orchestrator) {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	if backoff <= 0 {
		backoff = 2 * time.Second
	}
	o = &Orchestrator{
		client:      client,
		maxAttempts: maxAttempts,
		backoff:     backoff,
	}
	return o
}

// GeneratePlan produces a validated training plan for the profile. The
// prompt is identical across attempts; only transient failures are
// retried, and authentication failures abort immediately.
func (o *Orchestrator) GeneratePlan(ctx context.Context, p *profile.AthleteProfile, a *physio.Assessment) (plan *GeneratedPlan, err error) {
	prompt := BuildPlanPrompt(p, a, planWeeks(p))

	var lastErr error
	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		if attempt > 1 {
			err = sleepBackoff(ctx, o.backoff)
			if err != nil {
				err = &PlanGenerationError{Cause: CauseTimeout, Attempts: attempt - 1, Err: err}
				return plan, err
			}
		}

		var responseText string
		responseText, lastErr = o.client.Complete(ctx, prompt)

		// A response that lands after cancellation is stale; never accept
		// it, even if it parses.
		if ctxErr := ctx.Err(); ctxErr != nil {
			if lastErr == nil {
				lastErr = ctxErr
			}
			err = &PlanGenerationError{Cause: CauseTimeout, Attempts: attempt, Err: lastErr}
			return plan, err
		}

		if lastErr != nil {
			var apiErr *APIError
			if errors.As(lastErr, &apiErr) && apiErr.Permanent() {
				err = &PlanGenerationError{Cause: CauseServiceError, Attempts: attempt, Err: lastErr}
				return plan, err
			}
			continue
		}

		var response PlanResponse
		response, lastErr = parsePlanResponse(responseText)
		if lastErr != nil {
			continue
		}

		lastErr = validatePlan(&response)
		if lastErr != nil {
			continue
		}

		plan = &GeneratedPlan{
			ID:          uuid.New().String(),
			GeneratedAt: time.Now().Format(time.RFC3339),
			Model:       o.client.ModelName(),
			Attempts:    attempt,
			Markdown:    response.PlanMarkdown,
			Structured:  response.PlanStructured,
		}

		return plan, err
	}

	err = &PlanGenerationError{Cause: classifyCause(lastErr), Attempts: o.maxAttempts, Err: lastErr}

	return plan, err
}

// classifyCause tags the terminal failure so the caller can render a
// specific message: API rejections and transport failures are service
// errors, expired deadlines are timeouts, and anything else means the
// model kept returning unusable responses.
func classifyCause(lastErr error) (cause string) {
	cause = CauseMalformedResponse

	var apiErr *APIError
	if errors.As(lastErr, &apiErr) {
		cause = CauseServiceError
		return cause
	}

	var netErr net.Error
	if errors.Is(lastErr, context.DeadlineExceeded) || (errors.As(lastErr, &netErr) && netErr.Timeout()) {
		cause = CauseTimeout
		return cause
	}

	var urlErr *url.Error
	if errors.As(lastErr, &urlErr) {
		cause = CauseServiceError
		return cause
	}

	return cause
}

// planWeeks derives the plan length from the main objective's date,
// clamped to the supported range.
func planWeeks(p *profile.AthleteProfile) (weeks int) {
	weeks = defaultPlanWeeks

	if p.MainObjective == nil || p.MainObjective.Date == "" {
		return weeks
	}

	out, err := profile.ValidateRaceDate(p.MainObjective.Date)
	if err != nil {
		return weeks
	}

	weeks = out
	if weeks < minPlanWeeks {
		weeks = minPlanWeeks
	}
	if weeks > maxPlanWeeks {
		weeks = maxPlanWeeks
	}

	return weeks
}

// parsePlanResponse checks the contract keys are present before paying
// for a full unmarshal, so a wrong-shape response fails with a message
// naming the missing key.
func parsePlanResponse(responseText string) (response PlanResponse, err error) {
	cleaned := stripMarkdownCodeFences(responseText)

	if !gjson.Valid(cleaned) {
		err = errors.New("response is not valid JSON")
		return response, err
	}

	if !gjson.Get(cleaned, "plan_markdown").Exists() {
		err = errors.New("response is missing plan_markdown")
		return response, err
	}
	if !gjson.Get(cleaned, "plan_structured").Exists() {
		err = errors.New("response is missing plan_structured")
		return response, err
	}

	err = json.Unmarshal([]byte(cleaned), &response)
	if err != nil {
		err = errors.Wrap(err, "failed to parse plan response")
		return response, err
	}

	return response, err
}

// validatePlan enforces the semantic contract on a parsed response.
func validatePlan(response *PlanResponse) (err error) {
	if response.PlanMarkdown == "" {
		err = errors.New("plan_markdown is empty")
		return err
	}

	if len(response.PlanStructured.Weeks) == 0 {
		err = errors.New("plan has no weeks")
		return err
	}

	for _, week := range response.PlanStructured.Weeks {
		if len(week.Sessions) == 0 {
			err = errors.Errorf("week %d has no sessions", week.Number)
			return err
		}

		for _, session := range week.Sessions {
			if session.TargetZone != "" && !physio.KnownZoneLabel(session.TargetZone) {
				err = errors.Errorf("week %d references unknown training zone %q", week.Number, session.TargetZone)
				return err
			}
		}
	}

	return err
}
