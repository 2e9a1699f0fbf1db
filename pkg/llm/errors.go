package llm

import "fmt"

// Failure causes carried by PlanGenerationError.
const (
	// CauseTimeout means the request deadline expired.
	CauseTimeout = "timeout"
	// CauseMalformedResponse means the model never produced a valid plan.
	CauseMalformedResponse = "malformed-response"
	// CauseServiceError means the API rejected or failed the request.
	CauseServiceError = "service-error"
)

// PlanGenerationError is returned when plan generation gives up, either
// because the retry budget ran out or because the failure is permanent.
type PlanGenerationError struct {
	Cause    string
	Attempts int
	Err      error
}

func (e *PlanGenerationError) Error() (msg string) {
	msg = fmt.Sprintf("plan generation failed after %d attempt(s) (%s)", e.Attempts, e.Cause)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}
	return msg
}

func (e *PlanGenerationError) Unwrap() (err error) {
	err = e.Err
	return err
}

// APIError reports a non-2xx response from the model API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() (msg string) {
	msg = fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
	return msg
}

// Permanent reports whether retrying the same request can ever succeed.
func (e *APIError) Permanent() (permanent bool) {
	permanent = e.StatusCode == 401 || e.StatusCode == 403
	return permanent
}
