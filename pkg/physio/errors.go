// Package physio implements the deterministic sports-science calculations:
// body metrics, Karvonen heart rate zones, VDOT-based fitness estimation
// and race time prediction. Everything here is pure computation over
// profile data; no I/O, no randomness.
package physio

import "fmt"

// MissingDataError indicates a calculation could not run because a
// required input is absent from the profile.
type MissingDataError struct {
	Field string
}

func (e *MissingDataError) Error() (msg string) {
	msg = fmt.Sprintf("missing required data: %s", e.Field)
	return msg
}

// InconsistentDataError indicates the inputs are present but physically
// incoherent, such as a max heart rate at or below the resting rate.
type InconsistentDataError struct {
	Reason string
}

func (e *InconsistentDataError) Error() (msg string) {
	msg = fmt.Sprintf("inconsistent data: %s", e.Reason)
	return msg
}
