package entities

import "fmt"

// ValidationError reports a required field that is empty or otherwise unusable.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Reference kinds used by ReferenceError.
const (
	KindPatient     = "patient"
	KindDoctor      = "doctor"
	KindAppointment = "appointment"
)

// ReferenceError reports an ID that does not resolve to a stored entity.
// Error() renders as "<kind> not found".
type ReferenceError struct {
	Kind string
	ID   string
}

func (e *ReferenceError) Error() string {
	return e.Kind + " not found"
}

// NewReferenceError builds a ReferenceError for an unresolved ID.
func NewReferenceError(kind, id string) *ReferenceError {
	return &ReferenceError{Kind: kind, ID: id}
}
