package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

// SubmissionInput is the untrusted key/value payload decoded from the request body.
type SubmissionInput map[string]any

// ContactForm is a validated submission. Only the validator constructs it;
// downstream stages receive it by value.
type ContactForm struct {
	FormID         string    `json:"formId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          float64   `json:"phone"`
	Message        string    `json:"message"`
	SubmissionDate time.Time `json:"submissionDate"`
	ListingURL     string    `json:"listingUrl"`
}

// FieldError describes one violated constraint of a submission
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationFailure lists every field error found in a submission.
type ValidationFailure struct {
	Errors []FieldError
}

func (e *ValidationFailure) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var (
	// ErrStoreFailure wraps any error returned while persisting a record.
	ErrStoreFailure = errors.New("record store failure")
	// ErrNotifyFailure wraps any error returned while notifying the agent.
	// The record was already persisted when this is returned.
	ErrNotifyFailure = errors.New("notification failure")
)

// SubmissionState is a step of the per-request pipeline.
type SubmissionState string

const (
	StateReceived      SubmissionState = "received"
	StateValidating    SubmissionState = "validating"
	StateInvalid       SubmissionState = "invalid"
	StatePersisting    SubmissionState = "persisting"
	StatePersistFailed SubmissionState = "persist_failed"
	StateNotifying     SubmissionState = "notifying"
	StateNotifyFailed  SubmissionState = "notify_failed"
	StateNotified      SubmissionState = "notified"
)

// ContactRepository appends records to the configured collection.
type ContactRepository interface {
	// Create stores one document and returns the identifier the store assigned.
	Create(ctx context.Context, form ContactForm) (string, error)
	// Ping checks connectivity; used by the health endpoint only.
	Ping(ctx context.Context) error
}

// ContactNotifier alerts the agent about a stored submission.
type ContactNotifier interface {
	Notify(ctx context.Context, form ContactForm) error
}

// ContactUsecase runs the validate, persist, notify pipeline for one submission
type ContactUsecase interface {
	SubmitContactForm(ctx context.Context, input SubmissionInput) (*ContactForm, error)
}

// HealthUsecase reports the state of the service's dependencies
type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, error)
}
