package usecase

import (
	"context"
	"fmt"
	"time"

	"realestate-form-intake/internal/domain"
	"realestate-form-intake/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	validate *validator.Validate
	repo     domain.ContactRepository
	notifier domain.ContactNotifier
	metrics  *ContactMetrics
}

// NewContactUsecase wires the validate, persist, notify pipeline
func NewContactUsecase(validate *validator.Validate, repo domain.ContactRepository, notifier domain.ContactNotifier, metrics *ContactMetrics) domain.ContactUsecase {
	return &contactUsecase{
		validate: validate,
		repo:     repo,
		notifier: notifier,
		metrics:  metrics,
	}
}

// SubmitContactForm validates the submission, stores it and notifies the agent.
// Stages run in order and the first failure ends the request. There is no
// compensation: an ErrNotifyFailure means the record is stored but the agent
// was not told about it.
func (uc *contactUsecase) SubmitContactForm(ctx context.Context, input domain.SubmissionInput) (*domain.ContactForm, error) {
	form, err := ValidateContactForm(uc.validate, input)
	if err != nil {
		uc.finish(domain.StateInvalid)
		logger.Log.Info("contact form rejected", "state", domain.StateInvalid, "error", err)
		return nil, err
	}

	start := time.Now()
	docID, err := uc.repo.Create(ctx, *form)
	uc.metrics.observeStage(domain.StatePersisting, start)
	if err != nil {
		uc.finish(domain.StatePersistFailed)
		logger.Log.Error("contact form not stored",
			"state", domain.StatePersistFailed,
			"form_id", form.FormID,
			"error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreFailure, err)
	}

	start = time.Now()
	err = uc.notifier.Notify(ctx, *form)
	uc.metrics.observeStage(domain.StateNotifying, start)
	if err != nil {
		uc.finish(domain.StateNotifyFailed)
		logger.Log.Error("contact form stored but agent not notified",
			"state", domain.StateNotifyFailed,
			"document_id", docID,
			"form_id", form.FormID,
			"reply_to", form.Email,
			"error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrNotifyFailure, err)
	}

	uc.finish(domain.StateNotified)
	logger.Log.Info("contact form delivered",
		"state", domain.StateNotified,
		"document_id", docID,
		"form_id", form.FormID)
	return form, nil
}

func (uc *contactUsecase) finish(state domain.SubmissionState) {
	uc.metrics.Submissions(state).Inc()
}
