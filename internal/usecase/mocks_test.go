package usecase_test

import (
	"context"

	"realestate-form-intake/internal/domain"
	"realestate-form-intake/pkg/email"

	"github.com/stretchr/testify/mock"
)

// Mock collaborators
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, form domain.ContactForm) (string, error) {
	args := m.Called(ctx, form)
	return args.String(0), args.Error(1)
}

func (m *MockContactRepo) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, form domain.ContactForm) error {
	return m.Called(ctx, form).Error(0)
}

type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) Send(ctx context.Context, msg email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func validInput() domain.SubmissionInput {
	return domain.SubmissionInput{
		"formId":         "f1",
		"name":           "Jane",
		"email":          "jane@x.com",
		"phone":          float64(5551234),
		"message":        "Interested",
		"submissionDate": "2024-01-01T00:00:00Z",
		"listingUrl":     "https://example.com/listing/1",
	}
}
