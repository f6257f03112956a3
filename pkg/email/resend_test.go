package email_test

import (
	"context"
	"testing"

	"realestate-form-intake/pkg/email"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockEmailsService struct {
	mock.Mock
}

func (m *mockEmailsService) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.SendEmailResponse), args.Error(1)
}

func TestResendSenderSend(t *testing.T) {
	t.Run("Should map every message field onto the request", func(t *testing.T) {
		emails := &mockEmailsService{}
		emails.On("SendWithContext", mock.Anything, mock.MatchedBy(func(req *resend.SendEmailRequest) bool {
			return req.From == `"Listing Inquiries" <noreply@example.com>` &&
				len(req.To) == 1 && req.To[0] == "agent@example.com" &&
				req.ReplyTo == "jane@x.com" &&
				req.Html == "<p>Hello = world</p>" &&
				req.Text == "Hello = world"
		})).Return(&resend.SendEmailResponse{Id: "msg-1"}, nil).Once()

		sender := email.NewResendSenderWithClient(emails)
		assert.NoError(t, sender.Send(context.Background(), testMessage()))
		emails.AssertExpectations(t)
	})

	t.Run("Should wrap API errors", func(t *testing.T) {
		emails := &mockEmailsService{}
		emails.On("SendWithContext", mock.Anything, mock.AnythingOfType("*resend.SendEmailRequest")).
			Return(nil, assert.AnError).Once()

		sender := email.NewResendSenderWithClient(emails)
		err := sender.Send(context.Background(), testMessage())
		assert.ErrorIs(t, err, assert.AnError)
		emails.AssertExpectations(t)
	})
}
