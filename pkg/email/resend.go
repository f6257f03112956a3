package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendEmailsAPI is the part of the Resend client the sender uses.
type ResendEmailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendSender delivers messages through the Resend HTTP API
type ResendSender struct {
	emails ResendEmailsAPI
}

func NewResendSender(apiKey string) *ResendSender {
	client := resend.NewClient(apiKey)
	return NewResendSenderWithClient(client.Emails)
}

func NewResendSenderWithClient(emails ResendEmailsAPI) *ResendSender {
	return &ResendSender{emails: emails}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}

	if _, err := s.emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}
