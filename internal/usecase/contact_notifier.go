package usecase

import (
	"context"
	"time"

	"realestate-form-intake/internal/domain"
	"realestate-form-intake/pkg/email"
)

// MailSender hands a rendered message to a relay.
type MailSender interface {
	Send(ctx context.Context, msg email.Message) error
}

type contactNotifier struct {
	sender   MailSender
	from     string
	to       string
	location *time.Location
}

// NewContactNotifier renders inquiry emails for the agent at to.
// Dates are shown in loc.
func NewContactNotifier(sender MailSender, from, to string, loc *time.Location) domain.ContactNotifier {
	if loc == nil {
		loc = time.UTC
	}
	return &contactNotifier{
		sender:   sender,
		from:     from,
		to:       to,
		location: loc,
	}
}

func (n *contactNotifier) Notify(ctx context.Context, form domain.ContactForm) error {
	html, text, err := email.RenderContactEmail(email.ContactEmailData{
		FormID:      form.FormID,
		SenderName:  form.Name,
		SenderEmail: form.Email,
		Phone:       email.FormatPhone(form.Phone),
		Message:     form.Message,
		ListingURL:  form.ListingURL,
		SubmittedAt: email.FormatSubmissionDate(form.SubmissionDate, n.location),
	})
	if err != nil {
		return err
	}

	return n.sender.Send(ctx, email.Message{
		From:    n.from,
		To:      n.to,
		ReplyTo: form.Email,
		Subject: email.ContactSubject(form.Name),
		HTML:    html,
		Text:    text,
	})
}
