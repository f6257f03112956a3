package email_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"realestate-form-intake/config"
	"realestate-form-intake/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	addr string
	auth smtp.Auth
	from string
	to   []string
	msg  []byte
}

func testMessage() email.Message {
	return email.Message{
		From:    `"Listing Inquiries" <noreply@example.com>`,
		To:      "agent@example.com",
		ReplyTo: "jane@x.com",
		Subject: "New Property Inquiry from Jané",
		HTML:    "<p>Hello = world</p>",
		Text:    "Hello = world",
	}
}

func newSender(record *[]sentMail, err error) *email.SMTPSender {
	cfg := &config.Config{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     "587",
		SMTPUsername: "login",
		SMTPPassword: "secret",
	}
	return email.NewSMTPSender(cfg).WithSendFunc(func(_ context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		*record = append(*record, sentMail{addr: addr, auth: a, from: from, to: to, msg: msg})
		return err
	})
}

func TestSMTPSenderSend(t *testing.T) {
	t.Run("Should relay to the configured host with bare envelope addresses", func(t *testing.T) {
		var sent []sentMail
		sender := newSender(&sent, nil)

		require.NoError(t, sender.Send(context.Background(), testMessage()))
		require.Len(t, sent, 1)
		assert.Equal(t, "smtp.example.com:587", sent[0].addr)
		assert.NotNil(t, sent[0].auth)
		assert.Equal(t, "noreply@example.com", sent[0].from)
		assert.Equal(t, []string{"agent@example.com"}, sent[0].to)
	})

	t.Run("Should wrap relay errors", func(t *testing.T) {
		var sent []sentMail
		sender := newSender(&sent, errors.New("535 authentication failed"))

		err := sender.Send(context.Background(), testMessage())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send email")
		assert.Contains(t, err.Error(), "535")
	})

	t.Run("Should not relay when the context is already done", func(t *testing.T) {
		var sent []sentMail
		sender := newSender(&sent, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, sender.Send(ctx, testMessage()), context.Canceled)
		assert.Empty(t, sent)
	})

	t.Run("Should reject an unparseable recipient", func(t *testing.T) {
		var sent []sentMail
		sender := newSender(&sent, nil)
		msg := testMessage()
		msg.To = "not an address"

		assert.Error(t, sender.Send(context.Background(), msg))
		assert.Empty(t, sent)
	})
}

func TestSMTPSenderIsConfigured(t *testing.T) {
	assert.False(t, email.NewSMTPSender(&config.Config{SMTPHost: "smtp.example.com"}).IsConfigured())
	assert.True(t, email.NewSMTPSender(&config.Config{
		SMTPHost: "smtp.example.com", SMTPUsername: "u", SMTPPassword: "p",
	}).IsConfigured())
}

func TestBuildMessage(t *testing.T) {
	date := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	raw, err := email.BuildMessage(testMessage(), date)
	require.NoError(t, err)

	parsed, err := mail.ReadMessage(bytes.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "jane@x.com", parsed.Header.Get("Reply-To"))
	assert.Equal(t, "agent@example.com", parsed.Header.Get("To"))

	subject, err := new(mime.WordDecoder).DecodeHeader(parsed.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "New Property Inquiry from Jané", subject)

	mediaType, params, err := mime.ParseMediaType(parsed.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/alternative", mediaType)

	reader := multipart.NewReader(parsed.Body, params["boundary"])
	var types, bodies []string
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		// multipart.Reader decodes quoted-printable transparently
		content, err := io.ReadAll(part)
		require.NoError(t, err)
		types = append(types, strings.SplitN(part.Header.Get("Content-Type"), ";", 2)[0])
		bodies = append(bodies, string(content))
	}

	assert.Equal(t, []string{"text/plain", "text/html"}, types)
	assert.Equal(t, []string{"Hello = world", "<p>Hello = world</p>"}, bodies)
}
