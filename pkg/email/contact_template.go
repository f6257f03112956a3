package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strconv"
	texttemplate "text/template"
	"time"
)

// ContactEmailData holds the display values for an inquiry notification
type ContactEmailData struct {
	FormID      string
	SenderName  string
	SenderEmail string
	Phone       string
	Message     string
	ListingURL  string
	SubmittedAt string
}

// submittedAtLayout mirrors the en-US locale date-time rendering.
const submittedAtLayout = "1/2/2006, 3:04:05 PM MST"

// FormatSubmissionDate renders t in loc using the en-US locale layout.
func FormatSubmissionDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(submittedAtLayout)
}

// FormatPhone renders a numeric phone without exponent or trailing zeros.
func FormatPhone(phone float64) string {
	return strconv.FormatFloat(phone, 'f', -1, 64)
}

// ContactSubject is the subject line of an inquiry notification.
func ContactSubject(senderName string) string {
	return fmt.Sprintf("New Property Inquiry from %s", senderName)
}

// contactEmailTemplate is the HTML template for inquiry notifications
const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Property Inquiry</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1f5f3f; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #1f5f3f; margin-top: 10px; white-space: pre-wrap; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Property Inquiry</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Listing:</div>
                <div class="value"><a href="{{.ListingURL}}">{{.ListingURL}}</a></div>
            </div>
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">{{.SenderName}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value"><a href="mailto:{{.SenderEmail}}">{{.SenderEmail}}</a></div>
            </div>
            <div class="field">
                <div class="label">Phone:</div>
                <div class="value">{{.Phone}}</div>
            </div>
            <div class="field">
                <div class="label">Submitted:</div>
                <div class="value">{{.SubmittedAt}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>Form {{.FormID}}. Reply to this email to answer {{.SenderName}} directly.</p>
        </div>
    </div>
</body>
</html>`

const contactTextTemplate = `New Property Inquiry

Listing: {{.ListingURL}}
Name: {{.SenderName}}
Email: {{.SenderEmail}}
Phone: {{.Phone}}
Submitted: {{.SubmittedAt}}

Message:
{{.Message}}

Form {{.FormID}}. Reply to this email to answer {{.SenderName}} directly.
`

var (
	contactHTML = htmltemplate.Must(htmltemplate.New("contact_html").Parse(contactEmailTemplate))
	contactText = texttemplate.Must(texttemplate.New("contact_text").Parse(contactTextTemplate))
)

// RenderContactEmail renders the HTML body and its plain-text fallback.
func RenderContactEmail(data ContactEmailData) (html string, text string, err error) {
	var htmlBody bytes.Buffer
	if err := contactHTML.Execute(&htmlBody, data); err != nil {
		return "", "", fmt.Errorf("failed to execute html template: %w", err)
	}

	var textBody bytes.Buffer
	if err := contactText.Execute(&textBody, data); err != nil {
		return "", "", fmt.Errorf("failed to execute text template: %w", err)
	}

	return htmlBody.String(), textBody.String(), nil
}
