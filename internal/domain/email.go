package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// DigestEvent is a single line of the weekly digest.
type DigestEvent struct {
	Title    string
	When     string
	Location string
	Summary  string
	Tags     []string
	URL      string
}

// WeeklyDigestEmailData holds data for the weekly digest email.
type WeeklyDigestEmailData struct {
	Email    string
	Name     string
	TownName string
	Week     string
	Events   []DigestEvent
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendWeeklyDigest(ctx context.Context, data *WeeklyDigestEmailData) error
}
