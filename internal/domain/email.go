package domain

import "context"

// Mailer sends a single rendered email.
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// AccountEmailData holds data for account request and approval emails.
type AccountEmailData struct {
	Email    string
	Name     string
	LoginURL string
}

// EmailService sends account lifecycle emails.
type EmailService interface {
	SendAccountRequested(ctx context.Context, data *AccountEmailData) error
	SendAccountApproved(ctx context.Context, data *AccountEmailData) error
}
