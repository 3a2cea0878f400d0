package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// BookingDecisionEmailData holds data for the booking approved/rejected emails.
type BookingDecisionEmailData struct {
	Email     string
	Name      string
	VenueName string
	Date      string // "YYYY-MM-DD" in the reference timezone
	TimeRange string // the booked clock range, e.g. "0900 - 1130"
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendBookingApproved(ctx context.Context, data *BookingDecisionEmailData) error
	SendBookingRejected(ctx context.Context, data *BookingDecisionEmailData) error
}
