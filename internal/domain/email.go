package domain

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// SpeakerRegisteredEmailData holds data for the speaker registration confirmation.
type SpeakerRegisteredEmailData struct {
	Email            string
	FirstName        string
	SpeakerID        string
	RegistrationFee  int
	ApprovedSessions []string
}
