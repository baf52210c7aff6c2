package services

import (
	"context"
	"fmt"
	"log/slog"

	"speakerregistration/internal/domain"
)

const speakerRegisteredTemplate = "speaker_registered"

type emailNotifier struct {
	logger   *slog.Logger
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailNotifier returns a SpeakerNotifier that mails a registration confirmation
// using the given Mailer and template renderer.
func NewEmailNotifier(logger *slog.Logger, mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.SpeakerNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &emailNotifier{logger: logger, mailer: mailer, renderer: renderer}
}

// NotifySpeakerRegistered sends the "speaker_registered" email listing the approved sessions and the fee.
func (n *emailNotifier) NotifySpeakerRegistered(ctx context.Context, speakerID string, speaker *domain.Speaker) error {
	if speaker == nil {
		return fmt.Errorf("speaker is nil")
	}
	data := &domain.SpeakerRegisteredEmailData{
		Email:            speaker.Email,
		FirstName:        speaker.FirstName,
		SpeakerID:        speakerID,
		RegistrationFee:  speaker.RegistrationFee,
		ApprovedSessions: []string{},
	}
	for _, sess := range speaker.ApprovedSessions() {
		data.ApprovedSessions = append(data.ApprovedSessions, sess.Title)
	}

	subject, htmlBody, textBody, err := n.renderer.Render(speakerRegisteredTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", speakerRegisteredTemplate, err)
	}
	if err := n.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send registration email: %w", err)
	}
	n.logger.InfoContext(ctx, "registration email sent", "speaker_id", speakerID, "email", data.Email)
	return nil
}
