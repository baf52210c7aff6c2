package services

import (
	"speakerregistration/internal/domain"
)

// ValidateSpeaker checks the required identity fields in order (first name, last name,
// email) and returns a *domain.MissingFieldError for the first empty one. A speaker with
// no sessions fails with domain.ErrNoSessionsProvided.
func ValidateSpeaker(speaker *domain.Speaker) error {
	if speaker.FirstName == "" {
		return &domain.MissingFieldError{Field: domain.FieldFirstName}
	}
	if speaker.LastName == "" {
		return &domain.MissingFieldError{Field: domain.FieldLastName}
	}
	if speaker.Email == "" {
		return &domain.MissingFieldError{Field: domain.FieldEmail}
	}
	if len(speaker.Sessions) == 0 {
		return domain.ErrNoSessionsProvided
	}
	return nil
}
