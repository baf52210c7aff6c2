package domain

import "context"

// RegistrationPolicy holds the fixed lists the eligibility and screening rules consult.
type RegistrationPolicy struct {
	AllowedEmployers    []string
	BlockedEmailDomains []string
	ForbiddenTopics     []string
}

// DefaultRegistrationPolicy returns the standard policy. Each call returns fresh slices.
func DefaultRegistrationPolicy() RegistrationPolicy {
	return RegistrationPolicy{
		AllowedEmployers: []string{
			"Pluralsight", "Microsoft", "Google",
			"Fog Creek Software", "37Signals", "Telerik",
		},
		BlockedEmailDomains: []string{
			"aol.com", "hotmail.com", "prodigy.com", "compuserve.com",
		},
		ForbiddenTopics: []string{
			"Cobol", "Punch Cards", "Commodore", "VBScript",
		},
	}
}

// SpeakerRepository stores a speaker whose registration has been accepted.
type SpeakerRepository interface {
	// Save persists the speaker and returns its identifier.
	Save(ctx context.Context, speaker *Speaker) (string, error)
}

// SpeakerNotifier is told about speakers once they have been stored.
type SpeakerNotifier interface {
	NotifySpeakerRegistered(ctx context.Context, speakerID string, speaker *Speaker) error
}

// RegistrationService runs the speaker registration workflow.
type RegistrationService interface {
	// Register validates the speaker, checks eligibility, screens the sessions, sets the
	// registration fee and saves the speaker through repo. It returns the stored identifier.
	Register(ctx context.Context, speaker *Speaker, repo SpeakerRepository) (string, error)
}
