package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"speakerregistration/internal/domain"
)

// Workflow stages, in execution order. Used as the "stage" log attribute.
const (
	StageValidate         = "validate"
	StageEligibility      = "eligibility"
	StageSessionScreening = "session_screening"
	StageFeeComputation   = "fee_computation"
	StagePersist          = "persist"
)

type registrationService struct {
	logger      *slog.Logger
	eligibility *EligibilityEvaluator
	screener    *SessionScreener
	notifier    domain.SpeakerNotifier
}

// NewRegistrationService creates a RegistrationService enforcing policy.
// notifier may be nil; when set it is called after every successful save.
func NewRegistrationService(logger *slog.Logger, policy domain.RegistrationPolicy, notifier domain.SpeakerNotifier) domain.RegistrationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &registrationService{
		logger:      logger,
		eligibility: NewEligibilityEvaluator(policy.AllowedEmployers, policy.BlockedEmailDomains),
		screener:    NewSessionScreener(policy.ForbiddenTopics),
		notifier:    notifier,
	}
}

func (s *registrationService) Register(ctx context.Context, speaker *domain.Speaker, repo domain.SpeakerRepository) (string, error) {
	if speaker == nil {
		return "", fmt.Errorf("speaker is nil")
	}

	if err := ValidateSpeaker(speaker); err != nil {
		s.reject(ctx, StageValidate, speaker, err)
		return "", err
	}

	if !s.eligibility.MeetsRequirements(speaker) {
		s.reject(ctx, StageEligibility, speaker, domain.ErrNotEligible)
		return "", domain.ErrNotEligible
	}

	approved, err := s.screener.Screen(speaker.Sessions)
	if err != nil {
		s.reject(ctx, StageSessionScreening, speaker, err)
		return "", err
	}
	if !approved {
		s.reject(ctx, StageSessionScreening, speaker, domain.ErrNoSessionsApproved)
		return "", domain.ErrNoSessionsApproved
	}

	speaker.RegistrationFee = RegistrationFee(speaker.Experience)

	speakerID, err := s.save(ctx, speaker, repo)
	if err != nil {
		s.logger.ErrorContext(ctx, "speaker registration failed",
			"stage", StagePersist,
			"email", speaker.Email,
			"err", err,
		)
		return "", err
	}

	s.logger.InfoContext(ctx, "speaker registered",
		"speaker_id", speakerID,
		"email", speaker.Email,
		"registration_fee", speaker.RegistrationFee,
		"approved_sessions", len(speaker.ApprovedSessions()),
	)

	if s.notifier != nil {
		if err := s.notifier.NotifySpeakerRegistered(ctx, speakerID, speaker); err != nil {
			s.logger.WarnContext(ctx, "speaker notification failed", "speaker_id", speakerID, "err", err)
		}
	}
	return speakerID, nil
}

// save hands the speaker to repo. Every failure, including a panic inside repo, is
// reported as a *domain.StorageError.
func (s *registrationService) save(ctx context.Context, speaker *domain.Speaker, repo domain.SpeakerRepository) (speakerID string, err error) {
	if repo == nil {
		return "", &domain.StorageError{Cause: errors.New("no speaker repository configured")}
	}
	defer func() {
		if r := recover(); r != nil {
			speakerID = ""
			err = &domain.StorageError{Cause: fmt.Errorf("save speaker panicked: %v", r)}
		}
	}()

	speakerID, err = repo.Save(ctx, speaker)
	if err != nil {
		return "", &domain.StorageError{Cause: err}
	}
	return speakerID, nil
}

func (s *registrationService) reject(ctx context.Context, stage string, speaker *domain.Speaker, err error) {
	s.logger.InfoContext(ctx, "speaker registration rejected",
		"stage", stage,
		"email", speaker.Email,
		"reason", err.Error(),
	)
}
