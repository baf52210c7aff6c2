package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"speakerregistration/internal/domain"

	"github.com/stretchr/testify/require"
)

type mockSpeakerRepository struct {
	id     string
	err    error
	panics bool
	saved  []*domain.Speaker
}

func (m *mockSpeakerRepository) Save(ctx context.Context, speaker *domain.Speaker) (string, error) {
	if m.panics {
		panic("connection reset")
	}
	if m.err != nil {
		return "", m.err
	}
	m.saved = append(m.saved, speaker)
	return m.id, nil
}

type mockNotifier struct {
	calls int
	id    string
	err   error
}

func (m *mockNotifier) NotifySpeakerRegistered(ctx context.Context, speakerID string, speaker *domain.Speaker) error {
	m.calls++
	m.id = speakerID
	return m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// approvableSpeaker returns a speaker that passes every stage.
func approvableSpeaker() *domain.Speaker {
	speaker := domain.NewSpeaker("First", "Last", "example@domain.com")
	speaker.Employer = "Example Employer"
	speaker.HasBlog = true
	speaker.Browser = domain.NewBrowser("test", 1)
	speaker.Experience = 1
	speaker.Sessions = []*domain.Session{domain.NewSession("test title", "test description")}
	return speaker
}

// speakerWithRedFlags returns an approvable speaker with a blocked email domain and a legacy IE browser.
func speakerWithRedFlags() *domain.Speaker {
	speaker := approvableSpeaker()
	speaker.Email = "tom@aol.com"
	speaker.Browser = domain.NewBrowser("IE", 6)
	return speaker
}

func newTestRegistrationService(notifier domain.SpeakerNotifier) domain.RegistrationService {
	return NewRegistrationService(discardLogger(), domain.DefaultRegistrationPolicy(), notifier)
}

func TestRegistrationService_Register(t *testing.T) {
	tests := []struct {
		name      string
		speaker   func() *domain.Speaker
		repo      *mockSpeakerRepository
		wantID    string
		wantErr   error
		wantField string
		wantFee   int
	}{
		{
			name:    "approvable speaker returns id",
			speaker: approvableSpeaker,
			repo:    &mockSpeakerRepository{id: "spk-1"},
			wantID:  "spk-1",
			wantFee: 500,
		},
		{
			name: "empty first name",
			speaker: func() *domain.Speaker {
				s := approvableSpeaker()
				s.FirstName = ""
				return s
			},
			repo:      &mockSpeakerRepository{id: "spk-1"},
			wantErr:   domain.ErrMissingRequiredField,
			wantField: domain.FieldFirstName,
		},
		{
			name: "empty last name",
			speaker: func() *domain.Speaker {
				s := approvableSpeaker()
				s.LastName = ""
				return s
			},
			repo:      &mockSpeakerRepository{id: "spk-1"},
			wantErr:   domain.ErrMissingRequiredField,
			wantField: domain.FieldLastName,
		},
		{
			name: "empty email",
			speaker: func() *domain.Speaker {
				s := approvableSpeaker()
				s.Email = ""
				return s
			},
			repo:      &mockSpeakerRepository{id: "spk-1"},
			wantErr:   domain.ErrMissingRequiredField,
			wantField: domain.FieldEmail,
		},
		{
			name: "allowed employer overrides red flags",
			speaker: func() *domain.Speaker {
				s := speakerWithRedFlags()
				s.HasBlog = false
				s.Employer = "Microsoft"
				return s
			},
			repo:    &mockSpeakerRepository{id: "spk-2"},
			wantID:  "spk-2",
			wantFee: 500,
		},
		{
			name:    "blog overrides red flags",
			speaker: speakerWithRedFlags,
			repo:    &mockSpeakerRepository{id: "spk-3"},
			wantID:  "spk-3",
			wantFee: 500,
		},
		{
			name: "certifications override red flags",
			speaker: func() *domain.Speaker {
				s := speakerWithRedFlags()
				s.HasBlog = false
				s.Certifications = []string{"cert1", "cert2", "cert3", "cert4"}
				return s
			},
			repo:    &mockSpeakerRepository{id: "spk-4"},
			wantID:  "spk-4",
			wantFee: 500,
		},
		{
			name: "one old tech session",
			speaker: func() *domain.Speaker {
				s := approvableSpeaker()
				s.Sessions = []*domain.Session{domain.NewSession("Cobol for dummies", "Intro to Cobol")}
				return s
			},
			repo:    &mockSpeakerRepository{id: "spk-1"},
			wantErr: domain.ErrNoSessionsApproved,
		},
		{
			name: "no sessions",
			speaker: func() *domain.Speaker {
				s := approvableSpeaker()
				s.Sessions = []*domain.Session{}
				return s
			},
			repo:    &mockSpeakerRepository{id: "spk-1"},
			wantErr: domain.ErrNoSessionsProvided,
		},
		{
			name: "no sessions and not eligible still reports no sessions",
			speaker: func() *domain.Speaker {
				s := approvableSpeaker()
				s.HasBlog = false
				s.Email = "name@aol.com"
				s.Sessions = nil
				return s
			},
			repo:    &mockSpeakerRepository{id: "spk-1"},
			wantErr: domain.ErrNoSessionsProvided,
		},
		{
			name: "no blog old browser",
			speaker: func() *domain.Speaker {
				s := approvableSpeaker()
				s.HasBlog = false
				s.Browser = domain.NewBrowser("IE", 6)
				return s
			},
			repo:    &mockSpeakerRepository{id: "spk-1"},
			wantErr: domain.ErrNotEligible,
		},
		{
			name: "no blog old email",
			speaker: func() *domain.Speaker {
				s := approvableSpeaker()
				s.HasBlog = false
				s.Email = "name@aol.com"
				return s
			},
			repo:    &mockSpeakerRepository{id: "spk-1"},
			wantErr: domain.ErrNotEligible,
		},
		{
			name: "senior speaker pays nothing",
			speaker: func() *domain.Speaker {
				s := approvableSpeaker()
				s.Experience = 12
				return s
			},
			repo:    &mockSpeakerRepository{id: "spk-5"},
			wantID:  "spk-5",
			wantFee: 0,
		},
		{
			name:    "repository error becomes storage failure",
			speaker: approvableSpeaker,
			repo:    &mockSpeakerRepository{err: errors.New("db down")},
			wantErr: domain.ErrStorageFailure,
			wantFee: 500,
		},
		{
			name:    "repository panic becomes storage failure",
			speaker: approvableSpeaker,
			repo:    &mockSpeakerRepository{panics: true},
			wantErr: domain.ErrStorageFailure,
			wantFee: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestRegistrationService(nil)
			speaker := tt.speaker()

			id, err := svc.Register(context.Background(), speaker, tt.repo)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, id)
				if tt.wantField != "" {
					var fieldErr *domain.MissingFieldError
					require.ErrorAs(t, err, &fieldErr)
					require.Equal(t, tt.wantField, fieldErr.Field)
				}
				require.Equal(t, tt.wantFee, speaker.RegistrationFee)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, id)
			require.Equal(t, tt.wantFee, speaker.RegistrationFee)
			require.Len(t, tt.repo.saved, 1)
			require.Same(t, speaker, tt.repo.saved[0])
		})
	}
}

func TestRegistrationService_Register_MissingFieldOrder(t *testing.T) {
	svc := newTestRegistrationService(nil)

	speaker := approvableSpeaker()
	speaker.FirstName = ""
	speaker.LastName = ""
	speaker.Email = ""

	_, err := svc.Register(context.Background(), speaker, &mockSpeakerRepository{id: "x"})
	var fieldErr *domain.MissingFieldError
	require.ErrorAs(t, err, &fieldErr)
	require.Equal(t, domain.FieldFirstName, fieldErr.Field)

	speaker.FirstName = "First"
	_, err = svc.Register(context.Background(), speaker, &mockSpeakerRepository{id: "x"})
	require.ErrorAs(t, err, &fieldErr)
	require.Equal(t, domain.FieldLastName, fieldErr.Field)
}

func TestRegistrationService_Register_MixedSessions(t *testing.T) {
	svc := newTestRegistrationService(nil)
	repo := &mockSpeakerRepository{id: "spk-mixed"}

	speaker := approvableSpeaker()
	legacy := domain.NewSession("COBOL basics", "Migrating Cobol payroll")
	modern := domain.NewSession("Modern APIs", "Designing HTTP APIs in Go")
	speaker.Sessions = []*domain.Session{legacy, modern}

	id, err := svc.Register(context.Background(), speaker, repo)
	require.NoError(t, err)
	require.Equal(t, "spk-mixed", id)
	require.False(t, legacy.Approved)
	require.True(t, modern.Approved)
}

func TestRegistrationService_Register_OldTechSessionLeftUnapproved(t *testing.T) {
	svc := newTestRegistrationService(nil)

	speaker := approvableSpeaker()
	sess := domain.NewSession("Cobol for dummies", "Intro to Cobol")
	speaker.Sessions = []*domain.Session{sess}

	_, err := svc.Register(context.Background(), speaker, &mockSpeakerRepository{id: "x"})
	require.ErrorIs(t, err, domain.ErrNoSessionsApproved)
	require.False(t, sess.Approved)
	require.Zero(t, speaker.RegistrationFee)
}

func TestRegistrationService_Register_StorageFailureKeepsComputedState(t *testing.T) {
	svc := newTestRegistrationService(nil)
	cause := errors.New("disk full")

	speaker := approvableSpeaker()
	speaker.Experience = 4
	legacy := domain.NewSession("VBScript tricks", "Old stuff")
	modern := domain.NewSession("Go generics", "New stuff")
	speaker.Sessions = []*domain.Session{legacy, modern}

	id, err := svc.Register(context.Background(), speaker, &mockSpeakerRepository{err: cause})
	require.Empty(t, id)
	require.ErrorIs(t, err, domain.ErrStorageFailure)
	require.ErrorIs(t, err, cause)

	var storageErr *domain.StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, cause, storageErr.Cause)

	require.Equal(t, 100, speaker.RegistrationFee)
	require.False(t, legacy.Approved)
	require.True(t, modern.Approved)
}

func TestRegistrationService_Register_NilRepository(t *testing.T) {
	svc := newTestRegistrationService(nil)

	id, err := svc.Register(context.Background(), approvableSpeaker(), nil)
	require.Empty(t, id)
	require.ErrorIs(t, err, domain.ErrStorageFailure)
}

func TestRegistrationService_Register_NilSpeaker(t *testing.T) {
	svc := newTestRegistrationService(nil)

	_, err := svc.Register(context.Background(), nil, &mockSpeakerRepository{id: "x"})
	require.Error(t, err)
}

func TestRegistrationService_Register_RunsTwice(t *testing.T) {
	svc := newTestRegistrationService(nil)
	repo := &mockSpeakerRepository{id: "spk-1"}
	speaker := approvableSpeaker()

	_, err := svc.Register(context.Background(), speaker, repo)
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), speaker, repo)
	require.NoError(t, err)
	require.Len(t, repo.saved, 2)
}

func TestRegistrationService_Register_Notifier(t *testing.T) {
	tests := []struct {
		name      string
		notifier  *mockNotifier
		repo      *mockSpeakerRepository
		wantCalls int
		wantErr   bool
	}{
		{
			name:      "notified after save",
			notifier:  &mockNotifier{},
			repo:      &mockSpeakerRepository{id: "spk-1"},
			wantCalls: 1,
		},
		{
			name:      "notifier error does not fail registration",
			notifier:  &mockNotifier{err: errors.New("smtp down")},
			repo:      &mockSpeakerRepository{id: "spk-1"},
			wantCalls: 1,
		},
		{
			name:      "not notified on storage failure",
			notifier:  &mockNotifier{},
			repo:      &mockSpeakerRepository{err: errors.New("db down")},
			wantCalls: 0,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestRegistrationService(tt.notifier)
			id, err := svc.Register(context.Background(), approvableSpeaker(), tt.repo)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, id, tt.notifier.id)
			}
			require.Equal(t, tt.wantCalls, tt.notifier.calls)
		})
	}
}

func TestRegistrationService_PolicyIsCopied(t *testing.T) {
	policy := domain.DefaultRegistrationPolicy()
	svc := NewRegistrationService(discardLogger(), policy, nil)

	policy.ForbiddenTopics[0] = "Go"
	policy.BlockedEmailDomains[0] = "domain.com"

	speaker := approvableSpeaker()
	speaker.HasBlog = false
	speaker.Sessions = []*domain.Session{domain.NewSession("Go in production", "Services")}

	id, err := svc.Register(context.Background(), speaker, &mockSpeakerRepository{id: "spk-1"})
	require.NoError(t, err)
	require.Equal(t, "spk-1", id)
}
