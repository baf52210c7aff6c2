// Package bootstrap assembles the speaker registration workflow and its collaborators from configuration.
package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"speakerregistration/config"
	"speakerregistration/internal/adapters/email"
	"speakerregistration/internal/domain"
	"speakerregistration/internal/repository/memory"
	"speakerregistration/internal/repository/postgres"
	"speakerregistration/internal/repository/resilient"
	"speakerregistration/internal/services"
)

// Registration bundles the workflow with the repository it should save into.
type Registration struct {
	Service    domain.RegistrationService
	Repository domain.SpeakerRepository

	db *sql.DB
}

// Close releases the database connection, if any.
func (r *Registration) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// New builds the registration workflow described by cfg.
func New(cfg *config.Config, logger *slog.Logger) (*Registration, error) {
	if logger == nil {
		logger = slog.Default()
	}

	reg := &Registration{}
	var store domain.SpeakerRepository
	switch cfg.SpeakerStore {
	case config.StorePostgres:
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		reg.db = db
		store = postgres.NewSpeakerRepository(db)
	case config.StoreMemory, "":
		store = memory.NewSpeakerStore()
	default:
		return nil, fmt.Errorf("unknown speaker store %q", cfg.SpeakerStore)
	}
	reg.Repository = resilient.NewSpeakerRepository(store, resilient.BreakerConfig{
		Name:        "speaker-store-" + cfg.SpeakerStore,
		MaxFailures: cfg.StoreBreakerMaxFailures,
		Timeout:     cfg.StoreBreakerTimeout,
	}, logger)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.AWSRegion,
			AccessKeyID:        cfg.AWSAccessKeyID,
			SecretAccessKey:    cfg.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		_ = reg.Close()
		return nil, fmt.Errorf("create mailer: %w", err)
	}
	notifier := services.NewEmailNotifier(logger, mailer, email.NewTemplateRenderer())

	reg.Service = services.NewRegistrationService(logger, cfg.RegistrationPolicy(), notifier)
	logger.Info("speaker registration ready", "store", cfg.SpeakerStore, "email_provider", cfg.EmailProvider)
	return reg, nil
}
