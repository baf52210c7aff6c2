// Package resilient wraps speaker repositories with a circuit breaker so a failing
// store is rejected fast instead of being hit on every registration.
package resilient

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"speakerregistration/internal/domain"

	"github.com/sony/gobreaker/v2"
)

// BreakerConfig controls when the breaker opens and how long it stays open.
type BreakerConfig struct {
	Name          string
	MaxFailures   int
	Timeout       time.Duration
	HalfOpenLimit int
}

type breakerRepository struct {
	next    domain.SpeakerRepository
	breaker *gobreaker.CircuitBreaker[string]
}

// NewSpeakerRepository returns next guarded by a circuit breaker. After MaxFailures
// consecutive failed saves the breaker opens and saves fail with gobreaker.ErrOpenState
// until Timeout elapses.
func NewSpeakerRepository(next domain.SpeakerRepository, cfg BreakerConfig, logger *slog.Logger) domain.SpeakerRepository {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Name == "" {
		cfg.Name = "speaker-repository"
	}
	if cfg.MaxFailures <= 0 {
		cfg.MaxFailures = 5
	}
	if cfg.HalfOpenLimit <= 0 {
		cfg.HalfOpenLimit = 1
	}
	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: uint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	return &breakerRepository{next: next, breaker: cb}
}

func (r *breakerRepository) Save(ctx context.Context, speaker *domain.Speaker) (string, error) {
	id, err := r.breaker.Execute(func() (string, error) {
		return r.next.Save(ctx, speaker)
	})
	if err != nil {
		return "", fmt.Errorf("save speaker: %w", err)
	}
	return id, nil
}
