package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"speakerregistration/internal/domain"

	"github.com/lib/pq"
)

type SpeakerRepository struct {
	DB *sql.DB
}

func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &SpeakerRepository{
		DB: db,
	}
}

// Save inserts the speaker and its sessions in one transaction and returns the speaker id.
func (r *SpeakerRepository) Save(ctx context.Context, speaker *domain.Speaker) (id string, err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `
		INSERT INTO speakers (first_name, last_name, email, experience, has_blog, blog_url, browser_name, browser_major_version, certifications, employer, registration_fee, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id
	`
	certifications := speaker.Certifications
	if certifications == nil {
		certifications = []string{}
	}
	err = tx.QueryRowContext(ctx, query,
		speaker.FirstName,
		speaker.LastName,
		speaker.Email,
		speaker.Experience,
		speaker.HasBlog,
		speaker.BlogURL,
		speaker.Browser.Name.String(),
		speaker.Browser.MajorVersion,
		pq.Array(certifications),
		speaker.Employer,
		speaker.RegistrationFee,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert speaker: %w", err)
	}

	for i, sess := range speaker.Sessions {
		if sess == nil {
			continue
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO speaker_sessions (speaker_id, position, title, description, approved) VALUES ($1, $2, $3, $4, $5)`,
			id, i, sess.Title, sess.Description, sess.Approved,
		); err != nil {
			return "", fmt.Errorf("insert session %q: %w", sess.Title, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}
