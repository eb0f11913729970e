package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/elecmate/signup-recovery/internal/campaign"
	"github.com/elecmate/signup-recovery/internal/domain"
)

// ProfileRepo implements campaign.ProfileRepository against PostgreSQL.
type ProfileRepo struct{ db *sql.DB }

// NewProfileRepo creates a Postgres-backed profile repository.
func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{db: db} }

const profileColumns = `id, COALESCE(full_name,''), COALESCE(username,''), COALESCE(role,''),
	       is_admin, subscribed, free_access_granted, created_at, incomplete_signup_email_sent_at`

func scanProfile(s interface{ Scan(...interface{}) error }) (*domain.Profile, error) {
	p := &domain.Profile{}
	var sentAt sql.NullTime
	// The boolean columns are nullable in the external schema; NULL reads
	// as false.
	var isAdmin, subscribed, freeAccess sql.NullBool
	err := s.Scan(
		&p.ID, &p.FullName, &p.Username, &p.Role,
		&isAdmin, &subscribed, &freeAccess, &p.CreatedAt, &sentAt,
	)
	if err != nil {
		return nil, err
	}
	p.IsAdmin = isAdmin.Bool
	p.Subscribed = subscribed.Bool
	p.FreeAccessGranted = freeAccess.Bool
	if sentAt.Valid {
		t := sentAt.Time
		p.NotificationSentAt = &t
	}
	return p, nil
}

// Eligible returns the unnotified, unsubscribed, no-free-access profiles
// created inside [windowStart, graceCutoff), newest first.
func (r *ProfileRepo) Eligible(ctx context.Context, windowStart, graceCutoff time.Time) ([]domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE created_at >= $1
		  AND created_at < $2
		  AND subscribed IS NOT TRUE
		  AND free_access_granted IS NOT TRUE
		  AND incomplete_signup_email_sent_at IS NULL
		ORDER BY created_at DESC
	`, windowStart, graceCutoff)
	if err != nil {
		return nil, fmt.Errorf("query eligible profiles: %w", err)
	}
	defer rows.Close()

	var out []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return out, nil
}

// Stats aggregates the window in one pass: currently eligible profiles,
// profiles notified inside the window, and notified profiles that went on
// to subscribe.
func (r *ProfileRepo) Stats(ctx context.Context, windowStart, graceCutoff time.Time) (eligible, notified, converted int, err error) {
	err = r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE subscribed IS NOT TRUE
				AND free_access_granted IS NOT TRUE
				AND incomplete_signup_email_sent_at IS NULL
				AND created_at < $2),
			COUNT(*) FILTER (WHERE incomplete_signup_email_sent_at IS NOT NULL),
			COUNT(*) FILTER (WHERE incomplete_signup_email_sent_at IS NOT NULL
				AND subscribed = TRUE)
		FROM profiles
		WHERE created_at >= $1
	`, windowStart, graceCutoff).Scan(&eligible, &notified, &converted)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("query campaign stats: %w", err)
	}
	return eligible, notified, converted, nil
}

// Get returns one profile by id.
func (r *ProfileRepo) Get(ctx context.Context, id string) (*domain.Profile, error) {
	p, err := scanProfile(r.db.QueryRowContext(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, campaign.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// ClaimNotification sets the notification timestamp if and only if it is
// still null. The condition in the WHERE clause is the duplicate guard: of
// two concurrent claims exactly one sees an affected row.
func (r *ProfileRepo) ClaimNotification(ctx context.Context, id string, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE profiles
		SET incomplete_signup_email_sent_at = $2
		WHERE id = $1 AND incomplete_signup_email_sent_at IS NULL
	`, id, at)
	if err != nil {
		return false, fmt.Errorf("claim notification: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("claim notification rows: %w", err)
	}
	return n == 1, nil
}

// ResetNotified clears the flag for unsubscribed profiles notified before
// the cutoff, returning them to the eligible pool.
func (r *ProfileRepo) ResetNotified(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE profiles
		SET incomplete_signup_email_sent_at = NULL
		WHERE subscribed IS NOT TRUE
		  AND incomplete_signup_email_sent_at IS NOT NULL
		  AND incomplete_signup_email_sent_at < $1
	`, before)
	if err != nil {
		return 0, fmt.Errorf("reset notified profiles: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reset notified rows: %w", err)
	}
	return n, nil
}

// SentHistory returns the most recently notified profiles.
func (r *ProfileRepo) SentHistory(ctx context.Context, limit int) ([]domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE incomplete_signup_email_sent_at IS NOT NULL
		ORDER BY incomplete_signup_email_sent_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sent history: %w", err)
	}
	defer rows.Close()

	var out []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return out, nil
}
