package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/elecmate/signup-recovery/internal/domain"
)

// DeliveryLogRepo implements campaign.DeliveryLog against PostgreSQL.
// Rows are append-only; nothing here updates or deletes.
type DeliveryLogRepo struct{ db *sql.DB }

// NewDeliveryLogRepo creates a Postgres-backed delivery log.
func NewDeliveryLogRepo(db *sql.DB) *DeliveryLogRepo { return &DeliveryLogRepo{db: db} }

// Append inserts one delivery record, filling in id and timestamp.
func (r *DeliveryLogRepo) Append(ctx context.Context, e *domain.DeliveryLogEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	metadata, err := json.Marshal(e.Metadata)
	if err != nil {
		return fmt.Errorf("marshal delivery metadata: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO email_delivery_log
			(id, recipient_email, subject, template_id, status, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, e.ID, e.RecipientEmail, e.Subject, e.TemplateID, e.Status, metadata, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("append delivery log: %w", err)
	}
	return nil
}
