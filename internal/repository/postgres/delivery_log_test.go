package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/elecmate/signup-recovery/internal/domain"
)

func TestDeliveryLogAppend(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewDeliveryLogRepo(db)

	mock.ExpectExec(`INSERT INTO email_delivery_log`).
		WithArgs(sqlmock.AnyArg(), "dave@example.com", "Your Elec-Mate account is waiting for you",
			string(domain.TemplateElectrician), string(domain.DeliverySent), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	entry := &domain.DeliveryLogEntry{
		RecipientEmail: "dave@example.com",
		Subject:        "Your Elec-Mate account is waiting for you",
		TemplateID:     domain.TemplateElectrician,
		Status:         domain.DeliverySent,
		Metadata:       map[string]string{"user_id": "u1"},
	}
	if err := repo.Append(context.Background(), entry); err != nil {
		t.Fatalf("append: %v", err)
	}
	if entry.ID == "" {
		t.Fatal("id not assigned")
	}
	if entry.CreatedAt.IsZero() {
		t.Fatal("created_at not assigned")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
