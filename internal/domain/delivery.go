package domain

import "time"

// TemplateID identifies which rendered email variant a delivery used.
type TemplateID string

const (
	TemplateElectrician TemplateID = "incomplete_signup_electrician"
	TemplateApprentice  TemplateID = "incomplete_signup_apprentice"
	TemplateManual      TemplateID = "incomplete_signup_manual"
	TemplateTest        TemplateID = "incomplete_signup_test"
)

// TemplateForRole maps a profile role to its campaign template.
func TemplateForRole(r Role) TemplateID {
	if r.Normalize() == RoleApprentice {
		return TemplateApprentice
	}
	return TemplateElectrician
}

// DeliveryStatus enumerates delivery-log states. Sends that fail are never
// logged, so "sent" is the only status written today; the enum leaves room
// for webhook-driven bounce/complaint states later.
type DeliveryStatus string

const (
	DeliverySent DeliveryStatus = "sent"
)

// DeliveryLogEntry is an append-only record of one successful send attempt.
// Entries are never updated or deleted.
type DeliveryLogEntry struct {
	ID             string            `json:"id" db:"id"`
	RecipientEmail string            `json:"recipient_email" db:"recipient_email"`
	Subject        string            `json:"subject" db:"subject"`
	TemplateID     TemplateID        `json:"template_id" db:"template_id"`
	Status         DeliveryStatus    `json:"status" db:"status"`
	Metadata       map[string]string `json:"metadata" db:"metadata"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
}
