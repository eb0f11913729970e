package domain

import (
	"strings"
	"time"
)

// Role enumerates the account roles recognized by the recovery campaign.
// Anything that is not an apprentice renders the electrician email variant.
type Role string

const (
	RoleElectrician Role = "electrician"
	RoleApprentice  Role = "apprentice"
)

// Normalize maps arbitrary stored role strings onto the closed variant set.
func (r Role) Normalize() Role {
	if strings.EqualFold(string(r), string(RoleApprentice)) {
		return RoleApprentice
	}
	return RoleElectrician
}

// Profile represents an application account as stored in the profiles table.
// The email address is deliberately absent: it lives in the privileged
// identity store and is resolved through identity.Client, never joined here.
type Profile struct {
	ID                 string     `json:"id" db:"id"`
	FullName           string     `json:"full_name" db:"full_name"`
	Username           string     `json:"username" db:"username"`
	Role               Role       `json:"role" db:"role"`
	IsAdmin            bool       `json:"is_admin" db:"is_admin"`
	Subscribed         bool       `json:"subscribed" db:"subscribed"`
	FreeAccessGranted  bool       `json:"free_access_granted" db:"free_access_granted"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	NotificationSentAt *time.Time `json:"notification_sent_at" db:"incomplete_signup_email_sent_at"`
}

// Notified reports whether this profile has already received the
// incomplete-signup email in the current campaign cycle.
func (p Profile) Notified() bool {
	return p.NotificationSentAt != nil
}

// EligibleUser is the shape returned by the get_eligible and
// get_sent_history operations: a profile joined with its resolved address.
type EligibleUser struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`

	// Set only on get_sent_history rows.
	NotificationSentAt *time.Time `json:"notification_sent_at,omitempty"`
	Subscribed         bool       `json:"subscribed,omitempty"`
}

// CampaignStats aggregates the recovery campaign over the trailing window.
type CampaignStats struct {
	TotalEligible  int    `json:"totalEligible"`
	OffersSent     int    `json:"offersSent"`
	Conversions    int    `json:"conversions"`
	ConversionRate string `json:"conversionRate"`
}
