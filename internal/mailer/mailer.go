// Package mailer contains the transactional mail provider adapters.
//
// Adapters are split into individual files:
//   - resend.go: Resend Emails API (default provider)
//   - ses.go:    AWS SES v2 (fallback provider)
//
// Both satisfy Sender; the campaign service neither knows nor cares which
// provider is behind it.
package mailer

import "context"

// Message is one outbound email.
type Message struct {
	To        string
	FromName  string
	FromEmail string
	ReplyTo   string
	Subject   string
	HTML      string
	Tags      []Tag
}

// Tag is a categorization label attached to a send for provider-side
// filtering (campaign name, role, user id).
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SendResult reports a provider-accepted send.
type SendResult struct {
	MessageID string
}

// Sender delivers a single email through a transactional mail provider.
// A non-nil error means the provider did not accept the message; callers
// must not record any bookkeeping for it. No adapter retries internally;
// a failed send is surfaced to the operator to re-invoke.
type Sender interface {
	Send(ctx context.Context, msg Message) (*SendResult, error)
}
