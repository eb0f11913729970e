package campaign

import (
	"context"
	"time"

	"github.com/elecmate/signup-recovery/internal/domain"
)

// ProfileRepository defines the data access contract for user profiles.
// Implementations must be safe for concurrent use.
type ProfileRepository interface {
	// Eligible returns profiles created inside [windowStart, graceCutoff)
	// that are unsubscribed, have no free-access grant, and have never been
	// notified, newest first.
	Eligible(ctx context.Context, windowStart, graceCutoff time.Time) ([]domain.Profile, error)

	// Stats counts, over the same window, the currently eligible profiles,
	// the profiles ever notified, and the notified profiles that have since
	// subscribed.
	Stats(ctx context.Context, windowStart, graceCutoff time.Time) (eligible, notified, converted int, err error)

	// Get returns a single profile. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*domain.Profile, error)

	// ClaimNotification sets the notification timestamp if and only if it is
	// currently null. Returns false when another invocation already claimed
	// it; the conditional update is what makes the claim race-free.
	ClaimNotification(ctx context.Context, id string, at time.Time) (bool, error)

	// ResetNotified clears the notification timestamp for every unsubscribed
	// profile notified before the given cutoff, returning the affected count.
	ResetNotified(ctx context.Context, before time.Time) (int64, error)

	// SentHistory returns the most recently notified profiles, newest
	// notification first, capped at limit.
	SentHistory(ctx context.Context, limit int) ([]domain.Profile, error)
}

// DeliveryLog appends delivery records. Entries are append-only.
type DeliveryLog interface {
	Append(ctx context.Context, e *domain.DeliveryLogEntry) error
}

// EmailResolver maps profile ids to addresses via the privileged identity
// store. identity.Client is the production implementation.
type EmailResolver interface {
	// Email returns the address for one id, or identity.ErrNoEmail.
	Email(ctx context.Context, userID string) (string, error)
	// Emails resolves a batch; unresolvable ids are absent from the map.
	Emails(ctx context.Context, userIDs []string) (map[string]string, error)
}

// Lock is one acquirable mutual-exclusion handle, scoped to a single key.
// distlock.DistLock satisfies this.
type Lock interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// LockFactory builds a Lock for the given key. The service takes a per-user
// lock around the resolve→send→persist sequence so two admins cannot race
// the same recipient into a duplicate send.
type LockFactory func(key string) Lock
