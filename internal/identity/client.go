// Package identity talks to the privileged identity store that owns auth
// records and email addresses. Addresses are sensitive: they are fetched one
// id at a time through this narrow, audited client and never joined into
// ordinary profile queries.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/elecmate/signup-recovery/internal/config"
	"github.com/elecmate/signup-recovery/internal/pkg/logger"
)

var (
	// ErrInvalidToken means the bearer credential did not resolve to a user.
	ErrInvalidToken = errors.New("invalid or expired credential")
	// ErrNoEmail means the identity store has no address for the given id.
	ErrNoEmail = errors.New("could not get user email")
)

// HTTPDoer is the interface for executing HTTP requests; tests substitute
// their own implementation.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the identity-store API client. The service key authorizes both
// caller-token verification and admin email lookups.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient HTTPDoer
}

// NewClient creates an identity client from config.
func NewClient(cfg config.IdentityConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		serviceKey: cfg.ServiceKey,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
}

// SetHTTPClient sets a custom HTTP client (useful for testing).
func (c *Client) SetHTTPClient(client HTTPDoer) {
	c.httpClient = client
}

// Verify resolves a caller's bearer token to their user id. It performs a
// live round-trip on every call; verification results are never cached.
func (c *Client) Verify(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}

	body, status, err := c.doRequest(ctx, "/auth/v1/user", "Bearer "+token)
	if err != nil {
		return "", fmt.Errorf("verify token: %w", err)
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return "", ErrInvalidToken
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("verify token: identity store returned status %d", status)
	}

	var user struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &user); err != nil {
		return "", fmt.Errorf("verify token: decode response: %w", err)
	}
	if user.ID == "" {
		return "", ErrInvalidToken
	}
	return user.ID, nil
}

// Email looks up the address for one user id. Returns ErrNoEmail when the
// user does not exist or has no address on file.
func (c *Client) Email(ctx context.Context, userID string) (string, error) {
	body, status, err := c.doRequest(ctx,
		"/auth/v1/admin/users/"+url.PathEscape(userID), "Bearer "+c.serviceKey)
	if err != nil {
		return "", fmt.Errorf("lookup email for %s: %w", userID, err)
	}
	if status == http.StatusNotFound {
		return "", ErrNoEmail
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("lookup email for %s: identity store returned status %d", userID, status)
	}

	var user struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &user); err != nil {
		return "", fmt.Errorf("lookup email for %s: decode response: %w", userID, err)
	}
	if user.Email == "" {
		return "", ErrNoEmail
	}
	return user.Email, nil
}

// Emails resolves a batch of user ids to addresses. Unresolvable ids are
// simply absent from the returned map; the caller decides whether that is
// fatal. A transport-level failure aborts the whole batch.
func (c *Client) Emails(ctx context.Context, userIDs []string) (map[string]string, error) {
	out := make(map[string]string, len(userIDs))
	for _, id := range userIDs {
		email, err := c.Email(ctx, id)
		if errors.Is(err, ErrNoEmail) {
			logger.Debug("no email on file", "user_id", id)
			continue
		}
		if err != nil {
			return nil, err
		}
		out[id] = email
	}
	return out, nil
}

func (c *Client) doRequest(ctx context.Context, endpoint, authorization string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", authorization)
	req.Header.Set("apikey", c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("identity store unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}
	return body, resp.StatusCode, nil
}
