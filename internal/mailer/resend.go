package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/elecmate/signup-recovery/internal/config"
)

// ResendSender sends emails through the Resend Emails API.
type ResendSender struct {
	apiKey     string
	baseURL    string
	httpClient HTTPDoer
}

// HTTPDoer is the interface for executing HTTP requests; tests substitute
// their own implementation.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewResendSender creates a Resend-backed sender.
func NewResendSender(cfg config.ResendConfig) *ResendSender {
	return &ResendSender{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

// SetHTTPClient sets a custom HTTP client (useful for testing).
func (s *ResendSender) SetHTTPClient(client HTTPDoer) {
	s.httpClient = client
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	ReplyTo string   `json:"reply_to,omitempty"`
	HTML    string   `json:"html"`
	Tags    []Tag    `json:"tags,omitempty"`
}

type resendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"` // set on error responses
}

// Send delivers one email via the Resend API. Errors are returned verbatim
// enough for the operator to act on; nothing is retried here.
func (s *ResendSender) Send(ctx context.Context, msg Message) (*SendResult, error) {
	payload := resendRequest{
		From:    fmt.Sprintf("%s <%s>", msg.FromName, msg.FromEmail),
		To:      []string{msg.To},
		Subject: msg.Subject,
		ReplyTo: msg.ReplyTo,
		HTML:    msg.HTML,
		Tags:    msg.Tags,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resend api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var parsed resendResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil && resp.StatusCode < 300 {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if parsed.Message != "" {
			return nil, fmt.Errorf("resend error (status %d): %s", resp.StatusCode, parsed.Message)
		}
		return nil, fmt.Errorf("resend error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return &SendResult{MessageID: parsed.ID}, nil
}
