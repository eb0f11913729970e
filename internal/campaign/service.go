package campaign

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elecmate/signup-recovery/internal/config"
	"github.com/elecmate/signup-recovery/internal/domain"
	"github.com/elecmate/signup-recovery/internal/identity"
	"github.com/elecmate/signup-recovery/internal/mailer"
	"github.com/elecmate/signup-recovery/internal/pkg/logger"
	"github.com/elecmate/signup-recovery/internal/template"
)

// BulkResult reports a send_bulk run. Partial failure is the expected case:
// one bad recipient never aborts the batch.
type BulkResult struct {
	Sent    int      `json:"sent"`
	Skipped int      `json:"skipped"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// Service runs the recovery workflow. All eight admin operations go through
// here; handlers only decode requests and encode responses.
type Service struct {
	profiles ProfileRepository
	log      DeliveryLog
	resolver EmailResolver
	sender   mailer.Sender
	renderer *template.Renderer
	locks    LockFactory
	campaign config.CampaignConfig
	mail     config.MailConfig

	// Injected clocks so tests can pin the window math and observe the
	// inter-send delays without waiting for them.
	now   func() time.Time
	sleep func(time.Duration)
}

// New creates the workflow service.
func New(
	profiles ProfileRepository,
	log DeliveryLog,
	resolver EmailResolver,
	sender mailer.Sender,
	renderer *template.Renderer,
	locks LockFactory,
	campaignCfg config.CampaignConfig,
	mailCfg config.MailConfig,
) *Service {
	return &Service{
		profiles: profiles,
		log:      log,
		resolver: resolver,
		sender:   sender,
		renderer: renderer,
		locks:    locks,
		campaign: campaignCfg,
		mail:     mailCfg,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// window returns the eligibility bounds for the current instant:
// created_at must be >= windowStart and < graceCutoff.
func (s *Service) window() (windowStart, graceCutoff time.Time) {
	now := s.now()
	return now.Add(-s.campaign.Window()), now.Add(-s.campaign.Grace())
}

// Eligible lists the profiles currently inside the eligibility window with
// their resolved addresses, newest signup first. Profiles whose address
// cannot be resolved are logged and omitted: they cannot be mailed anyway.
func (s *Service) Eligible(ctx context.Context) ([]domain.EligibleUser, error) {
	windowStart, graceCutoff := s.window()

	profiles, err := s.profiles.Eligible(ctx, windowStart, graceCutoff)
	if err != nil {
		return nil, fmt.Errorf("query eligible profiles: %w", err)
	}
	if len(profiles) == 0 {
		return []domain.EligibleUser{}, nil
	}

	ids := make([]string, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
	}
	emails, err := s.resolver.Emails(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve addresses: %w", err)
	}

	users := make([]domain.EligibleUser, 0, len(profiles))
	for _, p := range profiles {
		email, ok := emails[p.ID]
		if !ok {
			logger.Warn("eligible profile has no resolvable address", "user_id", p.ID)
			continue
		}
		users = append(users, domain.EligibleUser{
			ID:        p.ID,
			FullName:  p.FullName,
			Username:  p.Username,
			Email:     email,
			Role:      p.Role,
			CreatedAt: p.CreatedAt,
		})
	}
	return users, nil
}

// Stats aggregates the campaign over the trailing window.
func (s *Service) Stats(ctx context.Context) (*domain.CampaignStats, error) {
	windowStart, graceCutoff := s.window()

	eligible, notified, converted, err := s.profiles.Stats(ctx, windowStart, graceCutoff)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}

	stats := &domain.CampaignStats{
		TotalEligible:  eligible,
		OffersSent:     notified,
		Conversions:    converted,
		ConversionRate: "0",
	}
	if notified > 0 {
		stats.ConversionRate = fmt.Sprintf("%.1f", float64(converted)/float64(notified)*100)
	}
	return stats, nil
}

// SendSingle sends the recovery email to one profile, guarded against
// duplicates. Returns the address it delivered to.
func (s *Service) SendSingle(ctx context.Context, userID string) (string, error) {
	lock := s.locks("send:" + userID)
	acquired, err := lock.Acquire(ctx)
	if err != nil {
		return "", fmt.Errorf("acquire send lock: %w", err)
	}
	if !acquired {
		return "", ErrSendInProgress
	}
	defer func() {
		if err := lock.Release(ctx); err != nil {
			logger.Warn("release send lock failed", "user_id", userID, "error", err)
		}
	}()

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if profile.Notified() {
		return "", ErrAlreadySent
	}

	email, err := s.resolver.Email(ctx, userID)
	if err != nil {
		if errors.Is(err, identity.ErrNoEmail) {
			return "", ErrNoEmail
		}
		return "", err
	}

	if err := s.deliver(ctx, email, profile.FullName, profile.Role,
		domain.TemplateForRole(profile.Role), s.profileMetadata(profile)); err != nil {
		return "", err
	}

	// The email is out; bookkeeping failures from here are logged, never
	// surfaced as a send failure.
	claimed, err := s.profiles.ClaimNotification(ctx, userID, s.now())
	if err != nil {
		logger.Error("persist notification timestamp failed", "user_id", userID, "error", err)
	} else if !claimed {
		logger.Warn("notification timestamp already set after send", "user_id", userID)
	}
	return email, nil
}

// SendBulk processes the given profiles strictly sequentially with a fixed
// pause between consecutive recipients to stay under the provider's request
// rate. Every failure is per-recipient.
func (s *Service) SendBulk(ctx context.Context, userIDs []string) (*BulkResult, error) {
	result := &BulkResult{}

	for i, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		s.sendOne(ctx, userID, result)

		if i < len(userIDs)-1 {
			s.sleep(s.campaign.SendDelay())
		}
	}
	return result, nil
}

// sendOne handles a single bulk recipient, recording the outcome on result.
// It takes the same per-user lock as SendSingle so a concurrent run cannot
// double-send the same profile.
func (s *Service) sendOne(ctx context.Context, userID string, result *BulkResult) {
	lock := s.locks("send:" + userID)
	acquired, err := lock.Acquire(ctx)
	if err != nil {
		result.Failed++
		result.Errors = append(result.Errors, fmt.Sprintf("user %s: acquire send lock: %v", userID, err))
		return
	}
	if !acquired {
		result.Failed++
		result.Errors = append(result.Errors, fmt.Sprintf("user %s: %v", userID, ErrSendInProgress))
		return
	}
	defer func() {
		if err := lock.Release(ctx); err != nil {
			logger.Warn("release send lock failed", "user_id", userID, "error", err)
		}
	}()

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		result.Failed++
		result.Errors = append(result.Errors, fmt.Sprintf("user %s: %v", userID, err))
		return
	}
	if profile.Notified() {
		result.Skipped++
		return
	}

	email, err := s.resolver.Email(ctx, userID)
	if err != nil {
		result.Failed++
		if errors.Is(err, identity.ErrNoEmail) {
			err = ErrNoEmail
		}
		result.Errors = append(result.Errors, fmt.Sprintf("user %s: %v", userID, err))
		return
	}

	if err := s.deliver(ctx, email, profile.FullName, profile.Role,
		domain.TemplateForRole(profile.Role), s.profileMetadata(profile)); err != nil {
		result.Failed++
		result.Errors = append(result.Errors, fmt.Sprintf("user %s: %v", userID, err))
		return
	}

	claimed, err := s.profiles.ClaimNotification(ctx, userID, s.now())
	if err != nil {
		logger.Error("persist notification timestamp failed", "user_id", userID, "error", err)
	} else if !claimed {
		logger.Warn("notification timestamp already set after send", "user_id", userID)
	}
	result.Sent++
}

// SendTest sends the electrician variant to an arbitrary address without
// touching any profile. Used by admins to preview the campaign.
func (s *Service) SendTest(ctx context.Context, adminID, email, recipientName string) (string, error) {
	return s.sendDirect(ctx, adminID, email, recipientName, domain.TemplateTest)
}

// SendManual sends the electrician variant to an address supplied by the
// admin, outside the eligibility pipeline.
func (s *Service) SendManual(ctx context.Context, adminID, email, recipientName string) (string, error) {
	return s.sendDirect(ctx, adminID, email, recipientName, domain.TemplateManual)
}

func (s *Service) sendDirect(ctx context.Context, adminID, email, recipientName string, tpl domain.TemplateID) (string, error) {
	metadata := map[string]string{
		"admin_id": adminID,
	}
	if recipientName != "" {
		metadata["display_name"] = recipientName
	}
	if err := s.deliver(ctx, email, recipientName, domain.RoleElectrician, tpl, metadata); err != nil {
		return "", err
	}
	return email, nil
}

// deliver renders and sends one email, then appends the delivery-log entry.
// The log write is best-effort: the send already happened.
func (s *Service) deliver(ctx context.Context, email, fullName string, role domain.Role, tpl domain.TemplateID, metadata map[string]string) error {
	html, err := s.renderer.Render(fullName, role, s.now().Year())
	if err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	tags := []mailer.Tag{
		{Name: "campaign", Value: string(tpl)},
		{Name: "role", Value: string(role.Normalize())},
	}
	if id := metadata["user_id"]; id != "" {
		tags = append(tags, mailer.Tag{Name: "user_id", Value: id})
	}

	res, err := s.sender.Send(ctx, mailer.Message{
		To:        email,
		FromName:  s.mail.FromName,
		FromEmail: s.mail.FromEmail,
		ReplyTo:   s.mail.ReplyTo,
		Subject:   template.Subject,
		HTML:      html,
		Tags:      tags,
	})
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	logger.Info("recovery email sent",
		"recipient_email", email, "template", string(tpl), "message_id", res.MessageID)

	entryMeta := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		entryMeta[k] = v
	}
	entryMeta["provider_message_id"] = res.MessageID

	entry := &domain.DeliveryLogEntry{
		RecipientEmail: email,
		Subject:        template.Subject,
		TemplateID:     tpl,
		Status:         domain.DeliverySent,
		Metadata:       entryMeta,
	}
	if err := s.log.Append(ctx, entry); err != nil {
		logger.Error("append delivery log failed", "recipient_email", email, "error", err)
	}
	return nil
}

func (s *Service) profileMetadata(p *domain.Profile) map[string]string {
	return map[string]string{
		"user_id": p.ID,
		"role":    string(p.Role.Normalize()),
	}
}

// Reset clears the notification flag for unsubscribed profiles notified
// longer ago than the cool-down, making them eligible for another pass.
// Zero is a valid result, not an error.
func (s *Service) Reset(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.campaign.ResetCooldown())
	n, err := s.profiles.ResetNotified(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("reset notified profiles: %w", err)
	}
	logger.Info("reset notification flags", "count", n)
	return n, nil
}

// SentHistory returns the most recently notified profiles with their
// resolved addresses.
func (s *Service) SentHistory(ctx context.Context) ([]domain.EligibleUser, error) {
	profiles, err := s.profiles.SentHistory(ctx, s.campaign.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("query sent history: %w", err)
	}
	if len(profiles) == 0 {
		return []domain.EligibleUser{}, nil
	}

	ids := make([]string, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
	}
	emails, err := s.resolver.Emails(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve addresses: %w", err)
	}

	users := make([]domain.EligibleUser, 0, len(profiles))
	for _, p := range profiles {
		users = append(users, domain.EligibleUser{
			ID:                 p.ID,
			FullName:           p.FullName,
			Username:           p.Username,
			Email:              emails[p.ID],
			Role:               p.Role,
			CreatedAt:          p.CreatedAt,
			NotificationSentAt: p.NotificationSentAt,
			Subscribed:         p.Subscribed,
		})
	}
	return users, nil
}
