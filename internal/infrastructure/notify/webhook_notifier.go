// Package notify delivers match reminders to community webhooks.
package notify

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/matchops/club-manager/internal/domain/match"
	"github.com/matchops/club-manager/internal/domain/settings"
	"github.com/matchops/club-manager/internal/platform/logging"
)

// webhookOverrideKey is the per-community settings entry that redirects
// reminders away from the default webhook.
const webhookOverrideKey = "reminder_webhook"

type WebhookNotifierConfig struct {
	DefaultURL string
	Timeout    time.Duration
}

// WebhookNotifier posts one JSON reminder per match. The target URL is the
// community's settings override when present, otherwise the configured
// default. A community with neither is skipped without error.
type WebhookNotifier struct {
	client       *http.Client
	defaultURL   string
	settingsRepo settings.Repository
	logger       *logging.Logger
}

func NewWebhookNotifier(cfg WebhookNotifierConfig, settingsRepo settings.Repository, logger *logging.Logger) *WebhookNotifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &WebhookNotifier{
		client: &http.Client{
			Timeout: timeout,
		},
		defaultURL:   strings.TrimSpace(cfg.DefaultURL),
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

type reminderPayload struct {
	Community   string `json:"community"`
	MatchID     int64  `json:"matchId"`
	Team1       string `json:"team1"`
	Team2       string `json:"team2"`
	KickoffUTC  string `json:"kickoffUtc"`
	Description string `json:"description"`
	Message     string `json:"message"`
}

func (n *WebhookNotifier) Notify(ctx context.Context, m match.Match) error {
	target, err := n.targetURL(ctx, m.Community)
	if err != nil {
		return err
	}
	if target == "" {
		n.logger.DebugContext(ctx, "no reminder webhook configured, skipping",
			"community", m.Community,
			"match_id", m.ID,
		)
		return nil
	}

	body, err := sonic.Marshal(reminderPayload{
		Community:   m.Community,
		MatchID:     m.ID,
		Team1:       m.Team1,
		Team2:       m.Team2,
		KickoffUTC:  m.Kickoff.UTC().Format(time.RFC3339),
		Description: m.Description,
		Message:     reminderMessage(m),
	})
	if err != nil {
		return crerr.Wrap(err, "marshal reminder payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(string(body)))
	if err != nil {
		return crerr.Wrap(err, "create reminder request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return crerr.Wrapf(err, "post reminder for match %d", m.ID)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return crerr.Newf("post reminder for match %d: status=%d body=%s",
			m.ID, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	return nil
}

func (n *WebhookNotifier) targetURL(ctx context.Context, community string) (string, error) {
	override, ok, err := n.settingsRepo.Get(ctx, community, webhookOverrideKey)
	if err != nil {
		return "", crerr.Wrap(err, "load webhook override")
	}
	if ok && strings.TrimSpace(override) != "" {
		return validateWebhookURL(override)
	}
	if n.defaultURL == "" {
		return "", nil
	}

	return validateWebhookURL(n.defaultURL)
}

func validateWebhookURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse webhook url %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("webhook url %q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("webhook url %q has empty host", candidate)
	}

	return candidate, nil
}

func reminderMessage(m match.Match) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("Match reminder: ")
	_, _ = buf.WriteString(m.Team1)
	_, _ = buf.WriteString(" vs ")
	_, _ = buf.WriteString(m.Team2)
	_, _ = buf.WriteString(" kicks off at ")
	_, _ = buf.WriteString(m.Kickoff.UTC().Format("2006-01-02 15:04"))
	_, _ = buf.WriteString(" UTC")
	if m.Description != "" {
		_, _ = buf.WriteString(" (")
		_, _ = buf.WriteString(m.Description)
		_, _ = buf.WriteString(")")
	}

	return buf.String()
}
