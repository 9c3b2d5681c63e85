package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/matchops/club-manager/internal/domain/match"
	"github.com/matchops/club-manager/internal/infrastructure/repository/memory"
	"github.com/matchops/club-manager/internal/platform/logging"
)

type recordedRequest struct {
	path    string
	payload reminderPayload
}

func newCaptureServer(t *testing.T) (*httptest.Server, func() []recordedRequest) {
	t.Helper()

	var (
		mu       sync.Mutex
		requests []recordedRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload reminderPayload
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode reminder payload: %v", err)
		}
		mu.Lock()
		requests = append(requests, recordedRequest{path: r.URL.Path, payload: payload})
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	return server, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedRequest(nil), requests...)
	}
}

func testMatch() match.Match {
	return match.Match{
		ID:          7,
		Community:   "guild-1",
		Team1:       "role-red",
		Team2:       "role-blue",
		Kickoff:     time.Date(2026, 8, 21, 18, 30, 0, 0, time.UTC),
		Description: "League Match",
	}
}

func TestWebhookNotifierDefaultURL(t *testing.T) {
	server, requests := newCaptureServer(t)
	ds := memory.NewDataset()
	notifier := NewWebhookNotifier(WebhookNotifierConfig{DefaultURL: server.URL + "/hook"},
		memory.NewSettingsRepository(ds), logging.NewNop())

	if err := notifier.Notify(context.Background(), testMatch()); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}

	got := requests()
	if len(got) != 1 {
		t.Fatalf("webhook received %d requests, want 1", len(got))
	}
	if got[0].payload.MatchID != 7 || got[0].payload.Community != "guild-1" {
		t.Fatalf("unexpected payload %+v", got[0].payload)
	}
	if got[0].payload.Message == "" {
		t.Fatalf("payload carries no human-readable message")
	}
}

func TestWebhookNotifierCommunityOverride(t *testing.T) {
	server, requests := newCaptureServer(t)
	ds := memory.NewDataset()
	settingsRepo := memory.NewSettingsRepository(ds)
	if err := settingsRepo.Set(context.Background(), "guild-1", "reminder_webhook", server.URL+"/override"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	notifier := NewWebhookNotifier(WebhookNotifierConfig{DefaultURL: "http://unused.invalid/hook"},
		settingsRepo, logging.NewNop())

	if err := notifier.Notify(context.Background(), testMatch()); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}

	got := requests()
	if len(got) != 1 || got[0].path != "/override" {
		t.Fatalf("requests = %+v, want one hit on /override", got)
	}
}

func TestWebhookNotifierNoTargetIsNoop(t *testing.T) {
	ds := memory.NewDataset()
	notifier := NewWebhookNotifier(WebhookNotifierConfig{}, memory.NewSettingsRepository(ds), logging.NewNop())

	if err := notifier.Notify(context.Background(), testMatch()); err != nil {
		t.Fatalf("Notify() without a target error = %v, want nil", err)
	}
}

func TestWebhookNotifierErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	ds := memory.NewDataset()
	notifier := NewWebhookNotifier(WebhookNotifierConfig{DefaultURL: server.URL},
		memory.NewSettingsRepository(ds), logging.NewNop())

	if err := notifier.Notify(context.Background(), testMatch()); err == nil {
		t.Fatalf("Notify() error = nil, want delivery failure on 429")
	}
}
