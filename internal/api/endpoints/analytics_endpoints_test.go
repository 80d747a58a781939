package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"support-chat-backend/internal/dto"
	"support-chat-backend/internal/model"
	"support-chat-backend/internal/service/analytics"
)

func setupAnalyticsHandler(t *testing.T, repo *trackRepository) http.Handler {
	t.Helper()

	server := newTestServer(t)
	analyticsEndpoints := NewAnalyticsEndpoints(newTestAnalyticsService(repo))

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/analytics", server.MakeHTTPHandleFunc(analyticsEndpoints.Metrics))
	return mux
}

func getMetrics(t *testing.T, handler http.Handler, target string) dto.MetricsResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}

	var resp dto.MetricsResponse
	if err := json.Unmarshal(res.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestAnalyticsDefaultsWindow(t *testing.T) {
	handler := setupAnalyticsHandler(t, newTrackRepository())

	for _, target := range []string{
		"/api/v1/analytics",
		"/api/v1/analytics?days=abc",
		"/api/v1/analytics?days=0",
		"/api/v1/analytics?days=-5",
		"/api/v1/analytics?days=100000",
	} {
		resp := getMetrics(t, handler, target)
		if len(resp.DailyStats) != analytics.DefaultWindowDays {
			t.Fatalf("%s: expected %d daily entries, got %d", target, analytics.DefaultWindowDays, len(resp.DailyStats))
		}
	}
}

func TestAnalyticsCustomWindow(t *testing.T) {
	handler := setupAnalyticsHandler(t, newTrackRepository())

	resp := getMetrics(t, handler, "/api/v1/analytics?days=7")
	if len(resp.DailyStats) != 7 {
		t.Fatalf("expected 7 daily entries, got %d", len(resp.DailyStats))
	}
}

func TestAnalyticsSummaryShape(t *testing.T) {
	repo := newTrackRepository()
	start := testFixedTime().Add(-time.Hour).Format(time.RFC3339)
	duration := int64(90)
	repo.sessions["s-1"] = model.ChatSessionItem{
		SessionID:       "s-1",
		StartTime:       start,
		MessageCount:    3,
		DurationSeconds: &duration,
	}
	repo.interactions = append(repo.interactions, model.FAQInteractionItem{
		SessionID: "s-1",
		Category:  "Servicios",
		Timestamp: start,
	})
	repo.transcripts = append(repo.transcripts, model.EmailTranscriptItem{
		SessionID: "s-1",
		Success:   true,
		SentAt:    start,
	})
	handler := setupAnalyticsHandler(t, repo)

	resp := getMetrics(t, handler, "/api/v1/analytics?days=7")

	if resp.TotalSessions != 1 || resp.AvgMessagesPerSession != 3 {
		t.Fatalf("unexpected totals: %+v", resp)
	}
	if resp.AvgSessionDuration != 90 {
		t.Fatalf("expected avg duration 90, got %v", resp.AvgSessionDuration)
	}
	if resp.EmailsSent != 1 {
		t.Fatalf("expected one email sent, got %d", resp.EmailsSent)
	}
	if len(resp.TopFAQCategories) != 1 || resp.TopFAQCategories[0].Category != "Servicios" {
		t.Fatalf("unexpected categories: %+v", resp.TopFAQCategories)
	}
	if resp.UserEngagement.ShortSessions != 1 {
		t.Fatalf("90s session should land in the short bucket: %+v", resp.UserEngagement)
	}

	today := resp.DailyStats[len(resp.DailyStats)-1]
	if today.Sessions != 1 || today.Emails != 1 {
		t.Fatalf("unexpected today entry: %+v", today)
	}
}

func TestAnalyticsMethodNotAllowed(t *testing.T) {
	handler := setupAnalyticsHandler(t, newTrackRepository())

	res := postJSON(t, handler, "/api/v1/analytics", `{}`)
	if res.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", res.Code)
	}
}
