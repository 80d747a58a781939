package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"support-chat-backend/internal/dto"
	"support-chat-backend/internal/model"
)

func setupTrackHandler(t *testing.T, repo *trackRepository) http.Handler {
	t.Helper()

	server := newTestServer(t)
	trackEndpoints := NewTrackEndpoints(newTestAnalyticsService(repo))

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/track/session-start", server.MakeHTTPHandleFunc(trackEndpoints.SessionStart))
	mux.HandleFunc("/api/v1/track/message", server.MakeHTTPHandleFunc(trackEndpoints.Message))
	mux.HandleFunc("/api/v1/track/faq", server.MakeHTTPHandleFunc(trackEndpoints.FAQSelection))
	mux.HandleFunc("/api/v1/track/session-end", server.MakeHTTPHandleFunc(trackEndpoints.SessionEnd))
	return mux
}

func assertAccepted(t *testing.T, res *httptest.ResponseRecorder) {
	t.Helper()

	if res.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", res.Code, res.Body.String())
	}
	var resp dto.TrackResponse
	if err := json.Unmarshal(res.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Accepted {
		t.Fatalf("expected accepted=true")
	}
}

func TestTrackSessionStart(t *testing.T) {
	repo := newTrackRepository()
	handler := setupTrackHandler(t, repo)

	res := postJSON(t, handler, "/api/v1/track/session-start", `{"sessionId":"s-1"}`)
	assertAccepted(t, res)

	session, ok := repo.sessions["s-1"]
	if !ok {
		t.Fatalf("session not stored")
	}
	if session.StartTime != testFixedTime().Format(time.RFC3339) {
		t.Fatalf("unexpected start time: %s", session.StartTime)
	}

	// Repeats are accepted and do not reset the stored row.
	res = postJSON(t, handler, "/api/v1/track/session-start", `{"sessionId":"s-1"}`)
	assertAccepted(t, res)
	if len(repo.sessions) != 1 {
		t.Fatalf("expected one session, got %d", len(repo.sessions))
	}
}

func TestTrackMessage(t *testing.T) {
	repo := newTrackRepository()
	handler := setupTrackHandler(t, repo)

	postJSON(t, handler, "/api/v1/track/session-start", `{"sessionId":"s-1"}`)
	res := postJSON(t, handler, "/api/v1/track/message",
		`{"sessionId":"s-1","sender":"bot","text":"hola","responseTimeMs":180,"wasFromFaq":true,"faqCategory":"Servicios"}`)
	assertAccepted(t, res)

	if len(repo.messages) != 1 {
		t.Fatalf("expected one message, got %d", len(repo.messages))
	}
	msg := repo.messages[0]
	if msg.Sender != model.SenderBot || !msg.WasFromFAQ || msg.FAQCategory != "Servicios" {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if msg.ResponseTimeMs == nil || *msg.ResponseTimeMs != 180 {
		t.Fatalf("response time not stored: %+v", msg)
	}
	if repo.sessions["s-1"].MessageCount != 1 {
		t.Fatalf("expected count 1, got %d", repo.sessions["s-1"].MessageCount)
	}
}

func TestTrackMessageRejectsUnknownSender(t *testing.T) {
	repo := newTrackRepository()
	handler := setupTrackHandler(t, repo)

	res := postJSON(t, handler, "/api/v1/track/message", `{"sessionId":"s-1","sender":"system","text":"x"}`)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
	if len(repo.messages) != 0 {
		t.Fatalf("invalid message must not be stored")
	}
}

func TestTrackFAQSelection(t *testing.T) {
	repo := newTrackRepository()
	handler := setupTrackHandler(t, repo)

	res := postJSON(t, handler, "/api/v1/track/faq",
		`{"sessionId":"s-1","questionId":"faq-1","questionText":"¿Qué servicios ofrece INGELEAN?","category":"Servicios"}`)
	assertAccepted(t, res)

	if len(repo.interactions) != 1 || repo.interactions[0].Category != "Servicios" {
		t.Fatalf("interaction not stored: %+v", repo.interactions)
	}
}

func TestTrackSessionEnd(t *testing.T) {
	repo := newTrackRepository()
	handler := setupTrackHandler(t, repo)

	postJSON(t, handler, "/api/v1/track/session-start", `{"sessionId":"s-1"}`)
	res := postJSON(t, handler, "/api/v1/track/session-end", `{"sessionId":"s-1"}`)
	assertAccepted(t, res)

	session := repo.sessions["s-1"]
	if session.DurationSeconds == nil {
		t.Fatalf("session end not recorded: %+v", session)
	}
}

func TestTrackSessionEndUnknownSessionStillAccepted(t *testing.T) {
	repo := newTrackRepository()
	handler := setupTrackHandler(t, repo)

	res := postJSON(t, handler, "/api/v1/track/session-end", `{"sessionId":"missing"}`)
	assertAccepted(t, res)
}

func TestTrackRequiresSessionID(t *testing.T) {
	handler := setupTrackHandler(t, newTrackRepository())

	for _, path := range []string{
		"/api/v1/track/session-start",
		"/api/v1/track/message",
		"/api/v1/track/faq",
		"/api/v1/track/session-end",
	} {
		res := postJSON(t, handler, path, `{}`)
		if res.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, res.Code)
		}
	}
}

func TestTrackInvalidPayload(t *testing.T) {
	handler := setupTrackHandler(t, newTrackRepository())

	res := postJSON(t, handler, "/api/v1/track/session-start", `{"sessionId":`)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}
