package endpoints

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"support-chat-backend/internal/api"
	"support-chat-backend/internal/model"
	"support-chat-backend/internal/queue"
	"support-chat-backend/internal/service/analytics"
)

var listenAddrSeq int64

// newTestServer hands out a fresh queue-backed server per test. The metrics
// collectors carry listen_addr as a const label, so every server needs its
// own address to register cleanly.
func newTestServer(t *testing.T) *api.APIServer {
	t.Helper()

	queueManager := queue.NewRequestQueueManager(10, 1)
	t.Cleanup(queueManager.Shutdown)

	addr := fmt.Sprintf(":%d", 42000+atomic.AddInt64(&listenAddrSeq, 1))
	return api.NewAPIServer(addr, queueManager, nil, nil)
}

func testFixedTime() time.Time {
	return time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
}

// trackRepository is a minimal in-memory analytics.Repository for handler
// tests.
type trackRepository struct {
	mu           sync.Mutex
	sessions     map[string]model.ChatSessionItem
	messages     []model.ChatMessageItem
	interactions []model.FAQInteractionItem
	transcripts  []model.EmailTranscriptItem
}

func newTrackRepository() *trackRepository {
	return &trackRepository{
		sessions: make(map[string]model.ChatSessionItem),
	}
}

func (m *trackRepository) CreateSession(ctx context.Context, session model.ChatSessionItem) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[session.SessionID]; ok {
		return false, nil
	}
	m.sessions[session.SessionID] = session
	return true, nil
}

func (m *trackRepository) GetSession(ctx context.Context, sessionID string) (model.ChatSessionItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[sessionID]
	if !ok {
		return model.ChatSessionItem{}, analytics.ErrNotFound
	}
	return session, nil
}

func (m *trackRepository) IncrementMessageCount(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session := m.sessions[sessionID]
	session.SessionID = sessionID
	session.MessageCount++
	m.sessions[sessionID] = session
	return nil
}

func (m *trackRepository) SetSessionEnd(ctx context.Context, sessionID, endTime string, durationSeconds int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[sessionID]
	if !ok {
		return analytics.ErrNotFound
	}
	session.EndTime = endTime
	session.DurationSeconds = &durationSeconds
	m.sessions[sessionID] = session
	return nil
}

func (m *trackRepository) MarkSessionEmailed(ctx context.Context, sessionID, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[sessionID]
	if !ok {
		return analytics.ErrNotFound
	}
	session.EmailSent = true
	session.UserEmail = email
	m.sessions[sessionID] = session
	return nil
}

func (m *trackRepository) CreateMessage(ctx context.Context, message model.ChatMessageItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, message)
	return nil
}

func (m *trackRepository) CreateFAQInteraction(ctx context.Context, interaction model.FAQInteractionItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interactions = append(m.interactions, interaction)
	return nil
}

func (m *trackRepository) CreateTranscript(ctx context.Context, transcript model.EmailTranscriptItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transcripts = append(m.transcripts, transcript)
	return nil
}

func (m *trackRepository) SessionsSince(ctx context.Context, since time.Time) ([]model.ChatSessionItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := since.Format(time.RFC3339)
	var out []model.ChatSessionItem
	for _, session := range m.sessions {
		if session.StartTime >= cutoff {
			out = append(out, session)
		}
	}
	return out, nil
}

func (m *trackRepository) MessagesSince(ctx context.Context, since time.Time) ([]model.ChatMessageItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := since.Format(time.RFC3339)
	var out []model.ChatMessageItem
	for _, message := range m.messages {
		if message.Timestamp >= cutoff {
			out = append(out, message)
		}
	}
	return out, nil
}

func (m *trackRepository) FAQInteractionsSince(ctx context.Context, since time.Time) ([]model.FAQInteractionItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := since.Format(time.RFC3339)
	var out []model.FAQInteractionItem
	for _, interaction := range m.interactions {
		if interaction.Timestamp >= cutoff {
			out = append(out, interaction)
		}
	}
	return out, nil
}

func (m *trackRepository) TranscriptsSince(ctx context.Context, since time.Time) ([]model.EmailTranscriptItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := since.Format(time.RFC3339)
	var out []model.EmailTranscriptItem
	for _, transcript := range m.transcripts {
		if transcript.SentAt >= cutoff {
			out = append(out, transcript)
		}
	}
	return out, nil
}

func newTestAnalyticsService(repo analytics.Repository) *analytics.Service {
	return analytics.NewWithRepository(repo, nil, testFixedTime)
}
