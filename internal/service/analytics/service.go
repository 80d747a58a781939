// Package analytics records widget usage events and aggregates them into the
// dashboard summary. Recording is fire-and-forget from the caller's point of
// view: failures are logged at call sites and never break the primary flow.
package analytics

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"support-chat-backend/internal/database"
	"support-chat-backend/internal/model"

	"github.com/google/uuid"
)

type ErrorCode string

const (
	ErrorCodeValidation ErrorCode = "validation_error"
	ErrorCodeNotFound   ErrorCode = "not_found"
	ErrorCodeInternal   ErrorCode = "internal_error"
)

type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Event is pushed to the live dashboard feed after a successful record.
type Event struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
	Category  string `json:"category,omitempty"`
	Timestamp string `json:"timestamp"`
}

const (
	EventSessionStart    = "session_start"
	EventMessage         = "message"
	EventFAQSelection    = "faq_selection"
	EventEmailTranscript = "email_transcript"
	EventSessionEnd      = "session_end"
)

// EventPublisher fans events out to dashboard listeners. Publishing is best
// effort; errors are logged and ignored.
type EventPublisher interface {
	PublishEvent(event Event) error
}

type Service struct {
	repo      Repository
	publisher EventPublisher
	now       func() time.Time
}

func New(db *database.Database, publisher EventPublisher) *Service {
	return &Service{
		repo:      NewDynamoRepository(db),
		publisher: publisher,
		now:       time.Now,
	}
}

func NewWithRepository(repo Repository, publisher EventPublisher, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:      repo,
		publisher: publisher,
		now:       now,
	}
}

type MessageParams struct {
	SessionID      string
	Sender         string
	Text           string
	ResponseTimeMs *int64
	WasFromFAQ     bool
	FAQCategory    string
}

type TranscriptParams struct {
	SessionID    string
	Email        string
	UserName     string
	MessageCount int
	Success      bool
}

// RecordSessionStart inserts the session row if absent. Repeated calls for
// the same id are not an error.
func (s *Service) RecordSessionStart(ctx context.Context, sessionID, userAgent, ipAddress string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return newError(ErrorCodeValidation, "sessionId is required", nil)
	}

	now := s.now().UTC()
	created, err := s.repo.CreateSession(ctx, model.ChatSessionItem{
		SessionID: sessionID,
		StartTime: now.Format(time.RFC3339),
		UserAgent: userAgent,
		IPAddress: ipAddress,
	})
	if err != nil {
		return newError(ErrorCodeInternal, "failed to record session start", err)
	}

	if created {
		s.publish(Event{Type: EventSessionStart, SessionID: sessionID, Timestamp: now.Format(time.RFC3339)})
	}
	return nil
}

// RecordMessage appends the message and bumps the owning session's counter
// with a store-side atomic increment.
func (s *Service) RecordMessage(ctx context.Context, params MessageParams) error {
	sessionID := strings.TrimSpace(params.SessionID)
	if sessionID == "" {
		return newError(ErrorCodeValidation, "sessionId is required", nil)
	}
	if params.Sender != model.SenderUser && params.Sender != model.SenderBot {
		return newError(ErrorCodeValidation, "sender must be user or bot", nil)
	}

	now := s.now().UTC()
	messageID := uuid.NewString()
	message := model.ChatMessageItem{
		PK:             model.MessagePK(sessionID, messageID),
		SessionID:      sessionID,
		MessageID:      messageID,
		Sender:         params.Sender,
		Text:           params.Text,
		Timestamp:      now.Format(time.RFC3339),
		ResponseTimeMs: params.ResponseTimeMs,
		WasFromFAQ:     params.WasFromFAQ,
		FAQCategory:    params.FAQCategory,
	}

	if err := s.repo.CreateMessage(ctx, message); err != nil {
		return newError(ErrorCodeInternal, "failed to record message", err)
	}

	if err := s.repo.IncrementMessageCount(ctx, sessionID); err != nil {
		log.Printf("analytics: increment message count for %s: %v", sessionID, err)
	}

	s.publish(Event{Type: EventMessage, SessionID: sessionID, Category: params.FAQCategory, Timestamp: message.Timestamp})
	return nil
}

func (s *Service) RecordFAQSelection(ctx context.Context, sessionID, questionID, questionText, category string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return newError(ErrorCodeValidation, "sessionId is required", nil)
	}

	now := s.now().UTC()
	interactionID := uuid.NewString()
	interaction := model.FAQInteractionItem{
		PK:           model.InteractionPK(sessionID, interactionID),
		SessionID:    sessionID,
		QuestionID:   questionID,
		QuestionText: questionText,
		Category:     category,
		Timestamp:    now.Format(time.RFC3339),
	}

	if err := s.repo.CreateFAQInteraction(ctx, interaction); err != nil {
		return newError(ErrorCodeInternal, "failed to record FAQ selection", err)
	}

	s.publish(Event{Type: EventFAQSelection, SessionID: sessionID, Category: category, Timestamp: interaction.Timestamp})
	return nil
}

// RecordEmailTranscript appends the transcript row; a successful send also
// marks the owning session as emailed.
func (s *Service) RecordEmailTranscript(ctx context.Context, params TranscriptParams) error {
	sessionID := strings.TrimSpace(params.SessionID)
	if sessionID == "" {
		return newError(ErrorCodeValidation, "sessionId is required", nil)
	}

	now := s.now().UTC()
	transcriptID := uuid.NewString()
	transcript := model.EmailTranscriptItem{
		PK:           model.TranscriptPK(sessionID, transcriptID),
		SessionID:    sessionID,
		Email:        params.Email,
		UserName:     params.UserName,
		MessageCount: params.MessageCount,
		Success:      params.Success,
		SentAt:       now.Format(time.RFC3339),
	}

	if err := s.repo.CreateTranscript(ctx, transcript); err != nil {
		return newError(ErrorCodeInternal, "failed to record email transcript", err)
	}

	if params.Success {
		if err := s.repo.MarkSessionEmailed(ctx, sessionID, params.Email); err != nil {
			log.Printf("analytics: mark session %s emailed: %v", sessionID, err)
		}
		s.publish(Event{Type: EventEmailTranscript, SessionID: sessionID, Timestamp: transcript.SentAt})
	}
	return nil
}

// RecordSessionEnd computes the duration from the stored start time. Calling
// it again recomputes from the same start time, so repeats stay consistent.
func (s *Service) RecordSessionEnd(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return newError(ErrorCodeValidation, "sessionId is required", nil)
	}

	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return newError(ErrorCodeNotFound, "session not found", err)
		}
		return newError(ErrorCodeInternal, "failed to load session", err)
	}

	startTime, err := time.Parse(time.RFC3339, session.StartTime)
	if err != nil {
		return newError(ErrorCodeInternal, "session has an unreadable start time", err)
	}

	now := s.now().UTC()
	duration := int64(now.Sub(startTime) / time.Second)
	if duration < 0 {
		duration = 0
	}

	if err := s.repo.SetSessionEnd(ctx, sessionID, now.Format(time.RFC3339), duration); err != nil {
		return newError(ErrorCodeInternal, "failed to record session end", err)
	}

	s.publish(Event{Type: EventSessionEnd, SessionID: sessionID, Timestamp: now.Format(time.RFC3339)})
	return nil
}

func (s *Service) publish(event Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(event); err != nil {
		log.Printf("analytics: publish %s event: %v", event.Type, err)
	}
}
