// Package transcript formats a widget conversation and emails it to the
// visitor. A failed recording never blocks the send; a failed send is still
// recorded with success=false.
package transcript

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	"support-chat-backend/internal/mailer"
	"support-chat-backend/internal/model"
	"support-chat-backend/internal/service/analytics"
	"support-chat-backend/utils"
)

type ErrorCode string

const (
	ErrorCodeValidation ErrorCode = "validation_error"
	ErrorCodeUpstream   ErrorCode = "upstream_error"
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

// Recorder is the slice of the analytics service the transcript path needs.
type Recorder interface {
	RecordEmailTranscript(ctx context.Context, params analytics.TranscriptParams) error
}

type Message struct {
	Sender    string
	Text      string
	Timestamp string
}

type SendParams struct {
	SessionID string
	Email     string
	UserName  string
	Messages  []Message
}

type Service struct {
	mailer   mailer.Mailer
	recorder Recorder
}

func New(m mailer.Mailer, recorder Recorder) *Service {
	return &Service{
		mailer:   m,
		recorder: recorder,
	}
}

const emailSubject = "📝 Transcripción de tu conversación con INGELEAN"

func (s *Service) Send(ctx context.Context, params SendParams) error {
	email := strings.TrimSpace(params.Email)
	if email == "" || !strings.Contains(email, "@") {
		return newError(ErrorCodeValidation, "a valid email is required", nil)
	}
	if params.Messages == nil {
		return newError(ErrorCodeValidation, "messages are required", nil)
	}

	msg := mailer.Message{
		ToEmail:     email,
		ToName:      strings.TrimSpace(params.UserName),
		Subject:     emailSubject,
		HTMLContent: renderHTML(params),
	}

	sendErr := s.mailer.Send(ctx, msg)

	s.record(ctx, analytics.TranscriptParams{
		SessionID:    params.SessionID,
		Email:        email,
		UserName:     strings.TrimSpace(params.UserName),
		MessageCount: len(params.Messages),
		Success:      sendErr == nil,
	})

	if sendErr != nil {
		return newError(ErrorCodeUpstream, "failed to send the transcript email", sendErr)
	}
	return nil
}

func (s *Service) record(ctx context.Context, params analytics.TranscriptParams) {
	if s.recorder == nil || params.SessionID == "" {
		return
	}
	if err := s.recorder.RecordEmailTranscript(ctx, params); err != nil {
		log.Printf("transcript: record email transcript for %s: %v", params.SessionID, err)
	}
}

func renderHTML(params SendParams) string {
	lines := make([]string, 0, len(params.Messages))
	for _, m := range params.Messages {
		label := "🤖 INGELEAN"
		if m.Sender == model.SenderUser {
			label = "🧑 Tú"
		}
		lines = append(lines, fmt.Sprintf("[%s] %s: %s", formatClock(m.Timestamp), label, html.EscapeString(m.Text)))
	}

	userName := params.UserName
	if userName == "" {
		userName = "No proporcionado"
	}

	return fmt.Sprintf(`<h2>Transcripción de tu conversación con INGELEAN Assistant</h2>
<p><strong>Nombre:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<hr/>
<pre style="font-family: monospace; background: #f4f4f4; padding: 1em; border-radius: 8px;">
%s
</pre>
<p>Gracias por usar nuestro asistente virtual.</p>`,
		html.EscapeString(userName),
		html.EscapeString(params.Email),
		utils.StringJoin(lines, "\n"),
	)
}

func formatClock(timestamp string) string {
	if t, err := time.Parse(time.RFC3339, timestamp); err == nil {
		return t.Format("15:04:05")
	}
	return timestamp
}
