package endpoints

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"support-chat-backend/internal/dto"
	"support-chat-backend/internal/model"
	"support-chat-backend/internal/service/analytics"
	"support-chat-backend/internal/service/responder"
)

type ChatEndpoints interface {
	Chat(http.ResponseWriter, *http.Request) error
}

type chatEndpoints struct {
	responder responder.Responder
	recorder  *analytics.Service
	now       func() time.Time
}

func NewChatEndpoints(r responder.Responder, recorder *analytics.Service) ChatEndpoints {
	return &chatEndpoints{
		responder: r,
		recorder:  recorder,
		now:       time.Now,
	}
}

func (h *chatEndpoints) Chat(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodPost: h.handleChat,
	})
}

// handleChat never surfaces a validation error status: unusable input gets a
// 200 with the canned validation string, matching the widget contract. Only
// a delegated-model failure produces a 500, still carrying a reply body.
func (h *chatEndpoints) handleChat(w http.ResponseWriter, r *http.Request) error {
	var req dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return WriteJSON(w, http.StatusOK, dto.ChatResponse{Response: responder.ValidationMessage})
	}

	started := h.now()
	reply, err := h.responder.Respond(r.Context(), req.Message)
	elapsedMs := h.now().Sub(started).Milliseconds()

	if err != nil && !errors.Is(err, responder.ErrUpstream) {
		return &HTTPError{
			StatusCode: http.StatusInternalServerError,
			Message:    "Internal server error",
			ErrorLog:   err,
		}
	}

	h.recordExchange(r, req, reply, elapsedMs)

	if errors.Is(err, responder.ErrUpstream) {
		return WriteJSON(w, http.StatusInternalServerError, dto.ChatResponse{Response: reply})
	}
	return WriteJSON(w, http.StatusOK, dto.ChatResponse{Response: reply})
}

// recordExchange is fire-and-forget: a broken store never breaks the reply.
func (h *chatEndpoints) recordExchange(r *http.Request, req dto.ChatRequest, reply string, elapsedMs int64) {
	if h.recorder == nil || req.SessionID == "" || req.Message == "" {
		return
	}

	ctx := r.Context()
	if err := h.recorder.RecordMessage(ctx, analytics.MessageParams{
		SessionID: req.SessionID,
		Sender:    model.SenderUser,
		Text:      req.Message,
	}); err != nil {
		log.Printf("chat: record user message: %v", err)
	}

	if err := h.recorder.RecordMessage(ctx, analytics.MessageParams{
		SessionID:      req.SessionID,
		Sender:         model.SenderBot,
		Text:           reply,
		ResponseTimeMs: &elapsedMs,
	}); err != nil {
		log.Printf("chat: record bot message: %v", err)
	}
}
