package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"support-chat-backend/internal/dto"
	"support-chat-backend/internal/service/analytics"
	"support-chat-backend/utils"
)

// TrackEndpoints is the fire-and-forget recorder surface used by the widget.
// Store failures are logged and answered with 202 anyway; only a malformed
// request or a missing session id earns a 400.
type TrackEndpoints interface {
	SessionStart(http.ResponseWriter, *http.Request) error
	Message(http.ResponseWriter, *http.Request) error
	FAQSelection(http.ResponseWriter, *http.Request) error
	SessionEnd(http.ResponseWriter, *http.Request) error
}

type trackEndpoints struct {
	service *analytics.Service
}

func NewTrackEndpoints(service *analytics.Service) TrackEndpoints {
	return &trackEndpoints{
		service: service,
	}
}

func (h *trackEndpoints) SessionStart(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodPost: h.handleSessionStart,
	})
}

func (h *trackEndpoints) Message(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodPost: h.handleMessage,
	})
}

func (h *trackEndpoints) FAQSelection(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodPost: h.handleFAQSelection,
	})
}

func (h *trackEndpoints) SessionEnd(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodPost: h.handleSessionEnd,
	})
}

func (h *trackEndpoints) handleSessionStart(w http.ResponseWriter, r *http.Request) error {
	var req dto.TrackSessionStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return invalidPayload(err)
	}
	if req.SessionID == "" {
		return missingSessionID()
	}

	if err := h.service.RecordSessionStart(r.Context(), req.SessionID, r.UserAgent(), utils.RealClientIP(r)); err != nil {
		log.Printf("track: session start %s: %v", req.SessionID, err)
	}
	return accepted(w)
}

func (h *trackEndpoints) handleMessage(w http.ResponseWriter, r *http.Request) error {
	var req dto.TrackMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return invalidPayload(err)
	}
	if req.SessionID == "" {
		return missingSessionID()
	}

	if err := h.service.RecordMessage(r.Context(), analytics.MessageParams{
		SessionID:      req.SessionID,
		Sender:         req.Sender,
		Text:           req.Text,
		ResponseTimeMs: req.ResponseTimeMs,
		WasFromFAQ:     req.WasFromFAQ,
		FAQCategory:    req.FAQCategory,
	}); err != nil {
		if isValidation(err) {
			return &HTTPError{StatusCode: http.StatusBadRequest, Message: err.Error(), ErrorLog: err}
		}
		log.Printf("track: message for %s: %v", req.SessionID, err)
	}
	return accepted(w)
}

func (h *trackEndpoints) handleFAQSelection(w http.ResponseWriter, r *http.Request) error {
	var req dto.TrackFAQSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return invalidPayload(err)
	}
	if req.SessionID == "" {
		return missingSessionID()
	}

	if err := h.service.RecordFAQSelection(r.Context(), req.SessionID, req.QuestionID, req.QuestionText, req.Category); err != nil {
		log.Printf("track: FAQ selection for %s: %v", req.SessionID, err)
	}
	return accepted(w)
}

func (h *trackEndpoints) handleSessionEnd(w http.ResponseWriter, r *http.Request) error {
	var req dto.TrackSessionEndRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return invalidPayload(err)
	}
	if req.SessionID == "" {
		return missingSessionID()
	}

	if err := h.service.RecordSessionEnd(r.Context(), req.SessionID); err != nil {
		log.Printf("track: session end %s: %v", req.SessionID, err)
	}
	return accepted(w)
}

func accepted(w http.ResponseWriter) error {
	return WriteJSON(w, http.StatusAccepted, dto.TrackResponse{Accepted: true})
}

func invalidPayload(err error) error {
	return &HTTPError{
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid request payload",
		ErrorLog:   fmt.Errorf("decode track request: %w", err),
	}
}

func missingSessionID() error {
	return &HTTPError{
		StatusCode: http.StatusBadRequest,
		Message:    "sessionId is required",
		ErrorLog:   fmt.Errorf("track request without sessionId"),
	}
}

func isValidation(err error) bool {
	var svcErr *analytics.Error
	return errors.As(err, &svcErr) && svcErr.Code == analytics.ErrorCodeValidation
}
