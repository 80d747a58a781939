package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"support-chat-backend/internal/dto"
	"support-chat-backend/internal/service/transcript"
)

type TranscriptEndpoints interface {
	SendTranscript(http.ResponseWriter, *http.Request) error
}

type transcriptEndpoints struct {
	service *transcript.Service
}

func NewTranscriptEndpoints(service *transcript.Service) TranscriptEndpoints {
	return &transcriptEndpoints{
		service: service,
	}
}

func (h *transcriptEndpoints) SendTranscript(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodPost: h.handleSendTranscript,
	})
}

func (h *transcriptEndpoints) handleSendTranscript(w http.ResponseWriter, r *http.Request) error {
	var req dto.SendTranscriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid request payload",
			ErrorLog:   fmt.Errorf("decode transcript request: %w", err),
		}
	}

	messages := make([]transcript.Message, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = transcript.Message{
			Sender:    m.Sender,
			Text:      m.Text,
			Timestamp: m.Timestamp,
		}
	}
	if req.Messages == nil {
		messages = nil
	}

	err := h.service.Send(r.Context(), transcript.SendParams{
		SessionID: req.SessionID,
		Email:     req.Email,
		UserName:  req.UserName,
		Messages:  messages,
	})
	if err != nil {
		return mapTranscriptServiceError(err)
	}

	return WriteJSON(w, http.StatusOK, dto.SendTranscriptResponse{Success: true})
}

func mapTranscriptServiceError(err error) error {
	var svcErr *transcript.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Code {
		case transcript.ErrorCodeValidation:
			return &HTTPError{StatusCode: http.StatusBadRequest, Message: svcErr.Message, ErrorLog: err}
		case transcript.ErrorCodeUpstream:
			return &HTTPError{StatusCode: http.StatusInternalServerError, Message: "Failed to send the transcript email", ErrorLog: err}
		}
	}
	return &HTTPError{StatusCode: http.StatusInternalServerError, Message: "Internal server error", ErrorLog: err}
}
