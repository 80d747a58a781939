package endpoints

import (
	"net/http"

	"support-chat-backend/internal/websocket"
)

type ActivityEndpoints interface {
	Feed(http.ResponseWriter, *http.Request) error
}

type activityEndpoints struct {
	handler *websocket.Handler
}

func NewActivityEndpoints(handler *websocket.Handler) ActivityEndpoints {
	return &activityEndpoints{handler: handler}
}

func (h *activityEndpoints) Feed(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet: h.handleFeed,
	})
}

func (h *activityEndpoints) handleFeed(w http.ResponseWriter, r *http.Request) error {
	h.handler.ServeFeed(w, r)
	return nil
}
