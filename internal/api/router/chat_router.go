package router

import (
	"net/http"

	"support-chat-backend/internal/api"
	"support-chat-backend/internal/api/endpoints"
	"support-chat-backend/internal/service/analytics"
	"support-chat-backend/internal/service/responder"
	"support-chat-backend/internal/websocket"
)

func ChatRoutes(prefix string, rsp responder.Responder) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		service := analytics.New(s.Database(), websocket.NewActivityPublisher())
		chatEndpoints := endpoints.NewChatEndpoints(rsp, service)

		mux.HandleFunc(prefix+"/chat", s.MakeHTTPHandleFunc(chatEndpoints.Chat))
	}
}
