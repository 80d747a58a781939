package router

import (
	"net/http"

	"support-chat-backend/internal/api"
	"support-chat-backend/internal/api/endpoints"
	"support-chat-backend/internal/service/analytics"
	"support-chat-backend/internal/websocket"
)

func AnalyticsRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		service := analytics.New(s.Database(), websocket.NewActivityPublisher())
		analyticsEndpoints := endpoints.NewAnalyticsEndpoints(service)

		mux.HandleFunc(prefix+"/analytics", s.MakeHTTPHandleFunc(analyticsEndpoints.Metrics))
	}
}

func TrackRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		service := analytics.New(s.Database(), websocket.NewActivityPublisher())
		trackEndpoints := endpoints.NewTrackEndpoints(service)

		mux.HandleFunc(prefix+"/track/session-start", s.MakeHTTPHandleFunc(trackEndpoints.SessionStart))
		mux.HandleFunc(prefix+"/track/message", s.MakeHTTPHandleFunc(trackEndpoints.Message))
		mux.HandleFunc(prefix+"/track/faq", s.MakeHTTPHandleFunc(trackEndpoints.FAQSelection))
		mux.HandleFunc(prefix+"/track/session-end", s.MakeHTTPHandleFunc(trackEndpoints.SessionEnd))
	}
}
