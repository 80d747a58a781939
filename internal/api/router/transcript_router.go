package router

import (
	"net/http"

	"support-chat-backend/internal/api"
	"support-chat-backend/internal/api/endpoints"
	"support-chat-backend/internal/mailer"
	"support-chat-backend/internal/service/analytics"
	"support-chat-backend/internal/service/transcript"
	"support-chat-backend/internal/websocket"
)

func TranscriptRoutes(prefix string, m mailer.Mailer) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		recorder := analytics.New(s.Database(), websocket.NewActivityPublisher())
		service := transcript.New(m, recorder)
		transcriptEndpoints := endpoints.NewTranscriptEndpoints(service)

		mux.HandleFunc(prefix+"/send-transcript", s.MakeHTTPHandleFunc(transcriptEndpoints.SendTranscript))
	}
}
