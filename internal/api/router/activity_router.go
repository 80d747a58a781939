package router

import (
	"net/http"

	"support-chat-backend/internal/api"
	"support-chat-backend/internal/api/endpoints"
)

func ActivityRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		activityEndpoints := endpoints.NewActivityEndpoints(s.Handler())
		mux.HandleFunc(prefix+"/activity", s.MakeHTTPHandleFunc(activityEndpoints.Feed))
	}
}
