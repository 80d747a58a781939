package router

import (
	"net/http"

	"support-chat-backend/internal/api"
	"support-chat-backend/internal/api/endpoints"
)

func FAQRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		faqEndpoints := endpoints.NewFAQEndpoints()
		mux.HandleFunc(prefix+"/faq", s.MakeHTTPHandleFunc(faqEndpoints.Catalog))
	}
}
