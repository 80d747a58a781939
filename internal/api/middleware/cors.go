package middleware

import (
	"net/http"

	"support-chat-backend/utils"
)

// CORSConfig lists what the widget's browser is allowed to do. The server
// configures it once per handler chain in MakeHTTPHandleFunc.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

// resolveOrigin picks the Access-Control-Allow-Origin value for a request,
// or "" when the origin is not allowed. A "*" entry matches everything,
// but with credentials the wildcard must be replaced by the request origin.
func resolveOrigin(config CORSConfig, origin string) string {
	for _, allowed := range config.AllowedOrigins {
		if allowed == "*" {
			if config.AllowCredentials {
				return origin
			}
			return "*"
		}
		if allowed == origin {
			return allowed
		}
	}
	return ""
}

func CORS(config CORSConfig) Middleware {
	return func(f http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			allowedOrigin := resolveOrigin(config, r.Header.Get("Origin"))

			if allowedOrigin != "" {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", allowedOrigin)
				if config.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
				h.Set("Access-Control-Allow-Methods", utils.StringJoin(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", utils.StringJoin(config.AllowedHeaders, ", "))
			}

			// Preflight never reaches the endpoint handlers.
			if r.Method == http.MethodOptions {
				if allowedOrigin == "" {
					w.WriteHeader(http.StatusForbidden)
				} else {
					w.WriteHeader(http.StatusOK)
				}
				return
			}

			f(w, r)
		}
	}
}
