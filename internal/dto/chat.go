package dto

type ChatRequest struct {
	Message string `json:"message"`
	// SessionID is optional; when present the exchange is recorded against it.
	SessionID string `json:"sessionId,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
