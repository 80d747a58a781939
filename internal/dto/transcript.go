package dto

type TranscriptMessagePayload struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type SendTranscriptRequest struct {
	Email     string                     `json:"email"`
	UserName  string                     `json:"userName,omitempty"`
	Messages  []TranscriptMessagePayload `json:"messages"`
	SessionID string                     `json:"sessionId"`
}

type SendTranscriptResponse struct {
	Success bool `json:"success"`
}
