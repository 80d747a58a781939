package dto

type TrackSessionStartRequest struct {
	SessionID string `json:"sessionId"`
}

type TrackMessageRequest struct {
	SessionID      string `json:"sessionId"`
	Sender         string `json:"sender"`
	Text           string `json:"text"`
	ResponseTimeMs *int64 `json:"responseTimeMs,omitempty"`
	WasFromFAQ     bool   `json:"wasFromFaq,omitempty"`
	FAQCategory    string `json:"faqCategory,omitempty"`
}

type TrackFAQSelectionRequest struct {
	SessionID    string `json:"sessionId"`
	QuestionID   string `json:"questionId"`
	QuestionText string `json:"questionText"`
	Category     string `json:"category"`
}

type TrackSessionEndRequest struct {
	SessionID string `json:"sessionId"`
}

type TrackResponse struct {
	Accepted bool `json:"accepted"`
}
