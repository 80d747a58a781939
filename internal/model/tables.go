package model

const (
	ChatSessionsTable     = "ChatSessions"
	ChatMessagesTable     = "ChatMessages"
	FAQInteractionsTable  = "FAQInteractions"
	EmailTranscriptsTable = "EmailTranscripts"
)

const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatSessionItem is keyed by the client-generated session id. The duration
// and end time stay unset until the session is explicitly ended.
type ChatSessionItem struct {
	SessionID       string `dynamodbav:"sessionId"`
	StartTime       string `dynamodbav:"startTime"`
	EndTime         string `dynamodbav:"endTime,omitempty"`
	DurationSeconds *int64 `dynamodbav:"durationSeconds,omitempty"`
	MessageCount    int64  `dynamodbav:"messageCount"`
	EmailSent       bool   `dynamodbav:"emailSent"`
	UserEmail       string `dynamodbav:"userEmail,omitempty"`
	UserAgent       string `dynamodbav:"userAgent,omitempty"`
	IPAddress       string `dynamodbav:"ipAddress,omitempty"`
}

type ChatMessageItem struct {
	PK             string `dynamodbav:"pk"`
	SessionID      string `dynamodbav:"sessionId"`
	MessageID      string `dynamodbav:"messageId"`
	Sender         string `dynamodbav:"sender"`
	Text           string `dynamodbav:"text"`
	Timestamp      string `dynamodbav:"timestamp"`
	ResponseTimeMs *int64 `dynamodbav:"responseTimeMs,omitempty"`
	WasFromFAQ     bool   `dynamodbav:"wasFromFaq,omitempty"`
	FAQCategory    string `dynamodbav:"faqCategory,omitempty"`
}

type FAQInteractionItem struct {
	PK           string `dynamodbav:"pk"`
	SessionID    string `dynamodbav:"sessionId"`
	QuestionID   string `dynamodbav:"questionId"`
	QuestionText string `dynamodbav:"questionText"`
	Category     string `dynamodbav:"category"`
	Timestamp    string `dynamodbav:"timestamp"`
}

type EmailTranscriptItem struct {
	PK           string `dynamodbav:"pk"`
	SessionID    string `dynamodbav:"sessionId"`
	Email        string `dynamodbav:"email"`
	UserName     string `dynamodbav:"userName,omitempty"`
	MessageCount int    `dynamodbav:"messageCount"`
	Success      bool   `dynamodbav:"success"`
	SentAt       string `dynamodbav:"sentAt"`
}
