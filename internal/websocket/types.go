package websocket

// FeedMessage is what dashboard clients receive: the recorder event payload
// plus the delivery timestamp.
type FeedMessage struct {
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}
