package model

import "fmt"

// Append-only tables key their items by session id plus a per-item id so
// concurrent writers within one session never collide.
func MessagePK(sessionID, messageID string) string {
	return fmt.Sprintf("%s#%s", sessionID, messageID)
}

func InteractionPK(sessionID, interactionID string) string {
	return fmt.Sprintf("%s#%s", sessionID, interactionID)
}

func TranscriptPK(sessionID, transcriptID string) string {
	return fmt.Sprintf("%s#%s", sessionID, transcriptID)
}
