package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"support-chat-backend/internal/service/analytics"
)

func Publish(payload interface{}) error {
	if redisClient == nil {
		return fmt.Errorf("websocket publish: redis client not initialised")
	}

	messageJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("websocket publish: marshal payload: %w", err)
	}

	if err := redisClient.Publish(context.Background(), ActivityChannel, string(messageJSON)).Err(); err != nil {
		return fmt.Errorf("websocket publish: redis publish: %w", err)
	}
	return nil
}

// ActivityPublisher adapts the Redis channel to the recorder's publisher
// interface.
type ActivityPublisher struct{}

func NewActivityPublisher() *ActivityPublisher {
	return &ActivityPublisher{}
}

func (p *ActivityPublisher) PublishEvent(event analytics.Event) error {
	return Publish(event)
}
