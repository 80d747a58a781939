package websocket

import (
	"context"
	"log"
	"net/http"
	"time"

	"support-chat-backend/internal/env"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ActivityChannel carries recorder events between processes.
const ActivityChannel = "support-chat:activity"

var (
	upgrader    websocket.Upgrader
	redisClient *redis.Client
)

func init() {
	upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	redisClient = redis.NewClient(&redis.Options{
		Addr:     env.Get(env.ActivityRedisURL),
		Password: env.Get(env.ActivityRedisPass),
		DB:       0,
	})
}

type Handler struct {
	hub         *Hub
	redisClient *redis.Client
}

func NewHandler(h *Hub) *Handler {
	return &Handler{
		hub:         h,
		redisClient: redisClient,
	}
}

// SubscribeToActivityChannel pipes the Redis activity channel into the hub.
// It blocks, so callers run it on its own goroutine.
func (h *Handler) SubscribeToActivityChannel() {
	subscriber := h.redisClient.Subscribe(context.Background(), ActivityChannel)
	defer subscriber.Close()

	ch := subscriber.Channel()
	for msg := range ch {
		h.hub.Broadcast <- &FeedMessage{
			Content:   msg.Payload,
			Timestamp: time.Now().Unix(),
		}
	}
	log.Printf("unsubscribed from Redis channel %s", ActivityChannel)
}

// ServeFeed upgrades the request and attaches the client to the live feed.
func (h *Handler) ServeFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	client := &FeedClient{
		Conn:    conn,
		Message: make(chan *FeedMessage, 16),
		ID:      uuid.NewString(),
		done:    make(chan struct{}),
	}

	h.hub.Register <- client

	go client.writeMessages()
	go client.keepAlive()
	go client.readLoop(h.hub)
}
