package main

import (
	"log"

	"support-chat-backend/internal/api"
	"support-chat-backend/internal/api/router"
	"support-chat-backend/internal/database"
	"support-chat-backend/internal/env"
	"support-chat-backend/internal/queue"
	"support-chat-backend/internal/websocket"
)

func main() {
	env.Require(
		env.AWSRegion,
		env.AWSID,
		env.AWSSecret,
		env.ActivityRedisURL,
	)

	queueManager := queue.NewRequestQueueManager(10, 10)
	db, err := database.NewDatabase(database.ConfigFromEnv())
	if err != nil {
		log.Fatalf("db init failed: %v", err)
	}

	hub := websocket.NewHub()
	go hub.Run()
	handler := websocket.NewHandler(hub)

	server := api.NewAPIServer(
		":83",
		queueManager,
		db,
		handler,
		router.UtilsRoutes("/api/ws/v1"),
		router.ActivityRoutes("/api/ws/v1"),
	)

	go handler.SubscribeToActivityChannel()

	server.Run()
}
