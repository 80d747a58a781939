package main

import (
	"context"
	"log"

	"support-chat-backend/internal/api"
	"support-chat-backend/internal/api/router"
	"support-chat-backend/internal/database"
	"support-chat-backend/internal/env"
	"support-chat-backend/internal/mailer"
	"support-chat-backend/internal/queue"
	"support-chat-backend/internal/service/responder"
)

func main() {
	env.Require(
		env.AWSRegion,
		env.AWSID,
		env.AWSSecret,
		env.BrevoAPIKey,
		env.TranscriptSender,
		env.ActivityRedisURL,
	)

	queueManager := queue.NewRequestQueueManager(10, 10)
	db, err := database.NewDatabase(database.ConfigFromEnv())
	if err != nil {
		log.Fatalf("db init failed: %v", err)
	}

	rsp, err := buildResponder(context.Background())
	if err != nil {
		log.Fatalf("responder init failed: %v", err)
	}

	brevo, err := mailer.NewBrevoMailer(
		env.Get(env.BrevoAPIKey),
		"INGELEAN",
		env.Get(env.TranscriptSender),
	)
	if err != nil {
		log.Fatalf("mailer init failed: %v", err)
	}

	server := api.NewAPIServer(
		":81",
		queueManager,
		db,
		nil,
		router.UtilsRoutes("/api/v1"),
		router.ChatRoutes("/api/v1", rsp),
		router.TranscriptRoutes("/api/v1", brevo),
		router.AnalyticsRoutes("/api/v1"),
		router.TrackRoutes("/api/v1"),
		router.FAQRoutes("/api/v1"),
	)

	server.Run()
}

func buildResponder(ctx context.Context) (responder.Responder, error) {
	switch strategy := env.GetOrDefault(env.ResponderStrategy, "keyword"); strategy {
	case "gemini":
		return responder.NewGeminiResponder(ctx, env.MustGet(env.GeminiAPIKey))
	case "keyword":
		return responder.NewKeywordResponder(), nil
	default:
		log.Printf("unknown responder strategy %q, falling back to keyword", strategy)
		return responder.NewKeywordResponder(), nil
	}
}
