package env

import (
	"os"
)

const (
	AWSRegion        = "AWS_REGION"
	AWSID            = "AWS_ID"
	AWSSecret        = "AWS_SECRET"
	AWSToken         = "AWS_TOKEN"
	DynamoDBEndpoint = "DYNAMODB_ENDPOINT"

	GeminiAPIKey      = "GEMINI_API_KEY"
	ResponderStrategy = "RESPONDER_STRATEGY"

	BrevoAPIKey      = "BREVO_API_KEY"
	TranscriptSender = "TRANSCRIPT_SENDER_EMAIL"

	ActivityRedisURL  = "ACTIVITY_REDIS_URL"
	ActivityRedisPass = "ACTIVITY_REDIS_PASS"
	WebUrl            = "WEB_URL"
)

// Require panics unless every named variable is set. Each binary calls it
// from main with the keys it actually needs.
func Require(keys ...string) {
	for _, key := range keys {
		if os.Getenv(key) == "" {
			panic("env: required environment variable not set: " + key)
		}
	}
}

func Get(key string) string {
	return os.Getenv(key)
}

func GetOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func MustGet(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic("env: required environment variable not set: " + key)
	}
	return val
}
