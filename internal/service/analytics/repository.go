package analytics

import (
	"context"
	"errors"
	"strconv"
	"time"

	"support-chat-backend/internal/database"
	"support-chat-backend/internal/model"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var ErrNotFound = errors.New("analytics repository: not found")

type Repository interface {
	CreateSession(ctx context.Context, session model.ChatSessionItem) (bool, error)
	GetSession(ctx context.Context, sessionID string) (model.ChatSessionItem, error)
	IncrementMessageCount(ctx context.Context, sessionID string) error
	SetSessionEnd(ctx context.Context, sessionID, endTime string, durationSeconds int64) error
	MarkSessionEmailed(ctx context.Context, sessionID, email string) error
	CreateMessage(ctx context.Context, message model.ChatMessageItem) error
	CreateFAQInteraction(ctx context.Context, interaction model.FAQInteractionItem) error
	CreateTranscript(ctx context.Context, transcript model.EmailTranscriptItem) error
	SessionsSince(ctx context.Context, since time.Time) ([]model.ChatSessionItem, error)
	MessagesSince(ctx context.Context, since time.Time) ([]model.ChatMessageItem, error)
	FAQInteractionsSince(ctx context.Context, since time.Time) ([]model.FAQInteractionItem, error)
	TranscriptsSince(ctx context.Context, since time.Time) ([]model.EmailTranscriptItem, error)
}

type DynamoRepository struct {
	db *database.Database
}

func NewDynamoRepository(db *database.Database) Repository {
	return &DynamoRepository{db: db}
}

func sessionKey(sessionID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"sessionId": &types.AttributeValueMemberS{Value: sessionID},
	}
}

func (r *DynamoRepository) CreateSession(ctx context.Context, session model.ChatSessionItem) (bool, error) {
	return r.db.Client.PutItemIfAbsent(ctx, model.ChatSessionsTable, "sessionId", session)
}

func (r *DynamoRepository) GetSession(ctx context.Context, sessionID string) (model.ChatSessionItem, error) {
	var session model.ChatSessionItem
	err := r.db.Client.GetItem(ctx, model.ChatSessionsTable, sessionKey(sessionID), &session)
	if err != nil {
		if errors.Is(err, database.ErrItemNotFound) {
			return model.ChatSessionItem{}, ErrNotFound
		}
		return model.ChatSessionItem{}, err
	}
	return session, nil
}

// IncrementMessageCount bumps the counter store-side so concurrent messages
// within one session never lose updates.
func (r *DynamoRepository) IncrementMessageCount(ctx context.Context, sessionID string) error {
	return r.db.Client.UpdateItem(
		ctx,
		model.ChatSessionsTable,
		sessionKey(sessionID),
		"ADD messageCount :one",
		map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		nil,
		nil,
	)
}

func (r *DynamoRepository) SetSessionEnd(ctx context.Context, sessionID, endTime string, durationSeconds int64) error {
	return r.db.Client.UpdateItem(
		ctx,
		model.ChatSessionsTable,
		sessionKey(sessionID),
		"SET endTime = :endTime, durationSeconds = :duration",
		map[string]types.AttributeValue{
			":endTime":  &types.AttributeValueMemberS{Value: endTime},
			":duration": &types.AttributeValueMemberN{Value: formatInt(durationSeconds)},
		},
		nil,
		nil,
	)
}

func (r *DynamoRepository) MarkSessionEmailed(ctx context.Context, sessionID, email string) error {
	return r.db.Client.UpdateItem(
		ctx,
		model.ChatSessionsTable,
		sessionKey(sessionID),
		"SET emailSent = :sent, userEmail = :email",
		map[string]types.AttributeValue{
			":sent":  &types.AttributeValueMemberBOOL{Value: true},
			":email": &types.AttributeValueMemberS{Value: email},
		},
		nil,
		nil,
	)
}

func (r *DynamoRepository) CreateMessage(ctx context.Context, message model.ChatMessageItem) error {
	return r.db.Client.PutItem(ctx, model.ChatMessagesTable, message)
}

func (r *DynamoRepository) CreateFAQInteraction(ctx context.Context, interaction model.FAQInteractionItem) error {
	return r.db.Client.PutItem(ctx, model.FAQInteractionsTable, interaction)
}

func (r *DynamoRepository) CreateTranscript(ctx context.Context, transcript model.EmailTranscriptItem) error {
	return r.db.Client.PutItem(ctx, model.EmailTranscriptsTable, transcript)
}

// The Since queries each issue one filtered scan per table; aggregation
// happens in memory. RFC3339 UTC strings order lexicographically, so the
// store compares them directly.

func (r *DynamoRepository) SessionsSince(ctx context.Context, since time.Time) ([]model.ChatSessionItem, error) {
	items, err := r.scanSince(ctx, model.ChatSessionsTable, "startTime", since)
	if err != nil {
		return nil, err
	}
	var sessions []model.ChatSessionItem
	if err := attributevalue.UnmarshalListOfMaps(items, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *DynamoRepository) MessagesSince(ctx context.Context, since time.Time) ([]model.ChatMessageItem, error) {
	items, err := r.scanSince(ctx, model.ChatMessagesTable, "timestamp", since)
	if err != nil {
		return nil, err
	}
	var messages []model.ChatMessageItem
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *DynamoRepository) FAQInteractionsSince(ctx context.Context, since time.Time) ([]model.FAQInteractionItem, error) {
	items, err := r.scanSince(ctx, model.FAQInteractionsTable, "timestamp", since)
	if err != nil {
		return nil, err
	}
	var interactions []model.FAQInteractionItem
	if err := attributevalue.UnmarshalListOfMaps(items, &interactions); err != nil {
		return nil, err
	}
	return interactions, nil
}

func (r *DynamoRepository) TranscriptsSince(ctx context.Context, since time.Time) ([]model.EmailTranscriptItem, error) {
	items, err := r.scanSince(ctx, model.EmailTranscriptsTable, "sentAt", since)
	if err != nil {
		return nil, err
	}
	var transcripts []model.EmailTranscriptItem
	if err := attributevalue.UnmarshalListOfMaps(items, &transcripts); err != nil {
		return nil, err
	}
	return transcripts, nil
}

func (r *DynamoRepository) scanSince(ctx context.Context, tableName, timeAttr string, since time.Time) ([]map[string]types.AttributeValue, error) {
	return r.db.Client.ScanFiltered(
		ctx,
		tableName,
		"#ts >= :since",
		map[string]types.AttributeValue{
			":since": &types.AttributeValueMemberS{Value: since.UTC().Format(time.RFC3339)},
		},
		map[string]string{
			"#ts": timeAttr,
		},
	)
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
