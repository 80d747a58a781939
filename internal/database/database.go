package database

import (
	"context"
	"fmt"

	"support-chat-backend/internal/env"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type Config struct {
	Region    string
	KeyID     string
	KeySecret string
	KeyToken  string
	Endpoint  string
}

// ConfigFromEnv builds the store configuration from the process environment.
// The endpoint override points the client at DynamoDB Local in development.
func ConfigFromEnv() Config {
	return Config{
		Region:    env.Get(env.AWSRegion),
		KeyID:     env.Get(env.AWSID),
		KeySecret: env.Get(env.AWSSecret),
		KeyToken:  env.Get(env.AWSToken),
		Endpoint:  env.Get(env.DynamoDBEndpoint),
	}
}

type DynamoDBClient struct {
	svc *dynamodb.Client
}

func NewDynamoDBClient(c Config) (*DynamoDBClient, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(c.Region),
	}

	if c.KeyID != "" && c.KeySecret != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(c.KeyID, c.KeySecret, c.KeyToken)),
		))
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	clientOpts := []func(*dynamodb.Options){}
	if c.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(c.Endpoint)
		})
	}

	db := dynamodb.NewFromConfig(cfg, clientOpts...)
	return &DynamoDBClient{
		svc: db,
	}, nil
}

type Database struct {
	Client *DynamoDBClient
}

func NewDatabase(c Config) (*Database, error) {
	dbClient, err := NewDynamoDBClient(c)
	if err != nil {
		return nil, fmt.Errorf("init dynamodb client: %w", err)
	}

	return &Database{
		Client: dbClient,
	}, nil
}
