package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/prashobhdevopsarch/serverless-labs/internal/api/handlers"
	"github.com/prashobhdevopsarch/serverless-labs/internal/api/middleware"
	envconfig "github.com/prashobhdevopsarch/serverless-labs/internal/common/config"
	"github.com/prashobhdevopsarch/serverless-labs/internal/domain/item"
	ddbclient "github.com/prashobhdevopsarch/serverless-labs/internal/platform/dynamodb/client"
	"github.com/prashobhdevopsarch/serverless-labs/internal/platform/dynamodb/repository"
)

var (
	itemsHandler middleware.RawEventHandler
	logger       *slog.Logger
	config       *envconfig.Config
)

func init() {
	// Initialize logger
	logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var err error
	config, err = envconfig.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load Env config: %v", err)
	}

	// Initialize DynamoDB client
	dbClient, err := ddbclient.NewDynamoDBClient(context.Background(), config.AWSRegion)
	if err != nil {
		log.Fatalf("Failed to create DynamoDB client: %v", err)
	}

	// Initialize repository and service
	itemRepo := repository.NewDynamoDBItemRepository(dbClient, config.TableName)
	itemService := item.NewService(itemRepo)

	// Initialize handler with middleware chain
	h := handlers.NewItemsHandler(itemService)
	itemsHandler = middleware.NewLoggingMiddleware(config.Environment).Handle(
		middleware.NewRecoveryMiddleware().Handle(h.Handle))
}

func handler(ctx context.Context, payload json.RawMessage) (events.APIGatewayProxyResponse, error) {
	return itemsHandler(ctx, logger, payload)
}

func main() {
	lambda.Start(handler)
}
