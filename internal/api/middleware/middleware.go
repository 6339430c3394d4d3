package middleware

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"
)

// RawEventHandler is a function that handles a raw API Gateway payload. The
// payload is kept undecoded here because either gateway shape may arrive.
type RawEventHandler func(context.Context, *slog.Logger, json.RawMessage) (events.APIGatewayProxyResponse, error)
