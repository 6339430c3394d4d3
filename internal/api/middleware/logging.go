package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/aws/aws-lambda-go/events"
	ulid "github.com/oklog/ulid/v2"

	"github.com/prashobhdevopsarch/serverless-labs/internal/api/event"
)

// LoggingMiddleware is a middleware for logging requests and responses
type LoggingMiddleware struct {
	environment string
}

// NewLoggingMiddleware creates a new logging middleware. Request and
// response bodies are only logged in the dev environment.
func NewLoggingMiddleware(environment string) LoggingMiddleware {
	return LoggingMiddleware{environment: environment}
}

// Handle handles the logging middleware
func (m LoggingMiddleware) Handle(next RawEventHandler) RawEventHandler {
	return func(ctx context.Context, logger *slog.Logger, payload json.RawMessage) (events.APIGatewayProxyResponse, error) {
		startTime := time.Now()

		raw := event.Parse(payload)
		requestID := raw.RequestContext.RequestID
		if requestID == "" {
			// Local invocations carry no gateway request id.
			requestID = ulid.Make().String()
		}
		logger = logger.With("requestId", requestID)

		if m.environment == "dev" {
			logRequest(raw, logger)
		}

		response, err := next(ctx, logger, payload)

		if m.environment == "dev" {
			logResponse(response, err, time.Since(startTime), logger)
		}

		return response, err
	}
}

// logRequest logs the request
func logRequest(raw event.RawEvent, logger *slog.Logger) {
	logger.Info("REQUEST",
		"method", raw.Method(),
		"path", raw.SummaryPath(),
		"headers", maskSensitiveHeaders(raw.Headers))

	if raw.Body != "" {
		logger.Info("REQUEST", "Body", raw.Body)
	}
}

// logResponse logs the response
func logResponse(response events.APIGatewayProxyResponse, err error, duration time.Duration, logger *slog.Logger) {
	if err != nil {
		logger.Info("ERROR", "error", err)
	}

	logger.Info("RESPONSE",
		"status", response.StatusCode,
		"duration", duration,
	)

	if response.Body != "" {
		logger.Info("RESPONSE", "Body", response.Body)
	}
}

// maskSensitiveHeaders masks sensitive headers
func maskSensitiveHeaders(headers map[string]string) map[string]string {
	maskedHeaders := make(map[string]string, len(headers))
	for k, v := range headers {
		maskedHeaders[k] = v
	}

	sensitiveHeaders := []string{
		"Authorization",
		"X-Api-Key",
		"Cookie",
	}

	for _, header := range sensitiveHeaders {
		if _, ok := maskedHeaders[header]; ok {
			maskedHeaders[header] = "***"
		}
	}

	return maskedHeaders
}
