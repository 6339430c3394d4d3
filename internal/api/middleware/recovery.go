package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/aws/aws-lambda-go/events"

	"github.com/prashobhdevopsarch/serverless-labs/internal/api/response"
	"github.com/prashobhdevopsarch/serverless-labs/internal/domain/errors"
)

// RecoveryMiddleware is a middleware for recovering from panics. It also
// converts any error escaping the handler into a response envelope, so every
// invocation completes with exactly one response.
type RecoveryMiddleware struct{}

// NewRecoveryMiddleware creates a new recovery middleware
func NewRecoveryMiddleware() RecoveryMiddleware {
	return RecoveryMiddleware{}
}

// Handle handles the recovery middleware
func (m RecoveryMiddleware) Handle(next RawEventHandler) RawEventHandler {
	return func(ctx context.Context, logger *slog.Logger, payload json.RawMessage) (resp events.APIGatewayProxyResponse, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("PANIC", "panic", r, "stack", string(debug.Stack()))
				resp = response.Error(errors.NewInternalError("Internal error", fmt.Errorf("%v", r)))
				err = nil
			}
		}()

		resp, err = next(ctx, logger, payload)
		if err != nil {
			appErr, ok := err.(errors.AppError)
			if !ok {
				appErr = errors.NewInternalError("Internal error", err)
			}
			logger.Error("ERROR", "code", appErr.Code, "error", appErr.Error())
			return response.Error(appErr), nil
		}

		return resp, nil
	}
}
