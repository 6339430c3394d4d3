package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/prashobhdevopsarch/serverless-labs/internal/api/event"
	"github.com/prashobhdevopsarch/serverless-labs/internal/api/response"
	"github.com/prashobhdevopsarch/serverless-labs/internal/domain/errors"
	"github.com/prashobhdevopsarch/serverless-labs/internal/domain/item"
)

// ItemsHandler routes inbound gateway events to the item operations
type ItemsHandler struct {
	svc *item.Service
}

// NewItemsHandler creates a new items handler
func NewItemsHandler(svc *item.Service) *ItemsHandler {
	return &ItemsHandler{
		svc: svc,
	}
}

// Handle processes one inbound gateway event and always produces exactly one
// response envelope.
func (h *ItemsHandler) Handle(ctx context.Context, logger *slog.Logger, payload json.RawMessage) (events.APIGatewayProxyResponse, error) {
	raw := event.Parse(payload)

	// Summary of the raw event, logged before normalization so it reflects
	// the true request even when normalization degrades to defaults.
	logger.Info("event summary",
		"path", raw.SummaryPath(),
		"stage", raw.RequestContext.Stage,
		"method", raw.Method())

	// CORS preflight short-circuit, bypassing normalization and routing.
	if raw.Method() == http.MethodOptions {
		return response.Empty(http.StatusOK), nil
	}

	req := event.Normalize(raw)

	switch {
	case req.Path == "/items" && req.Method == http.MethodGet:
		result, err := h.svc.ListItems(ctx)
		if err != nil {
			return h.errorResponse(logger, err), nil
		}
		return response.JSON(http.StatusOK, result), nil

	case req.Path == "/items" && req.Method == http.MethodPost:
		it, err := h.svc.CreateItem(ctx, req.Body)
		if err != nil {
			return h.errorResponse(logger, err), nil
		}
		return response.JSON(http.StatusCreated, it), nil

	case strings.HasPrefix(req.Path, "/items/") && req.Method == http.MethodGet:
		it, err := h.svc.GetItem(ctx, req.ID)
		if err != nil {
			return h.errorResponse(logger, err), nil
		}
		return response.JSON(http.StatusOK, it), nil

	case strings.HasPrefix(req.Path, "/items/") && req.Method == http.MethodPut:
		it, err := h.svc.UpdateItem(ctx, req.ID, req.Body)
		if err != nil {
			return h.errorResponse(logger, err), nil
		}
		return response.JSON(http.StatusOK, it), nil

	case strings.HasPrefix(req.Path, "/items/") && req.Method == http.MethodDelete:
		if err := h.svc.DeleteItem(ctx, req.ID); err != nil {
			return h.errorResponse(logger, err), nil
		}
		return response.Empty(http.StatusNoContent), nil

	default:
		return response.JSON(http.StatusBadRequest, map[string]string{
			"message": "Unsupported route",
			"path":    req.Path,
			"method":  req.Method,
		}), nil
	}
}

// errorResponse logs an operation error with full detail, then reduces it to
// a minimal-information envelope.
func (h *ItemsHandler) errorResponse(logger *slog.Logger, err error) events.APIGatewayProxyResponse {
	appErr, ok := err.(errors.AppError)
	if !ok {
		appErr = errors.NewInternalError("Internal error", err)
	}

	if errors.IsStorageError(err) {
		logger.Error("DynamoDB client error", "error", appErr.Error(), "status", appErr.StatusCode)
	} else if appErr.Code == "INTERNAL_ERROR" {
		logger.Error("Unhandled error", "error", appErr.Error())
	} else {
		logger.Info("request rejected", "code", appErr.Code, "message", appErr.Message)
	}

	return response.Error(appErr)
}
