package response

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/prashobhdevopsarch/serverless-labs/internal/domain/errors"
)

// DefaultHeaders returns the fixed headers attached to every response
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "*",
		"Access-Control-Allow-Methods": "GET,POST,PUT,DELETE,OPTIONS",
	}
}

// JSON creates a response with the given status code and data serialized as
// the JSON body
func JSON(statusCode int, data any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(data)
	if err != nil {
		// Fallback for JSON marshaling errors
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       `{"message":"Internal error","error":"failed to marshal response"}`,
			Headers:    DefaultHeaders(),
		}
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Body:       string(body),
		Headers:    DefaultHeaders(),
	}
}

// Message creates a response whose body is a single message field
func Message(statusCode int, message string) events.APIGatewayProxyResponse {
	return JSON(statusCode, map[string]string{"message": message})
}

// Empty creates a response with an empty JSON object body
func Empty(statusCode int) events.APIGatewayProxyResponse {
	return JSON(statusCode, map[string]any{})
}

// Error collapses an application error into a response envelope. Validation
// and not-found errors expose only their message; storage and internal
// failures additionally carry the underlying error text.
func Error(appErr errors.AppError) events.APIGatewayProxyResponse {
	switch appErr.Code {
	case "STORAGE_ERROR", "INTERNAL_ERROR":
		errText := ""
		if appErr.Err != nil {
			errText = appErr.Err.Error()
		}
		return JSON(appErr.StatusCode, map[string]string{
			"message": appErr.Message,
			"error":   errText,
		})
	default:
		return Message(appErr.StatusCode, appErr.Message)
	}
}
