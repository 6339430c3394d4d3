package errors

import (
	"fmt"
	"net/http"
	"testing"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/stretchr/testify/assert"
)

func serviceError(statusCode int) error {
	return &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{
				Response: &http.Response{StatusCode: statusCode},
			},
			Err: fmt.Errorf("ValidationException: One or more parameter values were invalid"),
		},
	}
}

func TestNewStorageError(t *testing.T) {
	t.Run("reuses the service-reported status code", func(t *testing.T) {
		err := NewStorageError("DynamoDB error", serviceError(400))
		assert.Equal(t, 400, err.StatusCode)
		assert.Equal(t, "DynamoDB error", err.Message)
	})

	t.Run("falls back to 500 without an HTTP response", func(t *testing.T) {
		err := NewStorageError("DynamoDB error", fmt.Errorf("connection refused"))
		assert.Equal(t, 500, err.StatusCode)
	})

	t.Run("unwraps through wrapping layers", func(t *testing.T) {
		wrapped := fmt.Errorf("operation error DynamoDB: Scan: %w", serviceError(503))
		err := NewStorageError("DynamoDB error", wrapped)
		assert.Equal(t, 503, err.StatusCode)
	})
}

func TestIsStorageError(t *testing.T) {
	assert.True(t, IsStorageError(NewStorageError("DynamoDB error", nil)))
	assert.False(t, IsStorageError(NewValidationError("Missing id")))
	assert.False(t, IsStorageError(fmt.Errorf("plain")))
}

func TestAppErrorText(t *testing.T) {
	err := NewInternalError("Internal error", fmt.Errorf("boom"))
	assert.Equal(t, "INTERNAL_ERROR: Internal error: boom", err.Error())

	bare := NewNotFoundError("Not found")
	assert.Equal(t, "NOT_FOUND: Not found", bare.Error())
}
