package response

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prashobhdevopsarch/serverless-labs/internal/domain/errors"
)

func TestDefaultHeaders(t *testing.T) {
	headers := DefaultHeaders()
	assert.Equal(t, "application/json", headers["Content-Type"])
	assert.Equal(t, "*", headers["Access-Control-Allow-Origin"])
	assert.Equal(t, "*", headers["Access-Control-Allow-Headers"])
	assert.Equal(t, "GET,POST,PUT,DELETE,OPTIONS", headers["Access-Control-Allow-Methods"])
}

func TestJSON(t *testing.T) {
	resp := JSON(http.StatusOK, map[string]string{"name": "x"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"name":"x"}`, resp.Body)
	assert.Equal(t, DefaultHeaders(), resp.Headers)
}

func TestEmpty(t *testing.T) {
	resp := Empty(http.StatusNoContent)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, `{}`, resp.Body)
}

func TestError(t *testing.T) {
	t.Run("validation errors expose only the message", func(t *testing.T) {
		resp := Error(errors.NewValidationError("Missing id"))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.JSONEq(t, `{"message":"Missing id"}`, resp.Body)
		assert.Equal(t, DefaultHeaders(), resp.Headers)
	})

	t.Run("storage errors carry the underlying error text", func(t *testing.T) {
		resp := Error(errors.NewStorageError("DynamoDB error", fmt.Errorf("throttled")))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.JSONEq(t, `{"message":"DynamoDB error","error":"throttled"}`, resp.Body)
	})

	t.Run("internal errors carry the underlying error text", func(t *testing.T) {
		resp := Error(errors.NewInternalError("Internal error", fmt.Errorf("boom")))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.JSONEq(t, `{"message":"Internal error","error":"boom"}`, resp.Body)
	})
}
