package event

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEquivalentShapes(t *testing.T) {
	legacy := Parse([]byte(`{
		"httpMethod": "post",
		"path": "/items",
		"body": "{\"name\":\"x\"}"
	}`))
	v2 := Parse([]byte(`{
		"rawPath": "/items",
		"body": "{\"name\":\"x\"}",
		"requestContext": {"http": {"method": "post"}}
	}`))

	reqLegacy := Normalize(legacy)
	reqV2 := Normalize(v2)

	assert.Equal(t, reqLegacy, reqV2)
	assert.Equal(t, "POST", reqLegacy.Method)
	assert.Equal(t, "/items", reqLegacy.Path)
	assert.Equal(t, map[string]any{"name": "x"}, reqLegacy.Body)
	assert.Equal(t, "", reqLegacy.ID)
}

func TestNormalizeStagePrefix(t *testing.T) {
	tests := []struct {
		name     string
		rawPath  string
		stage    string
		wantPath string
		wantID   string
	}{
		{
			name:     "stage prefix stripped",
			rawPath:  "/prod/items/42",
			stage:    "prod",
			wantPath: "/items/42",
			wantID:   "42",
		},
		{
			name:     "no stage declared",
			rawPath:  "/prod/items/42",
			stage:    "",
			wantPath: "/prod/items/42",
			wantID:   "",
		},
		{
			name:     "stage not a prefix",
			rawPath:  "/items/42",
			stage:    "prod",
			wantPath: "/items/42",
			wantID:   "42",
		},
		{
			name:     "stage equals whole path",
			rawPath:  "/prod",
			stage:    "prod",
			wantPath: "/",
			wantID:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Normalize(RawEvent{
				RawPath: tt.rawPath,
				RequestContext: RequestContext{
					Stage: tt.stage,
					HTTP:  HTTPContext{Method: "GET"},
				},
			})
			assert.Equal(t, tt.wantPath, req.Path)
			assert.Equal(t, tt.wantID, req.ID)
		})
	}
}

func TestNormalizeBody(t *testing.T) {
	t.Run("base64 body decodes like a plain one", func(t *testing.T) {
		plain := Normalize(RawEvent{Body: `{"name":"x"}`})
		encoded := Normalize(RawEvent{
			Body:            base64.StdEncoding.EncodeToString([]byte(`{"name":"x"}`)),
			IsBase64Encoded: true,
		})
		assert.Equal(t, plain.Body, encoded.Body)
		assert.Equal(t, map[string]any{"name": "x"}, plain.Body)
	})

	t.Run("empty body yields empty mapping", func(t *testing.T) {
		req := Normalize(RawEvent{})
		assert.Equal(t, map[string]any{}, req.Body)
	})

	t.Run("unparsable body yields empty mapping", func(t *testing.T) {
		req := Normalize(RawEvent{Body: `{"name":`})
		assert.Equal(t, map[string]any{}, req.Body)
	})

	t.Run("invalid base64 degrades to empty mapping", func(t *testing.T) {
		req := Normalize(RawEvent{Body: "!!not-base64!!", IsBase64Encoded: true})
		assert.Equal(t, map[string]any{}, req.Body)
	})

	t.Run("array body is kept for the operations to reject", func(t *testing.T) {
		req := Normalize(RawEvent{Body: `[1,2]`})
		assert.Equal(t, []any{float64(1), float64(2)}, req.Body)
	})
}

func TestNormalizeResourceID(t *testing.T) {
	t.Run("explicit path parameter wins", func(t *testing.T) {
		req := Normalize(RawEvent{
			RawPath:        "/items/from-path",
			PathParameters: map[string]string{"id": "from-params"},
		})
		assert.Equal(t, "from-params", req.ID)
	})

	t.Run("second segment of /items/{id}", func(t *testing.T) {
		req := Normalize(RawEvent{RawPath: "/items/a1"})
		assert.Equal(t, "a1", req.ID)
	})

	t.Run("no id outside the items collection", func(t *testing.T) {
		req := Normalize(RawEvent{RawPath: "/other/a1"})
		assert.Equal(t, "", req.ID)
	})

	t.Run("no id for deeper paths", func(t *testing.T) {
		req := Normalize(RawEvent{RawPath: "/items/a1/extra"})
		assert.Equal(t, "", req.ID)
	})
}

func TestParseDegradesGracefully(t *testing.T) {
	req := Normalize(Parse([]byte("not json at all")))
	assert.Equal(t, "", req.Method)
	assert.Equal(t, "/", req.Path)
	assert.Equal(t, map[string]any{}, req.Body)
	assert.Equal(t, "", req.ID)
}
