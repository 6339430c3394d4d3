package event

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// RawEvent captures the fields shared by the two API Gateway payload shapes:
// the HTTP API v2 shape (requestContext.http + rawPath) and the legacy REST
// shape (top-level httpMethod + path). Decoding an event of either shape
// into this struct leaves the other shape's fields at their zero values.
type RawEvent struct {
	HTTPMethod      string            `json:"httpMethod"`
	Path            string            `json:"path"`
	RawPath         string            `json:"rawPath"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
	PathParameters  map[string]string `json:"pathParameters"`
	RequestContext  RequestContext    `json:"requestContext"`
}

// RequestContext holds the gateway request context fields used for routing
type RequestContext struct {
	Stage     string      `json:"stage"`
	RequestID string      `json:"requestId"`
	HTTP      HTTPContext `json:"http"`
}

// HTTPContext is the nested http object of the v2 payload shape
type HTTPContext struct {
	Method string `json:"method"`
}

// Request is the normalized form of an inbound gateway event
type Request struct {
	Method string
	Path   string
	Body   any
	ID     string
}

// Parse decodes a raw gateway payload. Unknown fields are ignored and a
// malformed payload degrades to the zero event, never an error.
func Parse(payload []byte) RawEvent {
	var e RawEvent
	_ = json.Unmarshal(payload, &e)
	return e
}

// Method returns the request method from whichever shape carries it
func (e RawEvent) Method() string {
	if e.RequestContext.HTTP.Method != "" {
		return e.RequestContext.HTTP.Method
	}
	return e.HTTPMethod
}

// SummaryPath returns the raw request path for logging, before any
// normalization is applied
func (e RawEvent) SummaryPath() string {
	if e.RawPath != "" {
		return e.RawPath
	}
	return e.Path
}

// Normalize produces the internal request form of a raw gateway event. All
// inputs degrade gracefully to defaults; there are no error conditions.
func Normalize(e RawEvent) Request {
	path := e.RawPath
	if path == "" {
		path = e.Path
	}
	if path == "" {
		path = "/"
	}

	// Strip the deployment-stage prefix, if the event declares one.
	if stage := e.RequestContext.Stage; stage != "" && strings.HasPrefix(path, "/"+stage) {
		path = path[len(stage)+1:]
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
	}

	return Request{
		Method: strings.ToUpper(e.Method()),
		Path:   path,
		Body:   parseBody(e),
		ID:     resourceID(e, path),
	}
}

// parseBody decodes the request body into a JSON value. An absent, empty,
// or unparsable body yields an empty mapping.
func parseBody(e RawEvent) any {
	raw := e.Body
	if raw != "" && e.IsBase64Encoded {
		if decoded, err := base64.StdEncoding.DecodeString(raw); err == nil {
			raw = string(decoded)
		}
	}
	if raw == "" {
		return map[string]any{}
	}

	var body any
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		return map[string]any{}
	}
	return body
}

// resourceID extracts the item identifier: an explicit "id" path parameter
// wins; otherwise the second segment of a two-segment /items/{id} path.
func resourceID(e RawEvent, path string) string {
	if id := e.PathParameters["id"]; id != "" {
		return id
	}

	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 2 && segments[0] == "items" {
		return segments[1]
	}
	return ""
}
