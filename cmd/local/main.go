// Command local serves the items handler over plain HTTP for development,
// translating each request into an API Gateway HTTP API (v2) event and the
// resulting envelope back into an HTTP response.
package main

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	ulid "github.com/oklog/ulid/v2"

	"github.com/prashobhdevopsarch/serverless-labs/internal/api/handlers"
	"github.com/prashobhdevopsarch/serverless-labs/internal/api/middleware"
	envconfig "github.com/prashobhdevopsarch/serverless-labs/internal/common/config"
	"github.com/prashobhdevopsarch/serverless-labs/internal/domain/item"
	ddbclient "github.com/prashobhdevopsarch/serverless-labs/internal/platform/dynamodb/client"
	"github.com/prashobhdevopsarch/serverless-labs/internal/platform/dynamodb/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	config, err := envconfig.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load Env config: %v", err)
	}

	dbClient, err := ddbclient.NewDynamoDBClient(context.Background(), config.AWSRegion)
	if err != nil {
		log.Fatalf("Failed to create DynamoDB client: %v", err)
	}

	itemRepo := repository.NewDynamoDBItemRepository(dbClient, config.TableName)
	itemService := item.NewService(itemRepo)
	h := handlers.NewItemsHandler(itemService)
	itemsHandler := middleware.NewLoggingMiddleware(config.Environment).Handle(
		middleware.NewRecoveryMiddleware().Handle(h.Handle))

	addr := os.Getenv("LOCAL_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	logger.Info("local gateway listening", "addr", addr, "table", config.TableName)
	err = http.ListenAndServe(addr, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, err := json.Marshal(gatewayEvent(r))
		if err != nil {
			http.Error(w, "failed to build gateway event", http.StatusInternalServerError)
			return
		}

		resp, err := itemsHandler(r.Context(), logger, payload)
		if err != nil {
			http.Error(w, "handler error", http.StatusInternalServerError)
			return
		}

		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		io.WriteString(w, resp.Body)
	}))
	log.Fatalf("Server stopped: %v", err)
}

// gatewayEvent builds an HTTP API v2 event from an inbound HTTP request
func gatewayEvent(r *http.Request) *events.APIGatewayV2HTTPRequest {
	body, _ := io.ReadAll(r.Body)

	request := &events.APIGatewayV2HTTPRequest{
		Version:        "2.0",
		RouteKey:       "$default",
		RawPath:        r.URL.Path,
		RawQueryString: r.URL.RawQuery,
		Headers:        map[string]string{},
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			RouteKey:  "$default",
			Stage:     "$default",
			RequestID: ulid.Make().String(),
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method:   r.Method,
				Path:     r.URL.Path,
				Protocol: r.Proto,
			},
		},
		Body: string(body),
	}
	for header, values := range r.Header {
		request.Headers[strings.ToLower(header)] = values[0]
	}
	return request
}
