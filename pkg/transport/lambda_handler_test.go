package transport

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLambdaHandler_Router(t *testing.T) {
	h, logs := newHandlers(t)
	handler, err := NewLambdaHandler(h, ModeRouter, time.Second, zerolog.New(logs))
	require.NoError(t, err)

	ctx := context.Background()
	employee := `{"id":"1234","firstName":"John","lastName":"Doe","jobPosition":"Developer"}`

	resp, err := handler.Handle(ctx, events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/employees",
		Body:       employee,
		Headers:    map[string]string{"X-Correlation-Id": "corr-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Employee added successfully with ID: 1234", resp.Body)
	assert.Equal(t, "corr-1", resp.Headers[HeaderCorrelationID])
	assert.Contains(t, logs.String(), `"correlation_id":"corr-1"`)
	assert.Contains(t, logs.String(), "lambda request completed")

	resp, err = handler.Handle(ctx, events.APIGatewayProxyRequest{
		HTTPMethod:     http.MethodGet,
		Path:           "/employees/1234",
		PathParameters: map[string]string{"id": "1234"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, employee, resp.Body)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.NotEmpty(t, resp.Headers[HeaderCorrelationID], "correlation id gerado quando ausente")

	resp, _ = handler.Handle(ctx, events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet, Path: "/employees"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "["+employee+"]", resp.Body)

	resp, _ = handler.Handle(ctx, events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPut,
		Path:       "/employees",
		Body:       `{"id":"1234","firstName":"Jane","lastName":"Doe","jobPosition":"Lead"}`,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = handler.Handle(ctx, events.APIGatewayProxyRequest{
		HTTPMethod:     http.MethodDelete,
		Path:           "/employees/1234",
		PathParameters: map[string]string{"id": "1234"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Employee with ID 1234 deleted successfully.", resp.Body)

	resp, _ = handler.Handle(ctx, events.APIGatewayProxyRequest{HTTPMethod: http.MethodDelete, Path: "/employees"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid input. Please provide an employeeId.", resp.Body)

	resp, _ = handler.Handle(ctx, events.APIGatewayProxyRequest{HTTPMethod: http.MethodPatch, Path: "/employees"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, MsgRouteNotFound, resp.Body)
}

func TestLambdaHandler_SingleOperation(t *testing.T) {
	h, logs := newHandlers(t)

	handler, err := NewLambdaHandler(h, "delete", time.Second, zerolog.New(logs))
	require.NoError(t, err)

	// O método é ignorado quando a função atende uma única operação
	resp, err := handler.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid input. Please provide an employeeId.", resp.Body)

	_, err = NewLambdaHandler(h, "patch", time.Second, zerolog.New(logs))
	assert.Error(t, err)
}

func TestRouteFor(t *testing.T) {
	tests := []struct {
		method string
		hasID  bool
		want   string
		ok     bool
	}{
		{http.MethodPost, false, "create", true},
		{http.MethodGet, false, "list", true},
		{http.MethodGet, true, "read", true},
		{http.MethodPut, false, "update", true},
		{http.MethodDelete, true, "delete", true},
		{http.MethodDelete, false, "delete", true},
		{http.MethodPost, true, "", false},
		{http.MethodPatch, false, "", false},
	}

	for _, tt := range tests {
		op, ok := RouteFor(tt.method, tt.hasID)
		assert.Equal(t, tt.ok, ok, tt.method)
		assert.Equal(t, tt.want, string(op), tt.method)
	}
}

func TestCorrelationID(t *testing.T) {
	assert.Equal(t, "", CorrelationID(context.Background()))
	assert.Equal(t, "abc", CorrelationID(withCorrelationID(context.Background(), "abc")))
}
