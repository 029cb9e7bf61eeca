package transport

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_CRUD(t *testing.T) {
	h, logs := newHandlers(t)
	srv := httptest.NewServer(NewRouter(h, time.Second, zerolog.New(logs)))
	defer srv.Close()

	do := func(method, path, body string) (*http.Response, string) {
		req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set(HeaderCorrelationID, "http-corr")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return resp, buf.String()
	}

	resp, body := do(http.MethodPost, "/employees", `{"id":"1","firstName":"Ana","lastName":"Lima","jobPosition":"QA"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Employee added successfully with ID: 1", body)
	assert.Equal(t, "http-corr", resp.Header.Get(HeaderCorrelationID))
	assert.NotEmpty(t, resp.Header.Get(HeaderLatency))

	resp, body = do(http.MethodPost, "/employees", `{"id":"1"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Employee with ID 1 already exists.", body)

	resp, body = do(http.MethodGet, "/employees/1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":"1","firstName":"Ana","lastName":"Lima","jobPosition":"QA"}`, body)

	resp, _ = do(http.MethodPut, "/employees", `{"id":"1","firstName":"Ana","lastName":"Souza","jobPosition":"QA"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = do(http.MethodGet, "/employees", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"id":"1","firstName":"Ana","lastName":"Souza","jobPosition":"QA"}]`, body)

	resp, _ = do(http.MethodDelete, "/employees/1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = do(http.MethodDelete, "/employees/1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Employee with ID 1 does not exist.", body)

	resp, body = do(http.MethodGet, "/unknown", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, MsgRouteNotFound, body)
	assert.Equal(t, "http-corr", resp.Header.Get(HeaderCorrelationID))
	assert.Contains(t, logs.String(), `"path":"/unknown"`)

	resp, body = do(http.MethodDelete, "/employees", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid input. Please provide an employeeId.", body)

	assert.Contains(t, logs.String(), "request completed")
}

func TestObservabilityMiddleware_GeneratesCorrelationID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	ObservabilityMiddleware(zerolog.Nop())(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(HeaderCorrelationID))
}

func TestStartHTTPServer_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- StartHTTPServer(ctx, "127.0.0.1:0", http.NotFoundHandler(), zerolog.Nop())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * shutdownTimeout):
		t.Fatal("servidor não encerrou")
	}
}
