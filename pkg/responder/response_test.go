package responder

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	resp := Text(http.StatusCreated, "Employee added successfully with ID: 1234")

	assert.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, "Employee added successfully with ID: 1234", resp.Body)
	assert.Equal(t, ContentTypeText, resp.Headers["Content-Type"])
}

func TestJSON(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		wantCode int
		wantBody string
	}{
		{
			name:     "struct",
			value:    struct{ ID string `json:"id"` }{ID: "1"},
			wantCode: http.StatusOK,
			wantBody: `{"id":"1"}`,
		},
		{
			name:     "empty slice stays an array",
			value:    []string{},
			wantCode: http.StatusOK,
			wantBody: `[]`,
		},
		{
			name:     "unserializable value",
			value:    make(chan int),
			wantCode: http.StatusInternalServerError,
			wantBody: MsgSerializationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := JSON(http.StatusOK, tt.value)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
			assert.Equal(t, tt.wantBody, resp.Body)
		})
	}
}

func TestWithHeader_DoesNotMutateOriginal(t *testing.T) {
	original := Text(http.StatusOK, "ok")
	withID := original.WithHeader("X-Correlation-ID", "abc")

	assert.Equal(t, "abc", withID.Headers["X-Correlation-ID"])
	assert.NotContains(t, original.Headers, "X-Correlation-ID")
	assert.Equal(t, ContentTypeText, withID.Headers["Content-Type"])
}

func TestAPIGateway(t *testing.T) {
	resp := JSON(http.StatusOK, map[string]string{"id": "1"}).APIGateway()

	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"id":"1"}`, resp.Body)
	assert.Equal(t, ContentTypeJSON, resp.Headers["Content-Type"])
}

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()

	Text(http.StatusNotFound, "Employee with ID 1 does not exist.").Write(rec)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Employee with ID 1 does not exist.", rec.Body.String())
	assert.Equal(t, ContentTypeText, rec.Header().Get("Content-Type"))
}
