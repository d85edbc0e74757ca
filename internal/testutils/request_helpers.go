package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ensaladazo/ensaladazo-backend/internal/api/middleware"
	"github.com/ensaladazo/ensaladazo-backend/internal/utils/response"
	"github.com/stretchr/testify/require"
)

// CreateTestRequest builds a request carrying a discard logger and the given
// path values, as the mux and logging middleware would.
func CreateTestRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(middleware.WithLogger(req.Context(), logger))
}

func JSONBody(t *testing.T, v any) io.Reader {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(data)
}

// DecodeError reads the error envelope written by response.Error.
func DecodeError(t *testing.T, rr *httptest.ResponseRecorder) response.ErrorEnvelope {
	t.Helper()

	var env response.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.NotNil(t, env.Error)

	return env
}
