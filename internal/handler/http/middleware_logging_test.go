package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-custody/internal/logger"
)

func runLogged(t *testing.T, next http.Handler) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	zl := zerolog.New(&buf)

	req := httptest.NewRequest(http.MethodPost, "/api/custody/withdraw?x=1", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	h := &Handler{logger: logger.Nop()}
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestWithLogging_RecordsRequest(t *testing.T) {
	line := runLogged(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte("12345"))
	}))

	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "/api/custody/withdraw?x=1", line["uri"])
	assert.Equal(t, http.MethodPost, line["method"])
	assert.EqualValues(t, http.StatusPaymentRequired, line["status"])
	assert.EqualValues(t, 5, line["size"])
	assert.Contains(t, line, "duration")
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	line := runLogged(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	assert.EqualValues(t, http.StatusOK, line["status"])
}

func TestWithLogging_ServerErrorsAtErrorLevel(t *testing.T) {
	line := runLogged(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	assert.Equal(t, "error", line["level"])
}
