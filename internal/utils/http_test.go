package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-custody/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "balance",
			data:     models.BalanceResponse{Amount: 800},
			status:   http.StatusOK,
			wantBody: `{"amount":800}`,
		},
		{
			name:     "counter",
			data:     models.CounterResponse{Counter: 1},
			status:   http.StatusOK,
			wantBody: `{"counter":1}`,
		},
		{
			name:     "created bucket",
			data:     models.BucketPayload{Resource: models.ResourceIdentity{Address: "r1", Kind: models.ResourcePublic}, Amount: 200},
			status:   http.StatusCreated,
			wantBody: `{"resource":{"address":"r1","kind":"public"},"amount":200}`,
		},
		{
			name:     "nil",
			data:     nil,
			status:   http.StatusOK,
			wantBody: "null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, "insufficient fee", http.StatusPaymentRequired)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.JSONEq(t, `{"error":"insufficient fee"}`, w.Body.String())
}
