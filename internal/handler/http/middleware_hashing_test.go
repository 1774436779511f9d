package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-custody/internal/utils"
)

func TestMintHashing_TableTest(t *testing.T) {
	body := []byte(`{"amount":50}`)

	tests := []struct {
		name       string
		hash       string
		wantStatus int
		wantNext   bool
	}{
		{name: "valid hash", hash: utils.HashHex(body), wantStatus: http.StatusOK, wantNext: true},
		{name: "missing header", hash: "", wantStatus: http.StatusBadRequest},
		{name: "hash of other body", hash: utils.HashHex([]byte(`{"amount":51}`)), wantStatus: http.StatusBadRequest},
		{name: "not hex", hash: "zz", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(nil, nil)

			var nextBody []byte
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				nextBody, _ = io.ReadAll(r.Body)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/custody/mint/fungible", bytes.NewReader(body))
			if tt.hash != "" {
				req.Header.Set(hashHeader, tt.hash)
			}
			rec := httptest.NewRecorder()
			h.mintHashing(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantNext {
				assert.Equal(t, body, nextBody, "body must be restored")
			}
		})
	}
}
