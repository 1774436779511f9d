package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-custody/internal/app"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/utils"
)

const hashHeader = "Hash"

// mintHashing verifies the HMAC of the raw request body carried in the Hash
// header. The body is restored for the next handler.
func (h *Handler) mintHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		signature := r.Header.Get(hashHeader)
		if signature == "" {
			log.Error().Msg("mint request without hash header")
			utils.WriteError(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Msg("failed to read request body")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !utils.VerifyHash(body, signature) {
			log.Error().
				Str("hash from request", signature).
				Str("hashed body", utils.HashHex(body)).
				Msg("hashes are not equal")
			utils.WriteError(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		log.Debug().Str("hash", signature).Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
