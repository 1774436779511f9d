package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-custody/internal/app"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/utils"
	"github.com/MKhiriev/go-custody/models"
)

// ownerLogin exchanges the owner secret for a token. The token is returned
// both in the Authorization header and in the body.
func (h *Handler) ownerLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.OwnerLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.LoginOwner(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err, "owner login failed")
		return
	}

	log.Info().Msg("owner logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, token, http.StatusOK)
}

// writeServiceError logs err and writes the mapped status and message.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, message, status)
}
