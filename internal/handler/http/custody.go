package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-custody/internal/app"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/utils"
	"github.com/MKhiriev/go-custody/models"
)

func (h *Handler) resources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.services.CustodyService.Resources(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "error listing resources")
		return
	}

	utils.WriteJSON(w, resources, http.StatusOK)
}

func (h *Handler) withdraw(w http.ResponseWriter, r *http.Request) {
	var req models.WithdrawRequest
	if !decodeBody(w, r, &req) {
		return
	}

	bucket, err := h.services.CustodyService.Withdraw(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err, "withdraw rejected")
		return
	}

	utils.WriteJSON(w, bucket, http.StatusOK)
}

func (h *Handler) withdrawConfidential(w http.ResponseWriter, r *http.Request) {
	var req models.WithdrawConfidentialRequest
	if !decodeBody(w, r, &req) {
		return
	}

	bucket, err := h.services.CustodyService.WithdrawConfidential(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err, "confidential withdraw rejected")
		return
	}

	utils.WriteJSON(w, bucket, http.StatusOK)
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	amount, err := h.services.CustodyService.GetBalance(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "error reading balance")
		return
	}

	utils.WriteJSON(w, models.BalanceResponse{Amount: amount}, http.StatusOK)
}

func (h *Handler) fees(w http.ResponseWriter, r *http.Request) {
	amount, err := h.services.CustodyService.FeeBalance(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "error reading fee balance")
		return
	}

	utils.WriteJSON(w, models.BalanceResponse{Amount: amount}, http.StatusOK)
}

func (h *Handler) counter(w http.ResponseWriter, r *http.Request) {
	counter, err := h.services.CustodyService.Counter(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "error reading counter")
		return
	}

	utils.WriteJSON(w, models.CounterResponse{Counter: counter}, http.StatusOK)
}

func (h *Handler) increase(w http.ResponseWriter, r *http.Request) {
	counter, err := h.services.CustodyService.Increase(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "increase rejected")
		return
	}

	utils.WriteJSON(w, models.CounterResponse{Counter: counter}, http.StatusOK)
}

func (h *Handler) mintFungible(w http.ResponseWriter, r *http.Request) {
	var req models.MintFungibleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.services.CustodyService.MintFungible(r.Context(), req); err != nil {
		h.writeServiceError(w, r, err, "fungible mint rejected")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) mintNonFungible(w http.ResponseWriter, r *http.Request) {
	var req models.MintNonFungibleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.services.CustodyService.MintNonFungible(r.Context(), req); err != nil {
		h.writeServiceError(w, r, err, "non-fungible mint rejected")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) mintConfidential(w http.ResponseWriter, r *http.Request) {
	var req models.MintConfidentialRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.services.CustodyService.MintConfidential(r.Context(), req); err != nil {
		h.writeServiceError(w, r, err, "confidential mint rejected")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) journal(w http.ResponseWriter, r *http.Request) {
	filter, err := parseJournalFilter(r)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid journal query")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	entries, err := h.services.CustodyService.Journal(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, r, err, "error listing journal")
		return
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

// parseJournalFilter reads the optional operation, since (RFC 3339) and
// limit query parameters.
func parseJournalFilter(r *http.Request) (models.JournalFilter, error) {
	query := r.URL.Query()
	filter := models.JournalFilter{Operation: models.Operation(query.Get("operation"))}

	if since := query.Get("since"); since != "" {
		t, err := time.Parse(time.RFC3339, since)
		if err != nil {
			return models.JournalFilter{}, fmt.Errorf("parse since: %w", err)
		}
		filter.Since = t
	}

	if limit := query.Get("limit"); limit != "" {
		n, err := strconv.ParseUint(limit, 10, 64)
		if err != nil {
			return models.JournalFilter{}, fmt.Errorf("parse limit: %w", err)
		}
		filter.Limit = n
	}

	return filter, nil
}

// decodeBody decodes the JSON body into dst. On failure it writes a 400
// and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}
