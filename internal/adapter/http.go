package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-custody/internal/config"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/utils"
	"github.com/MKhiriev/go-custody/models"
)

// hashHeader carries the hex HMAC of a mint request body.
const hashHeader = "Hash"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises the base URL from adapterCfg.HTTPAddress and
// initialises the shared HMAC hasher pool used to sign mint bodies.
//
// Returns ErrInvalidAddress if the address is empty or cannot be parsed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	utils.InitHasherPool(appCfg.HashKey)

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// LoginOwner POSTs the secret to /api/auth/owner and stores the bearer token
// from the Authorization response header.
func (h *httpServerAdapter) LoginOwner(ctx context.Context, req models.OwnerLoginRequest) (models.Token, error) {
	var token models.Token

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&token).
		Post("/api/auth/owner")
	if err != nil {
		return models.Token{}, fmt.Errorf("owner login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	signed, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("owner login parse bearer token: %w", err)
	}

	h.SetToken(signed)
	token.SignedString = signed
	h.logger.Debug().Str("role", string(token.Role)).Msg("owner token stored")
	return token, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var version models.VersionResponse

	resp, err := h.client.R().SetContext(ctx).SetResult(&version).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return version.Version, nil
}

func (h *httpServerAdapter) Resources(ctx context.Context) (models.ComponentResources, error) {
	var resources models.ComponentResources

	resp, err := h.authedRequest(ctx).SetResult(&resources).Get("/api/custody/resources")
	if err != nil {
		return models.ComponentResources{}, fmt.Errorf("resources request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ComponentResources{}, err
	}

	return resources, nil
}

func (h *httpServerAdapter) Withdraw(ctx context.Context, req models.WithdrawRequest) (models.BucketPayload, error) {
	return h.withdraw(ctx, "/api/custody/withdraw", req)
}

func (h *httpServerAdapter) WithdrawConfidential(ctx context.Context, req models.WithdrawConfidentialRequest) (models.BucketPayload, error) {
	return h.withdraw(ctx, "/api/custody/withdraw/confidential", req)
}

func (h *httpServerAdapter) withdraw(ctx context.Context, path string, body any) (models.BucketPayload, error) {
	var bucket models.BucketPayload

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&bucket).
		Post(path)
	if err != nil {
		return models.BucketPayload{}, fmt.Errorf("withdraw request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BucketPayload{}, err
	}

	return bucket, nil
}

func (h *httpServerAdapter) Balance(ctx context.Context) (models.Amount, error) {
	return h.amount(ctx, "/api/custody/balance")
}

func (h *httpServerAdapter) FeeBalance(ctx context.Context) (models.Amount, error) {
	return h.amount(ctx, "/api/custody/fees")
}

func (h *httpServerAdapter) amount(ctx context.Context, path string) (models.Amount, error) {
	var balance models.BalanceResponse

	resp, err := h.authedRequest(ctx).SetResult(&balance).Get(path)
	if err != nil {
		return 0, fmt.Errorf("balance request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return balance.Amount, nil
}

func (h *httpServerAdapter) Counter(ctx context.Context) (uint32, error) {
	var counter models.CounterResponse

	resp, err := h.authedRequest(ctx).SetResult(&counter).Get("/api/custody/counter")
	if err != nil {
		return 0, fmt.Errorf("counter request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return counter.Counter, nil
}

func (h *httpServerAdapter) Increase(ctx context.Context) (uint32, error) {
	var counter models.CounterResponse

	resp, err := h.authedRequest(ctx).SetResult(&counter).Post("/api/custody/counter/increase")
	if err != nil {
		return 0, fmt.Errorf("increase request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return counter.Counter, nil
}

func (h *httpServerAdapter) MintFungible(ctx context.Context, req models.MintFungibleRequest) error {
	return h.mint(ctx, "/api/custody/mint/fungible", req)
}

func (h *httpServerAdapter) MintNonFungible(ctx context.Context, req models.MintNonFungibleRequest) error {
	return h.mint(ctx, "/api/custody/mint/non-fungible", req)
}

func (h *httpServerAdapter) MintConfidential(ctx context.Context, req models.MintConfidentialRequest) error {
	return h.mint(ctx, "/api/custody/mint/confidential", req)
}

// mint signs the exact body bytes it sends so the server can verify them
// before decoding.
func (h *httpServerAdapter) mint(ctx context.Context, path string, req any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode mint request: %w", err)
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(hashHeader, utils.HashHex(body)).
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("mint request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Journal(ctx context.Context, filter models.JournalFilter) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry

	req := h.authedRequest(ctx).SetResult(&entries)
	if filter.Operation != "" {
		req.SetQueryParam("operation", string(filter.Operation))
	}
	if !filter.Since.IsZero() {
		req.SetQueryParam("since", filter.Since.UTC().Format(time.RFC3339))
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10))
	}

	resp, err := req.Get("/api/custody/journal")
	if err != nil {
		return nil, fmt.Errorf("journal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
