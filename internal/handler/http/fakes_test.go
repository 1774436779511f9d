package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/service"
	"github.com/MKhiriev/go-custody/models"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

type mockAuthService struct {
	loginOwnerFn func(ctx context.Context, req models.OwnerLoginRequest) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) LoginOwner(ctx context.Context, req models.OwnerLoginRequest) (models.Token, error) {
	return m.loginOwnerFn(ctx, req)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// mockCustodyService panics on any method whose fn field is nil, which
// surfaces as a 500 through middleware.Recoverer in router tests.
type mockCustodyService struct {
	withdrawFn             func(ctx context.Context, req models.WithdrawRequest) (models.BucketPayload, error)
	withdrawConfidentialFn func(ctx context.Context, req models.WithdrawConfidentialRequest) (models.BucketPayload, error)
	getBalanceFn           func(ctx context.Context) (models.Amount, error)
	feeBalanceFn           func(ctx context.Context) (models.Amount, error)
	counterFn              func(ctx context.Context) (uint32, error)
	increaseFn             func(ctx context.Context) (uint32, error)
	mintFungibleFn         func(ctx context.Context, req models.MintFungibleRequest) error
	mintNonFungibleFn      func(ctx context.Context, req models.MintNonFungibleRequest) error
	mintConfidentialFn     func(ctx context.Context, req models.MintConfidentialRequest) error
	resourcesFn            func(ctx context.Context) (models.ComponentResources, error)
	journalFn              func(ctx context.Context, filter models.JournalFilter) ([]models.JournalEntry, error)
	persistFn              func(ctx context.Context) error
}

func (m *mockCustodyService) Withdraw(ctx context.Context, req models.WithdrawRequest) (models.BucketPayload, error) {
	return m.withdrawFn(ctx, req)
}

func (m *mockCustodyService) WithdrawConfidential(ctx context.Context, req models.WithdrawConfidentialRequest) (models.BucketPayload, error) {
	return m.withdrawConfidentialFn(ctx, req)
}

func (m *mockCustodyService) GetBalance(ctx context.Context) (models.Amount, error) {
	return m.getBalanceFn(ctx)
}

func (m *mockCustodyService) FeeBalance(ctx context.Context) (models.Amount, error) {
	return m.feeBalanceFn(ctx)
}

func (m *mockCustodyService) Counter(ctx context.Context) (uint32, error) {
	return m.counterFn(ctx)
}

func (m *mockCustodyService) Increase(ctx context.Context) (uint32, error) {
	return m.increaseFn(ctx)
}

func (m *mockCustodyService) MintFungible(ctx context.Context, req models.MintFungibleRequest) error {
	return m.mintFungibleFn(ctx, req)
}

func (m *mockCustodyService) MintNonFungible(ctx context.Context, req models.MintNonFungibleRequest) error {
	return m.mintNonFungibleFn(ctx, req)
}

func (m *mockCustodyService) MintConfidential(ctx context.Context, req models.MintConfidentialRequest) error {
	return m.mintConfidentialFn(ctx, req)
}

func (m *mockCustodyService) Resources(ctx context.Context) (models.ComponentResources, error) {
	return m.resourcesFn(ctx)
}

func (m *mockCustodyService) Journal(ctx context.Context, filter models.JournalFilter) ([]models.JournalEntry, error) {
	return m.journalFn(ctx, filter)
}

func (m *mockCustodyService) Persist(ctx context.Context) error {
	return m.persistFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(custody *mockCustodyService, auth *mockAuthService) *Handler {
	if custody == nil {
		custody = &mockCustodyService{}
	}
	if auth == nil {
		auth = &mockAuthService{}
	}
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService:    auth,
			CustodyService: custody,
			AppInfoService: &mockAppInfoService{version: "test-version"},
		},
	}
}

func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// ownerAuth accepts the token "owner" and rejects everything else.
func ownerAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, s string) (models.Token, error) {
			if s != "owner" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{SignedString: s, Role: models.RoleOwner}, nil
		},
	}
}
