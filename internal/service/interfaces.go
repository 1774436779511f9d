package service

import (
	"context"

	"github.com/MKhiriev/go-custody/internal/registry"
	"github.com/MKhiriev/go-custody/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CustodyService is the host-side API of the custody component. Every call
// is executed against a single component instance, one at a time.
type CustodyService interface {
	// Withdraw pays the fee bucket into the fee vault and returns a bucket
	// of amount units taken from the public supply.
	Withdraw(ctx context.Context, req models.WithdrawRequest) (models.BucketPayload, error)

	// WithdrawConfidential pays the fee and moves the proof's output
	// commitment out of the confidential vault.
	WithdrawConfidential(ctx context.Context, req models.WithdrawConfidentialRequest) (models.BucketPayload, error)

	GetBalance(ctx context.Context) (models.Amount, error)
	FeeBalance(ctx context.Context) (models.Amount, error)
	Counter(ctx context.Context) (uint32, error)

	// Increase bumps the counter and returns its new value.
	Increase(ctx context.Context) (uint32, error)

	MintFungible(ctx context.Context, req models.MintFungibleRequest) error
	MintNonFungible(ctx context.Context, req models.MintNonFungibleRequest) error
	MintConfidential(ctx context.Context, req models.MintConfidentialRequest) error

	// Resources lists the identities of the component's resources. Callers
	// need the fee resource to build a fee bucket.
	Resources(ctx context.Context) (models.ComponentResources, error)

	Journal(ctx context.Context, filter models.JournalFilter) ([]models.JournalEntry, error)

	// Persist writes component and registry snapshots.
	Persist(ctx context.Context) error
}

// CustodyServiceWrapper defines middleware composition for CustodyService.
// Implementations wrap an existing CustodyService to add behavior such as
// access control or validation.
type CustodyServiceWrapper interface {
	Wrap(CustodyService) CustodyService
}

// AuthService issues and checks owner tokens.
type AuthService interface {
	LoginOwner(ctx context.Context, req models.OwnerLoginRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ResourceRegistry is the registry as seen by the host: the component only
// creates and mints through it, the host also snapshots it.
type ResourceRegistry interface {
	registry.Registry
	Native() models.ResourceIdentity
	Snapshot() models.RegistryState
	Restore(state models.RegistryState) error
}

// IDGenerator produces journal entry ids.
type IDGenerator interface {
	Generate() string
}
