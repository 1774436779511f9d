package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-custody/internal/custody"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/utils"
	"github.com/MKhiriev/go-custody/models"
)

// AccessPolicy answers whether a role may call a component method.
// *custody.Component implements it.
type AccessPolicy interface {
	Permits(method string, role models.Role) bool
}

// CustodyAccessService enforces the component's access rules against the
// caller role carried in the context.
type CustodyAccessService struct {
	inner  CustodyService
	policy AccessPolicy
}

func NewCustodyAccessService(policy AccessPolicy) CustodyServiceWrapper {
	return &CustodyAccessService{policy: policy}
}

func (a *CustodyAccessService) Wrap(inner CustodyService) CustodyService {
	a.inner = inner
	return a
}

func (a *CustodyAccessService) authorize(ctx context.Context, method string) error {
	role := utils.GetRoleFromContext(ctx)
	if a.policy.Permits(method, role) {
		return nil
	}

	logger.FromContext(ctx).Warn().
		Str("method", method).
		Str("role", string(role)).
		Msg("access denied")
	return fmt.Errorf("%w: %s", ErrAccessDenied, method)
}

func (a *CustodyAccessService) Withdraw(ctx context.Context, req models.WithdrawRequest) (models.BucketPayload, error) {
	if err := a.authorize(ctx, custody.MethodWithdraw); err != nil {
		return models.BucketPayload{}, err
	}
	return a.inner.Withdraw(ctx, req)
}

func (a *CustodyAccessService) WithdrawConfidential(ctx context.Context, req models.WithdrawConfidentialRequest) (models.BucketPayload, error) {
	if err := a.authorize(ctx, custody.MethodWithdrawConfidential); err != nil {
		return models.BucketPayload{}, err
	}
	return a.inner.WithdrawConfidential(ctx, req)
}

func (a *CustodyAccessService) GetBalance(ctx context.Context) (models.Amount, error) {
	if err := a.authorize(ctx, custody.MethodGetBalance); err != nil {
		return 0, err
	}
	return a.inner.GetBalance(ctx)
}

func (a *CustodyAccessService) FeeBalance(ctx context.Context) (models.Amount, error) {
	if err := a.authorize(ctx, custody.MethodFeeBalance); err != nil {
		return 0, err
	}
	return a.inner.FeeBalance(ctx)
}

func (a *CustodyAccessService) Counter(ctx context.Context) (uint32, error) {
	if err := a.authorize(ctx, custody.MethodCounter); err != nil {
		return 0, err
	}
	return a.inner.Counter(ctx)
}

func (a *CustodyAccessService) Increase(ctx context.Context) (uint32, error) {
	if err := a.authorize(ctx, custody.MethodIncrease); err != nil {
		return 0, err
	}
	return a.inner.Increase(ctx)
}

func (a *CustodyAccessService) MintFungible(ctx context.Context, req models.MintFungibleRequest) error {
	if err := a.authorize(ctx, custody.MethodMintFungible); err != nil {
		return err
	}
	return a.inner.MintFungible(ctx, req)
}

func (a *CustodyAccessService) MintNonFungible(ctx context.Context, req models.MintNonFungibleRequest) error {
	if err := a.authorize(ctx, custody.MethodMintNonFungible); err != nil {
		return err
	}
	return a.inner.MintNonFungible(ctx, req)
}

func (a *CustodyAccessService) MintConfidential(ctx context.Context, req models.MintConfidentialRequest) error {
	if err := a.authorize(ctx, custody.MethodMintConfidential); err != nil {
		return err
	}
	return a.inner.MintConfidential(ctx, req)
}

// Resources is public metadata and carries no rule.
func (a *CustodyAccessService) Resources(ctx context.Context) (models.ComponentResources, error) {
	return a.inner.Resources(ctx)
}

func (a *CustodyAccessService) Journal(ctx context.Context, filter models.JournalFilter) ([]models.JournalEntry, error) {
	if err := a.authorize(ctx, custody.MethodJournal); err != nil {
		return nil, err
	}
	return a.inner.Journal(ctx, filter)
}

// Persist is host-internal and not reachable from transports.
func (a *CustodyAccessService) Persist(ctx context.Context) error {
	return a.inner.Persist(ctx)
}
