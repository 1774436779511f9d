package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-custody/internal/validators"
	"github.com/MKhiriev/go-custody/models"
)

// CustodyValidationService rejects malformed requests before they reach the
// component.
type CustodyValidationService struct {
	inner     CustodyService
	validator validators.Validator
}

func NewCustodyValidationService() CustodyServiceWrapper {
	return &CustodyValidationService{
		validator: validators.NewCustodyValidator(),
	}
}

func (v *CustodyValidationService) Wrap(inner CustodyService) CustodyService {
	v.inner = inner
	return v
}

func (v *CustodyValidationService) validate(ctx context.Context, req any) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func (v *CustodyValidationService) Withdraw(ctx context.Context, req models.WithdrawRequest) (models.BucketPayload, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.BucketPayload{}, err
	}
	return v.inner.Withdraw(ctx, req)
}

func (v *CustodyValidationService) WithdrawConfidential(ctx context.Context, req models.WithdrawConfidentialRequest) (models.BucketPayload, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.BucketPayload{}, err
	}
	return v.inner.WithdrawConfidential(ctx, req)
}

func (v *CustodyValidationService) GetBalance(ctx context.Context) (models.Amount, error) {
	return v.inner.GetBalance(ctx)
}

func (v *CustodyValidationService) FeeBalance(ctx context.Context) (models.Amount, error) {
	return v.inner.FeeBalance(ctx)
}

func (v *CustodyValidationService) Counter(ctx context.Context) (uint32, error) {
	return v.inner.Counter(ctx)
}

func (v *CustodyValidationService) Increase(ctx context.Context) (uint32, error) {
	return v.inner.Increase(ctx)
}

func (v *CustodyValidationService) MintFungible(ctx context.Context, req models.MintFungibleRequest) error {
	if err := v.validate(ctx, req); err != nil {
		return err
	}
	return v.inner.MintFungible(ctx, req)
}

func (v *CustodyValidationService) MintNonFungible(ctx context.Context, req models.MintNonFungibleRequest) error {
	if err := v.validate(ctx, req); err != nil {
		return err
	}
	return v.inner.MintNonFungible(ctx, req)
}

func (v *CustodyValidationService) MintConfidential(ctx context.Context, req models.MintConfidentialRequest) error {
	if err := v.validate(ctx, req); err != nil {
		return err
	}
	return v.inner.MintConfidential(ctx, req)
}

func (v *CustodyValidationService) Resources(ctx context.Context) (models.ComponentResources, error) {
	return v.inner.Resources(ctx)
}

func (v *CustodyValidationService) Journal(ctx context.Context, filter models.JournalFilter) ([]models.JournalEntry, error) {
	if err := v.validate(ctx, filter); err != nil {
		return nil, err
	}
	return v.inner.Journal(ctx, filter)
}

func (v *CustodyValidationService) Persist(ctx context.Context) error {
	return v.inner.Persist(ctx)
}
