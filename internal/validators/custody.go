package validators

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-custody/internal/crypto"
	"github.com/MKhiriev/go-custody/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldFee       = "fee"
	FieldAmount    = "amount"
	FieldItem      = "item"
	FieldStatement = "statement"
	FieldSecret    = "secret"
	FieldOperation = "operation"
	FieldLimit     = "limit"
)

// MaxJournalLimit caps a single journal listing.
const MaxJournalLimit = 1000

var knownOperations = []models.Operation{
	models.OperationWithdraw,
	models.OperationWithdrawConfidential,
	models.OperationMintFungible,
	models.OperationMintNonFungible,
	models.OperationMintConfidential,
	models.OperationIncrease,
}

// CustodyValidator checks the shape of custody requests. It does not know
// component state: balances, fee size and proof soundness are decided by
// the component.
type CustodyValidator struct {
}

func NewCustodyValidator() Validator {
	return &CustodyValidator{}
}

func (v *CustodyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.WithdrawRequest:
		return v.validateWithdraw(value, fields...)
	case *models.WithdrawRequest:
		return v.validateWithdraw(*value, fields...)

	case models.WithdrawConfidentialRequest:
		return v.validateWithdrawConfidential(value, fields...)
	case *models.WithdrawConfidentialRequest:
		return v.validateWithdrawConfidential(*value, fields...)

	case models.MintFungibleRequest:
		return v.validateMintFungible(value, fields...)
	case models.MintNonFungibleRequest:
		return v.validateMintNonFungible(value, fields...)
	case models.MintConfidentialRequest:
		return v.validateMintConfidential(value, fields...)

	case models.OwnerLoginRequest:
		return v.validateOwnerLogin(value, fields...)

	case models.JournalFilter:
		return v.validateJournalFilter(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CustodyValidator) validateWithdraw(req models.WithdrawRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFee, FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldFee:
			if err := validateBucket(req.Fee); err != nil {
				return fmt.Errorf("fee: %w", err)
			}
		case FieldAmount:
			if req.Amount.IsNegative() {
				return ErrNegativeAmount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateWithdrawConfidential checks the fee only. The proof is judged by
// the component after the fee, so a short fee is reported before a bad proof.
func (v *CustodyValidator) validateWithdrawConfidential(req models.WithdrawConfidentialRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFee}
	}

	for _, f := range fields {
		switch f {
		case FieldFee:
			if err := validateBucket(req.Fee); err != nil {
				return fmt.Errorf("fee: %w", err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CustodyValidator) validateMintFungible(req models.MintFungibleRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldAmount:
			if req.Amount.IsNegative() {
				return ErrNegativeAmount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CustodyValidator) validateMintNonFungible(req models.MintNonFungibleRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItem}
	}

	for _, f := range fields {
		switch f {
		case FieldItem:
			if len(req.Item.Data) > 0 && !json.Valid(req.Item.Data) {
				return ErrInvalidItemData
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CustodyValidator) validateMintConfidential(req models.MintConfidentialRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatement}
	}

	for _, f := range fields {
		switch f {
		case FieldStatement:
			if len(req.Statement.RangeProof) != crypto.RangeProofSize {
				return ErrInvalidRangeProof
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CustodyValidator) validateOwnerLogin(req models.OwnerLoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSecret}
	}

	for _, f := range fields {
		switch f {
		case FieldSecret:
			if req.Secret == "" {
				return ErrEmptySecret
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CustodyValidator) validateJournalFilter(filter models.JournalFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOperation, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldOperation:
			if filter.Operation != "" && !isKnownOperation(filter.Operation) {
				return ErrUnknownOperation
			}
		case FieldLimit:
			if filter.Limit > MaxJournalLimit {
				return ErrJournalLimitTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isKnownOperation(op models.Operation) bool {
	for _, known := range knownOperations {
		if op == known {
			return true
		}
	}
	return false
}

// validateBucket checks a transport bucket. Hidden value in a fee bucket
// is left for the component, which reports it with its own error.
func validateBucket(p models.BucketPayload) error {
	if p.Resource.Address == "" {
		return ErrEmptyResource
	}
	if !p.Resource.Kind.Valid() {
		return ErrInvalidResourceKind
	}
	if p.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	switch p.Resource.Kind {
	case models.ResourcePublic:
		if len(p.Items) > 0 {
			return ErrBucketShape
		}
	case models.ResourceNonFungible:
		if p.Amount != 0 || len(p.Commitments) > 0 {
			return ErrBucketShape
		}
	case models.ResourceConfidential:
		if len(p.Items) > 0 {
			return ErrBucketShape
		}
	}

	seen := make(map[models.ItemID]struct{}, len(p.Items))
	for _, item := range p.Items {
		if _, dup := seen[item.ID]; dup {
			return ErrDuplicateItem
		}
		seen[item.ID] = struct{}{}
	}

	return nil
}
