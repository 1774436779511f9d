package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyResource        = errors.New("resource address is required")
	ErrInvalidResourceKind  = errors.New("invalid resource kind")
	ErrNegativeAmount       = errors.New("amount must not be negative")
	ErrDuplicateItem        = errors.New("duplicate item in bucket")
	ErrBucketShape          = errors.New("bucket contents do not match its resource kind")
	ErrInvalidRangeProof    = errors.New("range proof has invalid length")
	ErrInvalidItemData      = errors.New("item data must be valid JSON")
	ErrEmptySecret          = errors.New("secret is required")
	ErrUnknownOperation     = errors.New("unknown journal operation")
	ErrJournalLimitTooLarge = errors.New("journal limit is too large")
)
