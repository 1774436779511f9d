package vault

import "errors"

var (
	ErrNilBucket           = errors.New("bucket is nil")
	ErrBucketConsumed      = errors.New("bucket has already been consumed")
	ErrResourceMismatch    = errors.New("bucket resource does not match vault resource")
	ErrWrongResourceKind   = errors.New("operation is not supported for this resource kind")
	ErrBucketShape         = errors.New("bucket contents do not match its resource kind")
	ErrNegativeAmount      = errors.New("amount must not be negative")
	ErrInsufficientBalance = errors.New("insufficient vault balance")
	ErrAmountOverflow      = errors.New("amount overflows vault balance")
	ErrDuplicateItem       = errors.New("item is already present")
	ErrInvalidState        = errors.New("invalid vault state")
)
