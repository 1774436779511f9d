package registry

import "errors"

var (
	ErrResourceNotFound  = errors.New("resource not found")
	ErrKindMismatch      = errors.New("request does not match resource kind")
	ErrUnknownKind       = errors.New("unknown resource kind")
	ErrDuplicateItemID   = errors.New("item id already exists in resource")
	ErrInvalidStatement  = errors.New("invalid confidential statement")
	ErrSupplyOverflow    = errors.New("total supply overflows")
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrInvalidRegistry   = errors.New("invalid registry state")
	ErrDuplicateResource = errors.New("resource address already registered")
)
