package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrAccessDenied        = errors.New("access denied")
	ErrWrongOwnerSecret    = errors.New("wrong owner secret")

	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrSnapshotCorrupted = errors.New("stored snapshot is corrupted")
	ErrPersistFailed     = errors.New("failed to persist component state")
)

// Client-side errors.
var (
	ErrWalletLocked                  = errors.New("wallet is locked")
	ErrInsufficientConfidentialFunds = errors.New("wallet openings do not cover the amount")
	ErrOwnerLoginOnServer            = errors.New("owner login on server failed")
	ErrIntegrityCheckFailed          = errors.New("integrity check failed")
)
