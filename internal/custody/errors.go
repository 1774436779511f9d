package custody

import "errors"

var (
	ErrConstruction           = errors.New("component construction failed")
	ErrInsufficientFee        = errors.New("insufficient fee")
	ErrFeeContainsHiddenValue = errors.New("fee bucket contains confidential value")
	ErrInvalidFeeResource     = errors.New("fee must be paid in the fee resource")
	ErrInsufficientBalance    = errors.New("insufficient balance")
	ErrInvalidWithdrawProof   = errors.New("invalid withdraw proof")
	ErrDuplicateItemID        = errors.New("duplicate item id")
	ErrInvalidStatement       = errors.New("invalid confidential statement")
	ErrNegativeAmount         = errors.New("amount must not be negative")
	ErrCounterOverflow        = errors.New("counter overflow")
	ErrMintRejected           = errors.New("mint rejected by registry")
	ErrInvalidState           = errors.New("invalid component state")
)
