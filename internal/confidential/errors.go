package confidential

import "errors"

var (
	ErrInvalidStatement     = errors.New("invalid confidential statement")
	ErrInvalidWithdrawProof = errors.New("invalid confidential withdraw proof")
)
