package crypto

import "errors"

var (
	ErrInvalidCommitment   = errors.New("commitment is not a valid curve point")
	ErrInvalidRangeProof   = errors.New("range proof does not verify")
	ErrInvalidBalanceProof = errors.New("balance proof does not verify")
	ErrMalformedProof      = errors.New("proof has unexpected encoding")
	ErrInsufficientInputs  = errors.New("inputs do not cover the requested amount")
	ErrValueOverflow       = errors.New("sum of input values overflows")
	ErrNoInputs            = errors.New("at least one input is required")
	ErrWrongPassphrase     = errors.New("wrong passphrase or corrupted blob")
	ErrRandomness          = errors.New("failed to sample randomness")
)
