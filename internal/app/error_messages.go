// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the server transport and
// the client services.
//
// The server writes one of the Msg* constants into every error response
// body; the client maps the message back to the matching sentinel error so
// that callers on both sides can use errors.Is.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned for failures the caller cannot
	// resolve.
	MsgInternalServerError = "internal server error"

	// MsgWrongOwnerSecret is returned when the owner secret does not match.
	MsgWrongOwnerSecret = "wrong owner secret"

	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when the caller role may not invoke the
	// requested method.
	MsgAccessDenied = "access denied"

	// MsgIntegrityCheckFailed is returned when the HMAC of a mint body does
	// not match the Hash header.
	MsgIntegrityCheckFailed = "integrity check failed"

	MsgInsufficientFee        = "insufficient fee"
	MsgFeeContainsHiddenValue = "fee bucket contains confidential value"
	MsgInvalidFeeResource     = "fee must be paid in the fee resource"
	MsgInsufficientBalance    = "insufficient balance"
	MsgInvalidWithdrawProof   = "invalid withdraw proof"
	MsgInvalidStatement       = "invalid confidential statement"
	MsgDuplicateItemID        = "duplicate item id"
	MsgNegativeAmount         = "amount must not be negative"
	MsgCounterOverflow        = "counter overflow"
	MsgMintRejected           = "mint rejected"
)
