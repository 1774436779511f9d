// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-custody/internal/adapter"
	"github.com/MKhiriev/go-custody/internal/app"
	"github.com/MKhiriev/go-custody/internal/custody"
)

var messageErrors = map[string]error{
	app.MsgInvalidDataProvided:     ErrInvalidDataProvided,
	app.MsgWrongOwnerSecret:        ErrWrongOwnerSecret,
	app.MsgTokenIsExpiredOrInvalid: ErrTokenIsExpiredOrInvalid,
	app.MsgAccessDenied:            ErrAccessDenied,
	app.MsgIntegrityCheckFailed:    ErrIntegrityCheckFailed,
	app.MsgInsufficientFee:         custody.ErrInsufficientFee,
	app.MsgFeeContainsHiddenValue:  custody.ErrFeeContainsHiddenValue,
	app.MsgInvalidFeeResource:      custody.ErrInvalidFeeResource,
	app.MsgInsufficientBalance:     custody.ErrInsufficientBalance,
	app.MsgInvalidWithdrawProof:    custody.ErrInvalidWithdrawProof,
	app.MsgInvalidStatement:        custody.ErrInvalidStatement,
	app.MsgDuplicateItemID:         custody.ErrDuplicateItemID,
	app.MsgNegativeAmount:          custody.ErrNegativeAmount,
	app.MsgCounterOverflow:         custody.ErrCounterOverflow,
	app.MsgMintRejected:            custody.ErrMintRejected,
}

// mapAdapterError translates the adapter's transport error into the
// business error the server reported. The transport error stays in the
// chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var isTransport bool
	for _, target := range []error{
		adapter.ErrBadRequest,
		adapter.ErrUnauthorized,
		adapter.ErrPaymentRequired,
		adapter.ErrForbidden,
		adapter.ErrConflict,
		adapter.ErrUnprocessable,
	} {
		if errors.Is(err, target) {
			isTransport = true
			break
		}
	}
	if !isTransport {
		return err
	}

	if mapped, ok := messageErrors[extractBody(err)]; ok {
		return fmt.Errorf("%w: %w", mapped, err)
	}
	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
