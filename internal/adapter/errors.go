package adapter

import "errors"

// Transport errors, one per HTTP status the server is known to return. The
// response body is appended after a colon.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrPaymentRequired     = errors.New("payment required")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")

	ErrInvalidAddress = errors.New("invalid server address")
)
