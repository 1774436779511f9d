package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-custody/internal/app"
	"github.com/MKhiriev/go-custody/internal/custody"
	"github.com/MKhiriev/go-custody/internal/service"
	"github.com/MKhiriev/go-custody/internal/validators"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is matched in order: a validation failure wraps both
// service.ErrInvalidDataProvided and the precise cause, and the cause wins.
var errorStatuses = []errorStatus{
	{validators.ErrNegativeAmount, http.StatusBadRequest, app.MsgNegativeAmount},
	{custody.ErrNegativeAmount, http.StatusBadRequest, app.MsgNegativeAmount},
	{custody.ErrFeeContainsHiddenValue, http.StatusBadRequest, app.MsgFeeContainsHiddenValue},
	{custody.ErrInvalidFeeResource, http.StatusBadRequest, app.MsgInvalidFeeResource},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{custody.ErrInsufficientFee, http.StatusPaymentRequired, app.MsgInsufficientFee},

	{custody.ErrInsufficientBalance, http.StatusUnprocessableEntity, app.MsgInsufficientBalance},
	{custody.ErrInvalidWithdrawProof, http.StatusUnprocessableEntity, app.MsgInvalidWithdrawProof},
	{custody.ErrInvalidStatement, http.StatusUnprocessableEntity, app.MsgInvalidStatement},
	{custody.ErrMintRejected, http.StatusUnprocessableEntity, app.MsgMintRejected},

	{custody.ErrDuplicateItemID, http.StatusConflict, app.MsgDuplicateItemID},
	{custody.ErrCounterOverflow, http.StatusConflict, app.MsgCounterOverflow},

	{service.ErrAccessDenied, http.StatusForbidden, app.MsgAccessDenied},
	{service.ErrWrongOwnerSecret, http.StatusUnauthorized, app.MsgWrongOwnerSecret},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
}

// statusFromError returns the HTTP status and public message for err.
// Unknown errors, store failures included, are reported as 500.
func statusFromError(err error) (int, string) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			return es.status, es.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
