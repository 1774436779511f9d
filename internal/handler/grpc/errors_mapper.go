package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-custody/internal/app"
	"github.com/MKhiriev/go-custody/internal/custody"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/service"
	"github.com/MKhiriev/go-custody/internal/validators"
)

type errorCode struct {
	target  error
	code    codes.Code
	message string
}

// errorCodes is matched in order, the same way the HTTP transport maps
// errors to statuses.
var errorCodes = []errorCode{
	{validators.ErrNegativeAmount, codes.InvalidArgument, app.MsgNegativeAmount},
	{custody.ErrNegativeAmount, codes.InvalidArgument, app.MsgNegativeAmount},
	{custody.ErrFeeContainsHiddenValue, codes.InvalidArgument, app.MsgFeeContainsHiddenValue},
	{custody.ErrInvalidFeeResource, codes.InvalidArgument, app.MsgInvalidFeeResource},
	{service.ErrInvalidDataProvided, codes.InvalidArgument, app.MsgInvalidDataProvided},

	{custody.ErrInsufficientFee, codes.FailedPrecondition, app.MsgInsufficientFee},
	{custody.ErrInsufficientBalance, codes.FailedPrecondition, app.MsgInsufficientBalance},
	{custody.ErrInvalidWithdrawProof, codes.InvalidArgument, app.MsgInvalidWithdrawProof},
	{custody.ErrCounterOverflow, codes.ResourceExhausted, app.MsgCounterOverflow},

	{service.ErrAccessDenied, codes.PermissionDenied, app.MsgAccessDenied},
	{service.ErrTokenIsExpiredOrInvalid, codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid},
}

// statusError logs err and converts it to a gRPC status carrying the
// public message.
func statusError(ctx context.Context, err error, msg string) error {
	log := logger.FromContext(ctx)

	for _, ec := range errorCodes {
		if errors.Is(err, ec.target) {
			log.Warn().Err(err).Str("code", ec.code.String()).Msg(msg)
			return status.Error(ec.code, ec.message)
		}
	}

	log.Err(err).Msg(msg)
	return status.Error(codes.Internal, app.MsgInternalServerError)
}
