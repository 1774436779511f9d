package grpc

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-custody/internal/app"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/utils"
	"github.com/MKhiriev/go-custody/models"
)

const (
	authorizationKey = "authorization"
	traceIDKey       = "x-trace-id"
)

// withTraceID mirrors the HTTP trace id middleware: the id comes from the
// x-trace-id metadata or is generated, and is sent back as a header.
func (h *Handler) withTraceID(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	traceID := firstValue(ctx, traceIDKey)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID).Str("method", info.FullMethod)
	})
	ctx = utils.WithTraceID(l.WithContext(ctx), traceID)

	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	return next(ctx, req)
}

// auth resolves the caller role from an optional "authorization: Bearer
// <token>" metadata entry. Calls without it run as anonymous.
func (h *Handler) auth(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	header := firstValue(ctx, authorizationKey)
	if header == "" {
		return next(utils.WithRole(ctx, models.RoleAnonymous), req)
	}

	scheme, tokenString, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return nil, status.Error(codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid)
	}

	token, err := h.services.AuthService.ParseToken(ctx, strings.TrimSpace(tokenString))
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error occurred during parsing token")
		return nil, status.Error(codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid)
	}

	return next(utils.WithRole(ctx, token.Role), req)
}

func firstValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
