package utils

import (
	"context"

	"github.com/MKhiriev/go-custody/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	RoleCtxKey    = contextKey("role")
	TraceIDCtxKey = contextKey("traceID")
)

// WithRole returns a copy of ctx carrying the caller role.
func WithRole(ctx context.Context, role models.Role) context.Context {
	return context.WithValue(ctx, RoleCtxKey, role)
}

// GetRoleFromContext returns the caller role. Callers without a role are
// anonymous.
func GetRoleFromContext(ctx context.Context) models.Role {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	if !ok {
		return models.RoleAnonymous
	}
	return role
}

// WithTraceID returns a copy of ctx carrying the request trace id.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
