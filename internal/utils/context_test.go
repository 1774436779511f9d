// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-custody/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestRoleCtxKey(t *testing.T) {
	if RoleCtxKey.String() != "role" {
		t.Errorf("expected 'role', got '%s'", RoleCtxKey.String())
	}
}

func TestGetRoleFromContext_Owner(t *testing.T) {
	ctx := WithRole(context.Background(), models.RoleOwner)

	if role := GetRoleFromContext(ctx); role != models.RoleOwner {
		t.Errorf("expected owner role, got %q", role)
	}
}

func TestGetRoleFromContext_MissingIsAnonymous(t *testing.T) {
	if role := GetRoleFromContext(context.Background()); role != models.RoleAnonymous {
		t.Errorf("expected anonymous role, got %q", role)
	}
}

func TestGetRoleFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), RoleCtxKey, "owner")

	if role := GetRoleFromContext(ctx); role != models.RoleAnonymous {
		t.Errorf("plain string must not be accepted as a role, got %q", role)
	}
}

func TestGetRoleFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), models.RoleOwner)

	if role := GetRoleFromContext(ctx); role != models.RoleAnonymous {
		t.Errorf("expected anonymous role, got %q", role)
	}
}

func TestTraceID(t *testing.T) {
	if _, ok := GetTraceIDFromContext(context.Background()); ok {
		t.Fatal("expected no trace id in empty context")
	}

	ctx := WithTraceID(context.Background(), "abc")
	traceID, ok := GetTraceIDFromContext(ctx)
	if !ok || traceID != "abc" {
		t.Errorf("expected trace id 'abc', got %q (ok=%v)", traceID, ok)
	}
}
