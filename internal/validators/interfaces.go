// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks custody requests before they reach the
// component.
//
// Rules here are structural: a request that passes may still be rejected by
// the component (an unaffordable withdrawal, a duplicate item id). Failures
// wrap [ErrValidation] so callers can tell malformed input from business
// rejections.
package validators

import "context"

// Validator checks one request value. fields restricts the check to the
// named fields; when empty every field is checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
