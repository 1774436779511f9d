// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math"

// Amount is a quantity of a fungible resource.
//
// Negative amounts are never valid in a vault or bucket; they are representable
// only so that malformed requests can be rejected with a typed error instead of
// silently wrapping around.
type Amount int64

// IsNegative reports whether a is below zero.
func (a Amount) IsNegative() bool {
	return a < 0
}

// CheckedAdd returns a+b and false when the sum does not fit into an Amount.
func (a Amount) CheckedAdd(b Amount) (Amount, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, false
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, false
	}
	return a + b, true
}
