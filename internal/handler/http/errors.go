// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidAuthorizationHeader is returned by the auth middleware when the
// "Authorization" header is present but is not of the form "Bearer <token>".
// A request without the header is served as anonymous.
var ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
