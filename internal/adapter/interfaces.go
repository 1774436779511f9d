// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// custody server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrPaymentRequired] for 402, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-custody/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the custody
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every subsequent request.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// LoginOwner exchanges the owner secret for a token. On success the
	// token is stored via SetToken.
	LoginOwner(ctx context.Context, req models.OwnerLoginRequest) (models.Token, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)

	// Resources returns the identities of the component resources. The fee
	// resource identity is needed to build a fee bucket.
	Resources(ctx context.Context) (models.ComponentResources, error)

	Withdraw(ctx context.Context, req models.WithdrawRequest) (models.BucketPayload, error)
	WithdrawConfidential(ctx context.Context, req models.WithdrawConfidentialRequest) (models.BucketPayload, error)

	Balance(ctx context.Context) (models.Amount, error)
	FeeBalance(ctx context.Context) (models.Amount, error)
	Counter(ctx context.Context) (uint32, error)
	Increase(ctx context.Context) (uint32, error)

	// Mint calls carry an HMAC of the body computed with the client hash key.
	MintFungible(ctx context.Context, req models.MintFungibleRequest) error
	MintNonFungible(ctx context.Context, req models.MintNonFungibleRequest) error
	MintConfidential(ctx context.Context, req models.MintConfidentialRequest) error

	Journal(ctx context.Context, filter models.JournalFilter) ([]models.JournalEntry, error)
}
