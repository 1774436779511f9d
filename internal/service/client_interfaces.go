package service

import (
	"context"

	"github.com/MKhiriev/go-custody/internal/crypto"
	"github.com/MKhiriev/go-custody/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService logs the CLI in as the component owner.
type ClientAuthService interface {
	// LoginOwner exchanges secret for an owner token. The token is kept by
	// the server adapter for every following call.
	LoginOwner(ctx context.Context, secret string) (models.Token, error)
}

// ClientWalletService keeps the openings of confidential commitments. The
// wallet is sealed with a passphrase and stored in the local database.
type ClientWalletService interface {
	// Unlock loads the wallet. A wallet that was never saved starts empty.
	// Returns crypto.ErrWrongPassphrase when the blob cannot be opened.
	Unlock(ctx context.Context, passphrase string) error

	// VaultOpenings returns the openings of commitments held by the
	// component's confidential vault.
	VaultOpenings() []crypto.Opening

	// Received returns the openings of outputs withdrawn by this wallet.
	Received() []crypto.Opening

	// TrackVault records openings of commitments now held by the vault.
	TrackVault(ctx context.Context, openings ...crypto.Opening) error

	// ApplyWithdraw drops the spent vault openings, tracks the residual
	// and records the output as received.
	ApplyWithdraw(ctx context.Context, spent []models.Commitment, openings crypto.WithdrawOpenings) error
}

// ClientCustodyService drives the custody API on behalf of the CLI and the
// dashboard.
type ClientCustodyService interface {
	// Overview collects resources, balances and the counter. Owner only.
	Overview(ctx context.Context) (models.CustodyOverview, error)

	// Withdraw pays the flat fee in the fee resource and withdraws amount
	// public units.
	Withdraw(ctx context.Context, amount models.Amount) (models.BucketPayload, error)

	// WithdrawConfidential proves a withdrawal of amount from the wallet's
	// vault openings and updates the wallet once the server accepts it.
	WithdrawConfidential(ctx context.Context, amount uint64) (models.BucketPayload, error)

	MintFungible(ctx context.Context, amount models.Amount) error
	MintNonFungible(ctx context.Context, item models.NonFungibleItem) error

	// MintConfidential commits to value with a fresh blinding, mints it and
	// tracks the opening in the wallet.
	MintConfidential(ctx context.Context, value uint64) (models.Commitment, error)

	Increase(ctx context.Context) (uint32, error)
	Journal(ctx context.Context, filter models.JournalFilter) ([]models.JournalEntry, error)
}
