package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-custody/internal/adapter"
	"github.com/MKhiriev/go-custody/internal/app"
	"github.com/MKhiriev/go-custody/internal/crypto"
	"github.com/MKhiriev/go-custody/internal/custody"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/mock"
	"github.com/MKhiriev/go-custody/internal/service"
	"github.com/MKhiriev/go-custody/models"
)

var testResources = models.ComponentResources{
	Supply:       models.ResourceIdentity{Address: "res_supply", Kind: models.ResourcePublic},
	Fee:          models.ResourceIdentity{Address: "res_native", Kind: models.ResourcePublic},
	NonFungible:  models.ResourceIdentity{Address: "res_items", Kind: models.ResourceNonFungible},
	Confidential: models.ResourceIdentity{Address: "res_hidden", Kind: models.ResourceConfidential},
}

type clientFixture struct {
	svc     service.ClientCustodyService
	adapter *mock.MockServerAdapter
	wallet  *mock.MockClientWalletService
}

func newClientFixture(t *testing.T) *clientFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &clientFixture{
		adapter: mock.NewMockServerAdapter(ctrl),
		wallet:  mock.NewMockClientWalletService(ctrl),
	}
	f.svc = service.NewClientCustodyService(f.adapter, f.wallet, logger.Nop())
	return f
}

func serverError(status error, msg string) error {
	return fmt.Errorf("%w: %s", status, msg)
}

// ── Withdraw ─────────────────────────────────────────────────────────────────

func TestClientCustody_Withdraw_PaysFeeInFeeResource(t *testing.T) {
	f := newClientFixture(t)
	ctx := context.Background()
	out := models.BucketPayload{Resource: testResources.Supply, Amount: 30}

	f.adapter.EXPECT().Resources(ctx).Return(testResources, nil).Times(1)
	f.adapter.EXPECT().Withdraw(ctx, models.WithdrawRequest{
		Fee:    models.BucketPayload{Resource: testResources.Fee, Amount: custody.Fee},
		Amount: 30,
	}).Return(out, nil).Times(2)

	for range 2 {
		got, err := f.svc.Withdraw(ctx, 30)
		require.NoError(t, err)
		assert.Equal(t, out, got)
	}
}

func TestClientCustody_Withdraw_Negative(t *testing.T) {
	f := newClientFixture(t)

	_, err := f.svc.Withdraw(context.Background(), -1)
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
	assert.ErrorIs(t, err, custody.ErrNegativeAmount)
}

func TestClientCustody_Withdraw_MapsServerErrors(t *testing.T) {
	tests := []struct {
		name      string
		serverErr error
		want      error
	}{
		{name: "insufficient fee", serverErr: serverError(adapter.ErrPaymentRequired, app.MsgInsufficientFee), want: custody.ErrInsufficientFee},
		{name: "insufficient balance", serverErr: serverError(adapter.ErrUnprocessable, app.MsgInsufficientBalance), want: custody.ErrInsufficientBalance},
		{name: "hidden fee", serverErr: serverError(adapter.ErrBadRequest, app.MsgFeeContainsHiddenValue), want: custody.ErrFeeContainsHiddenValue},
		{name: "unknown message", serverErr: serverError(adapter.ErrBadRequest, "something else"), want: adapter.ErrBadRequest},
		{name: "internal", serverErr: serverError(adapter.ErrInternalServerError, app.MsgInternalServerError), want: adapter.ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newClientFixture(t)
			f.adapter.EXPECT().Resources(gomock.Any()).Return(testResources, nil)
			f.adapter.EXPECT().Withdraw(gomock.Any(), gomock.Any()).Return(models.BucketPayload{}, tt.serverErr)

			_, err := f.svc.Withdraw(context.Background(), 5)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, tt.serverErr)
		})
	}
}

func TestClientCustody_Withdraw_ResourcesUnavailable(t *testing.T) {
	f := newClientFixture(t)
	f.adapter.EXPECT().Resources(gomock.Any()).Return(models.ComponentResources{}, adapter.ErrInvalidAddress)

	_, err := f.svc.Withdraw(context.Background(), 5)
	assert.ErrorIs(t, err, adapter.ErrInvalidAddress)
}

// ── WithdrawConfidential ─────────────────────────────────────────────────────

func TestClientCustody_WithdrawConfidential(t *testing.T) {
	f := newClientFixture(t)
	ctx := context.Background()
	a, b, c := newOpening(t, 20), newOpening(t, 50), newOpening(t, 100)
	out := models.BucketPayload{Resource: testResources.Confidential}

	var sent models.WithdrawConfidentialRequest
	f.wallet.EXPECT().VaultOpenings().Return([]crypto.Opening{a, b, c})
	f.adapter.EXPECT().Resources(ctx).Return(testResources, nil)
	f.adapter.EXPECT().WithdrawConfidential(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.WithdrawConfidentialRequest) (models.BucketPayload, error) {
			sent = req
			return out, nil
		})
	f.wallet.EXPECT().ApplyWithdraw(ctx, []models.Commitment{a.Commitment(), b.Commitment()}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []models.Commitment, openings crypto.WithdrawOpenings) error {
			assert.Equal(t, uint64(60), openings.Output.Value)
			assert.Equal(t, uint64(10), openings.Residual.Value)
			return nil
		})

	got, err := f.svc.WithdrawConfidential(ctx, 60)
	require.NoError(t, err)
	assert.Equal(t, out, got)
	assert.Equal(t, custody.Fee, sent.Fee.Amount)
	require.NoError(t, crypto.NewProofVerifier().VerifyBalance(
		sent.Proof.Inputs,
		[]models.Commitment{sent.Proof.Output.Commitment, sent.Proof.Residual.Commitment},
		sent.Proof.BalanceProof,
	))
}

func TestClientCustody_WithdrawConfidential_NotEnoughOpenings(t *testing.T) {
	f := newClientFixture(t)
	f.wallet.EXPECT().VaultOpenings().Return([]crypto.Opening{newOpening(t, 5)})

	_, err := f.svc.WithdrawConfidential(context.Background(), 6)
	assert.ErrorIs(t, err, service.ErrInsufficientConfidentialFunds)
}

func TestClientCustody_WithdrawConfidential_Rejected(t *testing.T) {
	f := newClientFixture(t)
	f.wallet.EXPECT().VaultOpenings().Return([]crypto.Opening{newOpening(t, 5)})
	f.adapter.EXPECT().Resources(gomock.Any()).Return(testResources, nil)
	f.adapter.EXPECT().WithdrawConfidential(gomock.Any(), gomock.Any()).
		Return(models.BucketPayload{}, serverError(adapter.ErrUnprocessable, app.MsgInvalidWithdrawProof))

	_, err := f.svc.WithdrawConfidential(context.Background(), 5)
	assert.ErrorIs(t, err, custody.ErrInvalidWithdrawProof)
}

func TestClientCustody_WithdrawConfidential_WalletStale(t *testing.T) {
	f := newClientFixture(t)
	out := models.BucketPayload{Resource: testResources.Confidential}
	f.wallet.EXPECT().VaultOpenings().Return([]crypto.Opening{newOpening(t, 5)})
	f.adapter.EXPECT().Resources(gomock.Any()).Return(testResources, nil)
	f.adapter.EXPECT().WithdrawConfidential(gomock.Any(), gomock.Any()).Return(out, nil)
	f.wallet.EXPECT().ApplyWithdraw(gomock.Any(), gomock.Any(), gomock.Any()).Return(service.ErrWalletLocked)

	got, err := f.svc.WithdrawConfidential(context.Background(), 5)
	assert.ErrorIs(t, err, service.ErrWalletLocked)
	assert.Equal(t, out, got, "server output is still returned")
}

// ── mints ────────────────────────────────────────────────────────────────────

func TestClientCustody_Mints(t *testing.T) {
	f := newClientFixture(t)
	ctx := context.Background()
	item := models.NonFungibleItem{ID: 7}

	f.adapter.EXPECT().MintFungible(ctx, models.MintFungibleRequest{Amount: 50}).Return(nil)
	f.adapter.EXPECT().MintNonFungible(ctx, models.MintNonFungibleRequest{Item: item}).
		Return(serverError(adapter.ErrConflict, app.MsgDuplicateItemID))

	require.NoError(t, f.svc.MintFungible(ctx, 50))
	assert.ErrorIs(t, f.svc.MintNonFungible(ctx, item), custody.ErrDuplicateItemID)
	assert.ErrorIs(t, f.svc.MintFungible(ctx, -5), service.ErrInvalidDataProvided)
}

func TestClientCustody_MintConfidential_TracksOpening(t *testing.T) {
	f := newClientFixture(t)
	ctx := context.Background()

	var minted models.ConfidentialOutputStatement
	f.adapter.EXPECT().MintConfidential(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.MintConfidentialRequest) error {
			minted = req.Statement
			return nil
		})
	f.wallet.EXPECT().TrackVault(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, openings ...crypto.Opening) error {
			require.Len(t, openings, 1)
			assert.Equal(t, uint64(42), openings[0].Value)
			assert.Equal(t, minted.Commitment, openings[0].Commitment())
			return nil
		})

	commitment, err := f.svc.MintConfidential(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, minted.Commitment, commitment)
}

func TestClientCustody_MintConfidential_ServerRejects(t *testing.T) {
	f := newClientFixture(t)
	f.adapter.EXPECT().MintConfidential(gomock.Any(), gomock.Any()).
		Return(serverError(adapter.ErrBadRequest, app.MsgIntegrityCheckFailed))

	_, err := f.svc.MintConfidential(context.Background(), 1)
	assert.ErrorIs(t, err, service.ErrIntegrityCheckFailed)
}

// ── reads ────────────────────────────────────────────────────────────────────

func TestClientCustody_Overview(t *testing.T) {
	f := newClientFixture(t)
	ctx := context.Background()
	f.adapter.EXPECT().Resources(ctx).Return(testResources, nil)
	f.adapter.EXPECT().Balance(ctx).Return(models.Amount(900), nil)
	f.adapter.EXPECT().FeeBalance(ctx).Return(models.Amount(20), nil)
	f.adapter.EXPECT().Counter(ctx).Return(uint32(2), nil)

	got, err := f.svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.CustodyOverview{Resources: testResources, Balance: 900, Fees: 20, Counter: 2}, got)
}

func TestClientCustody_Overview_Forbidden(t *testing.T) {
	f := newClientFixture(t)
	f.adapter.EXPECT().Resources(gomock.Any()).Return(testResources, nil)
	f.adapter.EXPECT().Balance(gomock.Any()).Return(models.Amount(0), serverError(adapter.ErrForbidden, app.MsgAccessDenied))

	_, err := f.svc.Overview(context.Background())
	assert.ErrorIs(t, err, service.ErrAccessDenied)
}

func TestClientCustody_IncreaseAndJournal(t *testing.T) {
	f := newClientFixture(t)
	ctx := context.Background()
	filter := models.JournalFilter{Operation: models.OperationWithdraw, Limit: 5}
	entries := []models.JournalEntry{{ID: "j1", Operation: models.OperationWithdraw}}

	f.adapter.EXPECT().Increase(ctx).Return(uint32(0), serverError(adapter.ErrConflict, app.MsgCounterOverflow))
	f.adapter.EXPECT().Journal(ctx, filter).Return(entries, nil)

	_, err := f.svc.Increase(ctx)
	assert.ErrorIs(t, err, custody.ErrCounterOverflow)

	got, err := f.svc.Journal(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestClientAuth_LoginOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	auth := service.NewClientAuthService(serverAdapter, logger.Nop())
	ctx := context.Background()

	_, err := auth.LoginOwner(ctx, "")
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	serverAdapter.EXPECT().LoginOwner(ctx, models.OwnerLoginRequest{Secret: "bad"}).
		Return(models.Token{}, serverError(adapter.ErrUnauthorized, app.MsgWrongOwnerSecret))
	_, err = auth.LoginOwner(ctx, "bad")
	assert.ErrorIs(t, err, service.ErrOwnerLoginOnServer)
	assert.ErrorIs(t, err, service.ErrWrongOwnerSecret)

	want := models.Token{SignedString: "jwt", Role: models.RoleOwner}
	serverAdapter.EXPECT().LoginOwner(ctx, models.OwnerLoginRequest{Secret: "good"}).Return(want, nil)
	got, err := auth.LoginOwner(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientAuth_NetworkError(t *testing.T) {
	serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	netErr := errors.New("dial tcp: connection refused")
	serverAdapter.EXPECT().LoginOwner(gomock.Any(), gomock.Any()).Return(models.Token{}, netErr)

	_, err := service.NewClientAuthService(serverAdapter, logger.Nop()).LoginOwner(context.Background(), "secret")
	assert.ErrorIs(t, err, netErr)
}
