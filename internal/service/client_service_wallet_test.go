package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-custody/internal/crypto"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/mock"
	"github.com/MKhiriev/go-custody/internal/service"
	"github.com/MKhiriev/go-custody/internal/store"
	"github.com/MKhiriev/go-custody/models"
)

func newOpening(t *testing.T, value uint64) crypto.Opening {
	t.Helper()
	_, opening, err := crypto.NewOutput(value)
	require.NoError(t, err)
	return opening
}

// ── Unlock ───────────────────────────────────────────────────────────────────

func TestClientWallet_Unlock_EmptyStorage(t *testing.T) {
	wallet := service.NewClientWalletService(newMemSnapshots(), crypto.NewKeyChain(), logger.Nop())

	require.NoError(t, wallet.Unlock(context.Background(), "pass"))
	assert.Empty(t, wallet.VaultOpenings())
	assert.Empty(t, wallet.Received())
}

func TestClientWallet_Unlock_EmptyPassphrase(t *testing.T) {
	wallet := service.NewClientWalletService(newMemSnapshots(), crypto.NewKeyChain(), logger.Nop())

	err := wallet.Unlock(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestClientWallet_Unlock_WrongPassphrase(t *testing.T) {
	ctx := context.Background()
	storage := newMemSnapshots()

	wallet := service.NewClientWalletService(storage, crypto.NewKeyChain(), logger.Nop())
	require.NoError(t, wallet.Unlock(ctx, "right"))
	require.NoError(t, wallet.TrackVault(ctx, newOpening(t, 5)))

	reopened := service.NewClientWalletService(storage, crypto.NewKeyChain(), logger.Nop())
	err := reopened.Unlock(ctx, "wrong")
	assert.ErrorIs(t, err, crypto.ErrWrongPassphrase)
}

func TestClientWallet_Unlock_LoadError(t *testing.T) {
	storage := mock.NewMockSnapshotRepository(gomock.NewController(t))
	dbErr := errors.New("disk I/O error")
	storage.EXPECT().Load(gomock.Any(), service.WalletSnapshot).Return(nil, dbErr)

	wallet := service.NewClientWalletService(storage, crypto.NewKeyChain(), logger.Nop())
	assert.ErrorIs(t, wallet.Unlock(context.Background(), "pass"), dbErr)
}

// ── TrackVault / ApplyWithdraw ───────────────────────────────────────────────

func TestClientWallet_Locked(t *testing.T) {
	wallet := service.NewClientWalletService(newMemSnapshots(), crypto.NewKeyChain(), logger.Nop())

	assert.ErrorIs(t, wallet.TrackVault(context.Background(), newOpening(t, 1)), service.ErrWalletLocked)
	assert.ErrorIs(t, wallet.ApplyWithdraw(context.Background(), nil, crypto.WithdrawOpenings{}), service.ErrWalletLocked)
}

func TestClientWallet_TrackAndReopen(t *testing.T) {
	ctx := context.Background()
	storage := newMemSnapshots()
	a, b := newOpening(t, 40), newOpening(t, 60)

	wallet := service.NewClientWalletService(storage, crypto.NewKeyChain(), logger.Nop())
	require.NoError(t, wallet.Unlock(ctx, "pass"))
	require.NoError(t, wallet.TrackVault(ctx, a, b))

	reopened := service.NewClientWalletService(storage, crypto.NewKeyChain(), logger.Nop())
	require.NoError(t, reopened.Unlock(ctx, "pass"))
	assert.Equal(t, []crypto.Opening{a, b}, reopened.VaultOpenings())
}

func TestClientWallet_ApplyWithdraw(t *testing.T) {
	ctx := context.Background()
	a, b, c := newOpening(t, 10), newOpening(t, 20), newOpening(t, 30)

	wallet := service.NewClientWalletService(newMemSnapshots(), crypto.NewKeyChain(), logger.Nop())
	require.NoError(t, wallet.Unlock(ctx, "pass"))
	require.NoError(t, wallet.TrackVault(ctx, a, b, c))

	out, residual := newOpening(t, 25), newOpening(t, 5)
	err := wallet.ApplyWithdraw(ctx,
		[]models.Commitment{a.Commitment(), b.Commitment()},
		crypto.WithdrawOpenings{Output: out, Residual: residual},
	)
	require.NoError(t, err)

	assert.Equal(t, []crypto.Opening{c, residual}, wallet.VaultOpenings())
	assert.Equal(t, []crypto.Opening{out}, wallet.Received())
}

func TestClientWallet_SaveFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	storage := mock.NewMockSnapshotRepository(gomock.NewController(t))
	storage.EXPECT().Load(gomock.Any(), service.WalletSnapshot).Return(nil, store.ErrSnapshotNotFound)
	storage.EXPECT().Save(gomock.Any(), service.WalletSnapshot, gomock.Any()).Return(errors.New("read-only database"))

	wallet := service.NewClientWalletService(storage, crypto.NewKeyChain(), logger.Nop())
	require.NoError(t, wallet.Unlock(ctx, "pass"))

	err := wallet.TrackVault(ctx, newOpening(t, 3))
	require.Error(t, err)
	assert.Empty(t, wallet.VaultOpenings())
}

func TestClientWallet_SealFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	storage := mock.NewMockSnapshotRepository(ctrl)
	keyChain := mock.NewMockKeyChain(ctrl)

	storage.EXPECT().Load(gomock.Any(), service.WalletSnapshot).Return([]byte("blob"), nil)
	keyChain.EXPECT().Open([]byte("blob"), "pass", gomock.Any()).Return(nil)
	keyChain.EXPECT().Seal(gomock.Any(), "pass").Return(nil, crypto.ErrRandomness)

	wallet := service.NewClientWalletService(storage, keyChain, logger.Nop())
	require.NoError(t, wallet.Unlock(ctx, "pass"))
	assert.ErrorIs(t, wallet.TrackVault(ctx, newOpening(t, 1)), crypto.ErrRandomness)
}
