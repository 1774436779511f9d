package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-custody/internal/crypto"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/store"
	"github.com/MKhiriev/go-custody/models"
)

// WalletSnapshot is the name the sealed wallet is stored under.
const WalletSnapshot = "wallet"

type walletState struct {
	Vault    []crypto.Opening `json:"vault"`
	Received []crypto.Opening `json:"received"`
}

type clientWalletService struct {
	mu sync.Mutex

	storage  store.SnapshotRepository
	keyChain crypto.KeyChain
	logger   *logger.Logger

	passphrase string
	unlocked   bool
	state      walletState
}

func NewClientWalletService(storage store.SnapshotRepository, keyChain crypto.KeyChain, logger *logger.Logger) ClientWalletService {
	return &clientWalletService{storage: storage, keyChain: keyChain, logger: logger}
}

func (w *clientWalletService) Unlock(ctx context.Context, passphrase string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if passphrase == "" {
		return fmt.Errorf("%w: empty passphrase", ErrInvalidDataProvided)
	}

	var state walletState
	blob, err := w.storage.Load(ctx, WalletSnapshot)
	switch {
	case errors.Is(err, store.ErrSnapshotNotFound):
		w.logger.Info().Msg("no wallet stored yet, starting empty")
	case err != nil:
		return fmt.Errorf("load wallet: %w", err)
	default:
		if err = w.keyChain.Open(blob, passphrase, &state); err != nil {
			return fmt.Errorf("open wallet: %w", err)
		}
	}

	w.state = state
	w.passphrase = passphrase
	w.unlocked = true

	return nil
}

func (w *clientWalletService) VaultOpenings() []crypto.Opening {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.state.Vault)
}

func (w *clientWalletService) Received() []crypto.Opening {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.state.Received)
}

func (w *clientWalletService) TrackVault(ctx context.Context, openings ...crypto.Opening) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.unlocked {
		return ErrWalletLocked
	}

	next := w.state
	next.Vault = append(slices.Clone(next.Vault), openings...)
	return w.save(ctx, next)
}

func (w *clientWalletService) ApplyWithdraw(ctx context.Context, spent []models.Commitment, openings crypto.WithdrawOpenings) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.unlocked {
		return ErrWalletLocked
	}

	vault := slices.Clone(w.state.Vault)
	for _, c := range spent {
		idx := slices.IndexFunc(vault, func(o crypto.Opening) bool { return o.Commitment() == c })
		if idx >= 0 {
			vault = slices.Delete(vault, idx, idx+1)
		}
	}

	next := walletState{
		Vault:    append(vault, openings.Residual),
		Received: append(slices.Clone(w.state.Received), openings.Output),
	}
	return w.save(ctx, next)
}

// save seals next and replaces the in-memory state only after the blob is
// stored.
func (w *clientWalletService) save(ctx context.Context, next walletState) error {
	blob, err := w.keyChain.Seal(next, w.passphrase)
	if err != nil {
		return fmt.Errorf("seal wallet: %w", err)
	}
	if err = w.storage.Save(ctx, WalletSnapshot, blob); err != nil {
		return fmt.Errorf("save wallet: %w", err)
	}

	w.state = next
	return nil
}
