package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-custody/internal/config"
	"github.com/MKhiriev/go-custody/internal/confidential"
	"github.com/MKhiriev/go-custody/internal/crypto"
	"github.com/MKhiriev/go-custody/internal/custody"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/mock"
	"github.com/MKhiriev/go-custody/internal/registry"
	"github.com/MKhiriev/go-custody/internal/service"
	"github.com/MKhiriev/go-custody/internal/store"
	"github.com/MKhiriev/go-custody/internal/utils"
	"github.com/MKhiriev/go-custody/models"
)

// memSnapshots is an in-memory store.SnapshotRepository.
type memSnapshots struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemSnapshots() *memSnapshots {
	return &memSnapshots{blobs: make(map[string][]byte)}
}

func (m *memSnapshots) Save(_ context.Context, name string, state []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[name] = append([]byte(nil), state...)
	return nil
}

func (m *memSnapshots) Load(_ context.Context, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	blob, ok := m.blobs[name]
	if !ok {
		return nil, store.ErrSnapshotNotFound
	}
	return blob, nil
}

type bootEnv struct {
	engine confidential.Engine
	reg    *registry.MemoryRegistry
}

func newBootEnv() bootEnv {
	engine := confidential.NewEngine(crypto.NewProofVerifier(), logger.Nop())
	return bootEnv{
		engine: engine,
		reg:    registry.NewMemoryRegistry(engine, utils.NewUUIDGenerator(), logger.Nop()),
	}
}

func bootParams(t *testing.T) custody.Params {
	t.Helper()
	stmt, _, err := crypto.NewOutput(1000)
	require.NoError(t, err)
	return custody.Params{
		InitialSupply:             1000,
		InitialConfidentialSupply: stmt,
		InitialItems:              []models.NonFungibleItem{{ID: 1}, {ID: 2}},
		TokenSymbol:               "CSTD",
	}
}

// ── first start ──────────────────────────────────────────────────────────────

func TestRestoreOrCreateComponent_CreatesAndStores(t *testing.T) {
	env := newBootEnv()
	snapshots := newMemSnapshots()

	component, err := service.RestoreOrCreateComponent(context.Background(), env.reg, env.engine, snapshots, bootParams(t), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, models.Amount(1000), component.GetBalance())
	assert.Equal(t, env.reg.Native(), component.Resources().Fee, "fee defaults to the native resource")
	assert.Contains(t, snapshots.blobs, service.ComponentSnapshot)
	assert.Contains(t, snapshots.blobs, service.RegistrySnapshot)
}

// ── restart ──────────────────────────────────────────────────────────────────

func TestRestoreOrCreateComponent_RestoresState(t *testing.T) {
	ctx := context.Background()
	snapshots := newMemSnapshots()

	first := newBootEnv()
	component, err := service.RestoreOrCreateComponent(ctx, first.reg, first.engine, snapshots, bootParams(t), logger.Nop())
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	journal := mock.NewMockJournalRepository(ctrl)
	journal.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.NewCustodyService(component, first.reg, &store.Storages{
		JournalRepository:  journal,
		SnapshotRepository: snapshots,
	}, utils.NewUUIDGenerator(), logger.Nop())

	fee := models.BucketPayload{Resource: first.reg.Native(), Amount: custody.Fee}
	_, err = svc.Withdraw(ctx, models.WithdrawRequest{Fee: fee, Amount: 250})
	require.NoError(t, err)
	require.NoError(t, svc.MintNonFungible(ctx, models.MintNonFungibleRequest{Item: models.NonFungibleItem{ID: 9}}))
	require.NoError(t, svc.Persist(ctx))

	second := newBootEnv()
	restored, err := service.RestoreOrCreateComponent(ctx, second.reg, second.engine, snapshots, bootParams(t), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, models.Amount(750), restored.GetBalance())
	assert.Equal(t, custody.Fee, restored.FeeBalance())
	assert.Equal(t, uint32(1), restored.Counter())
	assert.Equal(t, component.Resources(), restored.Resources())
	assert.Len(t, restored.NonFungibleItems(), 3)

	// The restored registry still knows item 9, so minting it again fails.
	err = restored.MintNonFungible(ctx, models.NonFungibleItem{ID: 9})
	assert.ErrorIs(t, err, custody.ErrDuplicateItemID)
}

// ── failures ─────────────────────────────────────────────────────────────────

func TestRestoreOrCreateComponent_CorruptedSnapshot(t *testing.T) {
	env := newBootEnv()
	snapshots := newMemSnapshots()
	snapshots.blobs[service.ComponentSnapshot] = []byte(`{"supply":`)
	snapshots.blobs[service.RegistrySnapshot] = []byte(`{"resources":[]}`)

	_, err := service.RestoreOrCreateComponent(context.Background(), env.reg, env.engine, snapshots, bootParams(t), logger.Nop())
	assert.ErrorIs(t, err, service.ErrSnapshotCorrupted)
}

func TestRestoreOrCreateComponent_MissingRegistrySnapshot(t *testing.T) {
	env := newBootEnv()
	snapshots := newMemSnapshots()
	snapshots.blobs[service.ComponentSnapshot] = []byte(`{}`)

	_, err := service.RestoreOrCreateComponent(context.Background(), env.reg, env.engine, snapshots, bootParams(t), logger.Nop())
	require.ErrorIs(t, err, service.ErrSnapshotCorrupted)
	assert.ErrorIs(t, err, store.ErrSnapshotNotFound)
}

func TestRestoreOrCreateComponent_LoadError(t *testing.T) {
	env := newBootEnv()
	snapshots := mock.NewMockSnapshotRepository(gomock.NewController(t))
	dbErr := errors.New("connection refused")
	snapshots.EXPECT().Load(gomock.Any(), service.ComponentSnapshot).Return(nil, dbErr)

	_, err := service.RestoreOrCreateComponent(context.Background(), env.reg, env.engine, snapshots, bootParams(t), logger.Nop())
	assert.ErrorIs(t, err, dbErr)
}

func TestRestoreOrCreateComponent_ConstructionFails(t *testing.T) {
	env := newBootEnv()
	params := bootParams(t)
	params.InitialSupply = -1

	_, err := service.RestoreOrCreateComponent(context.Background(), env.reg, env.engine, newMemSnapshots(), params, logger.Nop())
	assert.ErrorIs(t, err, custody.ErrConstruction)
}

// ── params from configuration ────────────────────────────────────────────────

func TestComponentParams_ConfiguredBlinding(t *testing.T) {
	blinding, err := crypto.RandomScalar()
	require.NoError(t, err)
	hexBlinding, err := blinding.MarshalText()
	require.NoError(t, err)

	params, err := service.ComponentParams(config.Component{
		TokenSymbol:              "CSTD",
		InitialSupply:            500,
		InitialItems:             []uint64{1, 2},
		ConfidentialSeedValue:    42,
		ConfidentialSeedBlinding: string(hexBlinding),
	}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, models.Amount(500), params.InitialSupply)
	assert.Equal(t, crypto.Commit(42, blinding), params.InitialConfidentialSupply.Commitment)
	require.Len(t, params.InitialItems, 2)
	assert.Equal(t, models.ItemID(2), params.InitialItems[1].ID)
	assert.JSONEq(t, string(models.DefaultItemData), string(params.InitialItems[0].Data))
	assert.NoError(t, crypto.NewProofVerifier().VerifyRange(params.InitialConfidentialSupply.Commitment, params.InitialConfidentialSupply.RangeProof))
}

func TestComponentParams_RandomBlinding(t *testing.T) {
	first, err := service.ComponentParams(config.Component{TokenSymbol: "CSTD", ConfidentialSeedValue: 7}, logger.Nop())
	require.NoError(t, err)
	second, err := service.ComponentParams(config.Component{TokenSymbol: "CSTD", ConfidentialSeedValue: 7}, logger.Nop())
	require.NoError(t, err)

	assert.NotEqual(t, first.InitialConfidentialSupply.Commitment, second.InitialConfidentialSupply.Commitment)
}

func TestComponentParams_BadBlinding(t *testing.T) {
	_, err := service.ComponentParams(config.Component{TokenSymbol: "CSTD", ConfidentialSeedBlinding: "zz"}, logger.Nop())
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}
