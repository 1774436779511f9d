package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-custody/internal/custody"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/store"
	"github.com/MKhiriev/go-custody/internal/utils"
	"github.com/MKhiriev/go-custody/internal/vault"
	"github.com/MKhiriev/go-custody/models"
)

// Snapshot names used with store.SnapshotRepository.
const (
	ComponentSnapshot = "component"
	RegistrySnapshot  = "registry"
)

// custodyService runs every call against one component under a mutex, then
// records the committed transition in the journal.
type custodyService struct {
	mu sync.Mutex

	component *custody.Component
	registry  ResourceRegistry

	journal   store.JournalRepository
	snapshots store.SnapshotRepository
	ids       IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

// NewCustodyService serves component. component must have been built on
// top of registry.
func NewCustodyService(component *custody.Component, registry ResourceRegistry, storages *store.Storages, ids IDGenerator, logger *logger.Logger) CustodyService {
	return &custodyService{
		component: component,
		registry:  registry,
		journal:   storages.JournalRepository,
		snapshots: storages.SnapshotRepository,
		ids:       ids,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *custodyService) Withdraw(ctx context.Context, req models.WithdrawRequest) (models.BucketPayload, error) {
	fee, err := vault.FromPayload(req.Fee)
	if err != nil {
		return models.BucketPayload{}, fmt.Errorf("%w: fee bucket: %w", ErrInvalidDataProvided, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.component.Withdraw(fee, req.Amount)
	if err != nil {
		return models.BucketPayload{}, err
	}

	s.record(ctx, models.JournalEntry{
		Operation: models.OperationWithdraw,
		Resource:  out.Resource().Address,
		Amount:    req.Amount,
		Detail:    "fee " + strconv.FormatInt(int64(req.Fee.Amount), 10),
	})

	return out.Payload(), nil
}

func (s *custodyService) WithdrawConfidential(ctx context.Context, req models.WithdrawConfidentialRequest) (models.BucketPayload, error) {
	fee, err := vault.FromPayload(req.Fee)
	if err != nil {
		return models.BucketPayload{}, fmt.Errorf("%w: fee bucket: %w", ErrInvalidDataProvided, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.component.WithdrawConfidential(fee, req.Proof)
	if err != nil {
		return models.BucketPayload{}, err
	}

	s.record(ctx, models.JournalEntry{
		Operation: models.OperationWithdrawConfidential,
		Resource:  out.Resource().Address,
		Detail:    req.Proof.Output.Commitment.String(),
	})

	return out.Payload(), nil
}

func (s *custodyService) GetBalance(ctx context.Context) (models.Amount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.component.GetBalance(), nil
}

func (s *custodyService) FeeBalance(ctx context.Context) (models.Amount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.component.FeeBalance(), nil
}

func (s *custodyService) Counter(ctx context.Context) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.component.Counter(), nil
}

func (s *custodyService) Increase(ctx context.Context) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.component.Increase(); err != nil {
		return 0, err
	}

	s.record(ctx, models.JournalEntry{Operation: models.OperationIncrease})

	return s.component.Counter(), nil
}

func (s *custodyService) MintFungible(ctx context.Context, req models.MintFungibleRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.component.MintFungible(ctx, req.Amount); err != nil {
		return err
	}

	s.record(ctx, models.JournalEntry{
		Operation: models.OperationMintFungible,
		Resource:  s.component.Resources().Supply.Address,
		Amount:    req.Amount,
	})

	return nil
}

func (s *custodyService) MintNonFungible(ctx context.Context, req models.MintNonFungibleRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(req.Item.Data) == 0 {
		req.Item.Data = models.DefaultItemData
	}
	if err := s.component.MintNonFungible(ctx, req.Item); err != nil {
		return err
	}

	s.record(ctx, models.JournalEntry{
		Operation: models.OperationMintNonFungible,
		Resource:  s.component.Resources().NonFungible.Address,
		Amount:    1,
		Detail:    "item " + strconv.FormatUint(uint64(req.Item.ID), 10),
	})

	return nil
}

func (s *custodyService) MintConfidential(ctx context.Context, req models.MintConfidentialRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.component.MintConfidential(ctx, req.Statement); err != nil {
		return err
	}

	s.record(ctx, models.JournalEntry{
		Operation: models.OperationMintConfidential,
		Resource:  s.component.Resources().Confidential.Address,
		Detail:    req.Statement.Commitment.String(),
	})

	return nil
}

func (s *custodyService) Resources(ctx context.Context) (models.ComponentResources, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.component.Resources(), nil
}

func (s *custodyService) Journal(ctx context.Context, filter models.JournalFilter) ([]models.JournalEntry, error) {
	entries, err := s.journal.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}

	return entries, nil
}

// Persist snapshots the component and the registry under one lock so both
// reflect the same point in time.
func (s *custodyService) Persist(ctx context.Context) error {
	s.mu.Lock()
	componentState := s.component.State()
	registryState := s.registry.Snapshot()
	s.mu.Unlock()

	return saveSnapshots(ctx, s.snapshots, componentState, registryState)
}

// record appends a journal entry for a transition that has already been
// committed. Journal failures are logged and never undo the transition.
func (s *custodyService) record(ctx context.Context, entry models.JournalEntry) {
	entry.ID = s.ids.Generate()
	entry.Counter = s.component.Counter()
	entry.CreatedAt = s.now().UTC()
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		entry.TraceID = traceID
	}

	if err := s.journal.Append(ctx, entry); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("operation", string(entry.Operation)).
			Str("id", entry.ID).
			Msg("failed to record journal entry")
	}
}

func saveSnapshots(ctx context.Context, snapshots store.SnapshotRepository, component models.ComponentState, registry models.RegistryState) error {
	componentBlob, err := json.Marshal(component)
	if err != nil {
		return fmt.Errorf("%w: marshal component: %w", ErrPersistFailed, err)
	}
	registryBlob, err := json.Marshal(registry)
	if err != nil {
		return fmt.Errorf("%w: marshal registry: %w", ErrPersistFailed, err)
	}

	if err := snapshots.Save(ctx, RegistrySnapshot, registryBlob); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}
	if err := snapshots.Save(ctx, ComponentSnapshot, componentBlob); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}

	return nil
}
