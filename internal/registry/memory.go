package registry

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/go-custody/internal/confidential"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/vault"
	"github.com/MKhiriev/go-custody/models"
)

// The native resource always exists and is what fees are paid in.
const (
	NativeAddress models.ResourceAddress = "resource_native"
	NativeSymbol                         = "NTV"
)

// AddressGenerator produces unique resource address suffixes.
type AddressGenerator interface {
	Generate() string
}

type record struct {
	identity    models.ResourceIdentity
	totalSupply models.Amount
	items       map[models.ItemID]struct{}
	commitments []models.Commitment
}

var _ Registry = (*MemoryRegistry)(nil)

// MemoryRegistry is an in-process [Registry]. It tracks total supply per
// resource, the universe of item ids of non-fungible resources and every
// commitment ever minted for confidential ones.
type MemoryRegistry struct {
	mu        sync.Mutex
	resources map[models.ResourceAddress]*record

	engine confidential.Engine
	ids    AddressGenerator
	logger *logger.Logger
}

// NewMemoryRegistry returns a registry that already knows the native
// resource.
func NewMemoryRegistry(engine confidential.Engine, ids AddressGenerator, logger *logger.Logger) *MemoryRegistry {
	r := &MemoryRegistry{
		resources: make(map[models.ResourceAddress]*record),
		engine:    engine,
		ids:       ids,
		logger:    logger,
	}
	r.resources[NativeAddress] = &record{
		identity: models.ResourceIdentity{
			Address: NativeAddress,
			Kind:    models.ResourcePublic,
			Symbol:  NativeSymbol,
		},
	}
	return r
}

// Native returns the identity of the native resource.
func (r *MemoryRegistry) Native() models.ResourceIdentity {
	r.mu.Lock()
	defer r.mu.Unlock()

	return cloneIdentity(r.resources[NativeAddress].identity)
}

// Resource looks up a resource by address.
func (r *MemoryRegistry) Resource(address models.ResourceAddress) (models.ResourceIdentity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.resources[address]
	if !ok {
		return models.ResourceIdentity{}, fmt.Errorf("%w: %s", ErrResourceNotFound, address)
	}
	return cloneIdentity(rec.identity), nil
}

// TotalSupply returns the amount ever minted for a resource. For
// non-fungible resources it is the number of items.
func (r *MemoryRegistry) TotalSupply(address models.ResourceAddress) (models.Amount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.resources[address]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrResourceNotFound, address)
	}
	if rec.identity.Kind == models.ResourceNonFungible {
		return models.Amount(len(rec.items)), nil
	}
	return rec.totalSupply, nil
}

func (r *MemoryRegistry) CreateResource(ctx context.Context, spec models.ResourceSpec) (models.ResourceIdentity, *vault.Bucket, error) {
	if !spec.Kind.Valid() {
		return models.ResourceIdentity{}, nil, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	identity := models.ResourceIdentity{
		Address:  models.ResourceAddress("resource_" + r.ids.Generate()),
		Kind:     spec.Kind,
		Symbol:   spec.Symbol,
		Metadata: maps.Clone(spec.Metadata),
	}
	if _, exists := r.resources[identity.Address]; exists {
		return models.ResourceIdentity{}, nil, fmt.Errorf("%w: %s", ErrDuplicateResource, identity.Address)
	}

	rec := &record{identity: identity, items: make(map[models.ItemID]struct{})}

	var req models.MintRequest
	switch spec.Kind {
	case models.ResourcePublic:
		req.Amount = spec.InitialSupply
	case models.ResourceNonFungible:
		req.Items = spec.InitialItems
	case models.ResourceConfidential:
		req.Statement = spec.InitialStatement
	}

	var bucket *vault.Bucket
	var err error
	if spec.Kind == models.ResourceConfidential && spec.InitialStatement == nil {
		bucket, err = vault.NewConfidentialBucket(identity, 0)
	} else {
		bucket, err = r.mint(rec, req)
	}
	if err != nil {
		return models.ResourceIdentity{}, nil, err
	}

	r.resources[identity.Address] = rec
	logger.FromContext(ctx).Debug().
		Str("address", string(identity.Address)).
		Str("kind", string(identity.Kind)).
		Msg("resource created")

	return cloneIdentity(identity), bucket, nil
}

func (r *MemoryRegistry) Mint(ctx context.Context, address models.ResourceAddress, req models.MintRequest) (*vault.Bucket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.resources[address]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, address)
	}
	if err := checkKind(rec.identity.Kind, req); err != nil {
		return nil, err
	}

	bucket, err := r.mint(rec, req)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug().
		Str("address", string(address)).
		Str("kind", string(rec.identity.Kind)).
		Msg("minted")
	return bucket, nil
}

func checkKind(kind models.ResourceKind, req models.MintRequest) error {
	hasAmount := req.Amount != 0
	hasItems := len(req.Items) > 0
	hasStatement := req.Statement != nil

	var ok bool
	switch kind {
	case models.ResourcePublic:
		ok = !hasItems && !hasStatement
	case models.ResourceNonFungible:
		ok = !hasAmount && !hasStatement && hasItems
	case models.ResourceConfidential:
		ok = !hasAmount && !hasItems && hasStatement
	}
	if !ok {
		return fmt.Errorf("%w: resource is %s", ErrKindMismatch, kind)
	}
	return nil
}

// mint validates req against rec and, only if everything is valid, applies
// it. Callers hold r.mu.
func (r *MemoryRegistry) mint(rec *record, req models.MintRequest) (*vault.Bucket, error) {
	switch rec.identity.Kind {
	case models.ResourcePublic:
		if req.Amount.IsNegative() {
			return nil, ErrNegativeAmount
		}
		total, ok := rec.totalSupply.CheckedAdd(req.Amount)
		if !ok {
			return nil, ErrSupplyOverflow
		}
		bucket, err := vault.NewBucket(rec.identity, req.Amount)
		if err != nil {
			return nil, err
		}
		rec.totalSupply = total
		return bucket, nil

	case models.ResourceNonFungible:
		seen := make(map[models.ItemID]struct{}, len(req.Items))
		items := make([]models.NonFungibleItem, 0, len(req.Items))
		for _, it := range req.Items {
			if _, dup := rec.items[it.ID]; dup {
				return nil, fmt.Errorf("%w: %d", ErrDuplicateItemID, it.ID)
			}
			if _, dup := seen[it.ID]; dup {
				return nil, fmt.Errorf("%w: %d", ErrDuplicateItemID, it.ID)
			}
			seen[it.ID] = struct{}{}
			items = append(items, models.NonFungibleItem{ID: it.ID, Data: slices.Clone(it.Data)})
		}
		bucket, err := vault.NewItemBucket(rec.identity, items...)
		if err != nil {
			return nil, err
		}
		maps.Copy(rec.items, seen)
		return bucket, nil

	case models.ResourceConfidential:
		commitment, err := r.engine.ValidateOutput(*req.Statement)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidStatement, err)
		}
		bucket, err := vault.NewConfidentialBucket(rec.identity, 0, commitment)
		if err != nil {
			return nil, err
		}
		rec.commitments = append(rec.commitments, commitment)
		return bucket, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, rec.identity.Kind)
}

// Snapshot returns a serializable copy of the registry.
func (r *MemoryRegistry) Snapshot() models.RegistryState {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := models.RegistryState{Resources: make([]models.ResourceRecord, 0, len(r.resources))}
	for _, rec := range r.resources {
		ids := make([]models.ItemID, 0, len(rec.items))
		for id := range rec.items {
			ids = append(ids, id)
		}
		slices.Sort(ids)

		state.Resources = append(state.Resources, models.ResourceRecord{
			Identity:    cloneIdentity(rec.identity),
			TotalSupply: rec.totalSupply,
			ItemIDs:     ids,
			Commitments: slices.Clone(rec.commitments),
		})
	}
	slices.SortFunc(state.Resources, func(a, b models.ResourceRecord) int {
		switch {
		case a.Identity.Address < b.Identity.Address:
			return -1
		case a.Identity.Address > b.Identity.Address:
			return 1
		}
		return 0
	})
	return state
}

// Restore replaces the registry contents with state. The native resource is
// recreated when state does not carry it.
func (r *MemoryRegistry) Restore(state models.RegistryState) error {
	resources := make(map[models.ResourceAddress]*record, len(state.Resources)+1)
	for _, rr := range state.Resources {
		if !rr.Identity.Kind.Valid() {
			return fmt.Errorf("%w: %s has kind %q", ErrInvalidRegistry, rr.Identity.Address, rr.Identity.Kind)
		}
		if _, dup := resources[rr.Identity.Address]; dup {
			return fmt.Errorf("%w: %w: %s", ErrInvalidRegistry, ErrDuplicateResource, rr.Identity.Address)
		}
		rec := &record{
			identity:    cloneIdentity(rr.Identity),
			totalSupply: rr.TotalSupply,
			items:       make(map[models.ItemID]struct{}, len(rr.ItemIDs)),
			commitments: slices.Clone(rr.Commitments),
		}
		for _, id := range rr.ItemIDs {
			rec.items[id] = struct{}{}
		}
		resources[rr.Identity.Address] = rec
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := resources[NativeAddress]; !ok {
		resources[NativeAddress] = r.resources[NativeAddress]
	}
	r.resources = resources
	return nil
}

func cloneIdentity(id models.ResourceIdentity) models.ResourceIdentity {
	id.Metadata = maps.Clone(id.Metadata)
	return id
}
