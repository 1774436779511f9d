package vault

import (
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/go-custody/internal/confidential"
	"github.com/MKhiriev/go-custody/models"
)

// Vault holds resources of exactly one resource address.
//
// A Vault is not safe for concurrent use; the owning component serializes
// access to it.
type Vault struct {
	resource    models.ResourceIdentity
	amount      models.Amount
	items       map[models.ItemID]models.NonFungibleItem
	commitments []models.Commitment
}

// NewEmpty returns an empty vault for resource.
func NewEmpty(resource models.ResourceIdentity) *Vault {
	return &Vault{
		resource: resource,
		items:    make(map[models.ItemID]models.NonFungibleItem),
	}
}

// FromBucket returns a vault initialized with the contents of b, consuming b.
func FromBucket(b *Bucket) (*Vault, error) {
	if err := b.usable(); err != nil {
		return nil, err
	}
	v := NewEmpty(b.resource)
	if err := v.Deposit(b); err != nil {
		return nil, err
	}
	return v, nil
}

// Resource returns the identity of the held resource.
func (v *Vault) Resource() models.ResourceIdentity {
	return v.resource
}

// Balance returns the visible balance: the amount for plain resources, the
// number of items for non-fungible ones and the revealed amount for
// confidential ones.
func (v *Vault) Balance() models.Amount {
	if v.resource.Kind == models.ResourceNonFungible {
		return models.Amount(len(v.items))
	}
	return v.amount
}

// Items returns the held items ordered by id.
func (v *Vault) Items() []models.NonFungibleItem {
	return sortedItems(v.items)
}

// HasItem reports whether the item with id is held.
func (v *Vault) HasItem(id models.ItemID) bool {
	_, ok := v.items[id]
	return ok
}

// Commitments returns a copy of the held commitments.
func (v *Vault) Commitments() []models.Commitment {
	return slices.Clone(v.commitments)
}

// ContainsConfidentialFunds reports whether any held value is hidden.
func (v *Vault) ContainsConfidentialFunds() bool {
	return len(v.commitments) > 0
}

// CanDeposit reports whether Deposit(b) would succeed, without consuming b.
func (v *Vault) CanDeposit(b *Bucket) error {
	if err := b.usable(); err != nil {
		return err
	}
	if !v.resource.SameResource(b.resource) {
		return fmt.Errorf("%w: vault holds %s, bucket carries %s", ErrResourceMismatch, v.resource.Address, b.resource.Address)
	}
	if err := checkShape(v.resource.Kind, b.amount, len(b.items), len(b.commitments)); err != nil {
		return err
	}
	if _, ok := v.amount.CheckedAdd(b.amount); !ok {
		return ErrAmountOverflow
	}
	for id := range b.items {
		if _, ok := v.items[id]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateItem, id)
		}
	}
	return nil
}

// Deposit moves the contents of b into the vault and consumes b.
func (v *Vault) Deposit(b *Bucket) error {
	if err := v.CanDeposit(b); err != nil {
		return err
	}

	v.amount += b.amount
	maps.Copy(v.items, b.items)
	v.commitments = append(v.commitments, b.commitments...)

	b.consumed = true
	b.amount = 0
	b.items = nil
	b.commitments = nil
	return nil
}

// CanWithdraw reports whether Withdraw(amount) would succeed.
func (v *Vault) CanWithdraw(amount models.Amount) error {
	if v.resource.Kind != models.ResourcePublic {
		return fmt.Errorf("%w: %s", ErrWrongResourceKind, v.resource.Kind)
	}
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if amount > v.amount {
		return fmt.Errorf("%w: requested %d, available %d", ErrInsufficientBalance, amount, v.amount)
	}
	return nil
}

// Withdraw removes amount units of a plain resource into a new bucket.
func (v *Vault) Withdraw(amount models.Amount) (*Bucket, error) {
	if err := v.CanWithdraw(amount); err != nil {
		return nil, err
	}
	v.amount -= amount
	return &Bucket{resource: v.resource, amount: amount}, nil
}

// WithdrawConfidential spends held commitments according to proof. On
// success the vault keeps the untouched commitments plus the residual and
// the returned bucket carries the output commitment. On failure the vault is
// unchanged.
func (v *Vault) WithdrawConfidential(engine confidential.Engine, proof models.ConfidentialWithdrawProof) (*Bucket, error) {
	if v.resource.Kind != models.ResourceConfidential {
		return nil, fmt.Errorf("%w: %s", ErrWrongResourceKind, v.resource.Kind)
	}

	transfer, err := engine.Withdraw(v.commitments, proof)
	if err != nil {
		return nil, err
	}

	v.commitments = transfer.Remaining
	return &Bucket{resource: v.resource, commitments: []models.Commitment{transfer.Output}}, nil
}

// State returns a serializable copy of the vault.
func (v *Vault) State() models.VaultState {
	return models.VaultState{
		Resource:    v.resource,
		Amount:      v.amount,
		Items:       v.Items(),
		Commitments: v.Commitments(),
	}
}

// Restore rebuilds a vault from a state produced by [Vault.State].
func Restore(state models.VaultState) (*Vault, error) {
	if !state.Resource.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown resource kind %q", ErrInvalidState, state.Resource.Kind)
	}
	if state.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidState, ErrNegativeAmount)
	}
	if err := checkShape(state.Resource.Kind, state.Amount, len(state.Items), len(state.Commitments)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	v := NewEmpty(state.Resource)
	v.amount = state.Amount
	for _, it := range state.Items {
		if _, ok := v.items[it.ID]; ok {
			return nil, fmt.Errorf("%w: %w: %d", ErrInvalidState, ErrDuplicateItem, it.ID)
		}
		v.items[it.ID] = it
	}
	v.commitments = slices.Clone(state.Commitments)
	return v, nil
}
