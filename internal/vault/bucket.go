// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault holds resources. A [Bucket] carries resources between
// parties and is consumed exactly once; a [Vault] holds resources of a single
// kind on behalf of a component.
package vault

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-custody/models"
)

// Bucket is a transient, move-only container of one resource. Depositing a
// bucket consumes it; any later use fails with [ErrBucketConsumed].
type Bucket struct {
	resource    models.ResourceIdentity
	amount      models.Amount
	items       map[models.ItemID]models.NonFungibleItem
	commitments []models.Commitment
	consumed    bool
}

// NewBucket returns a bucket holding amount units of a plain resource.
func NewBucket(resource models.ResourceIdentity, amount models.Amount) (*Bucket, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	return &Bucket{resource: resource, amount: amount}, nil
}

// NewItemBucket returns a bucket holding the given non-fungible items.
func NewItemBucket(resource models.ResourceIdentity, items ...models.NonFungibleItem) (*Bucket, error) {
	set := make(map[models.ItemID]models.NonFungibleItem, len(items))
	for _, it := range items {
		if _, ok := set[it.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateItem, it.ID)
		}
		set[it.ID] = it
	}
	return &Bucket{resource: resource, items: set}, nil
}

// NewConfidentialBucket returns a bucket holding a revealed amount plus the
// given commitments.
func NewConfidentialBucket(resource models.ResourceIdentity, revealed models.Amount, commitments ...models.Commitment) (*Bucket, error) {
	if revealed.IsNegative() {
		return nil, ErrNegativeAmount
	}
	return &Bucket{resource: resource, amount: revealed, commitments: slices.Clone(commitments)}, nil
}

// FromPayload materializes a transport payload into a bucket. Commitments
// on a public payload are kept so the fee check can report hidden value;
// no vault accepts them.
func FromPayload(p models.BucketPayload) (*Bucket, error) {
	if p.Amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	commitments := len(p.Commitments)
	if p.Resource.Kind == models.ResourcePublic {
		commitments = 0
	}
	if err := checkShape(p.Resource.Kind, p.Amount, len(p.Items), commitments); err != nil {
		return nil, err
	}
	b, err := NewItemBucket(p.Resource, p.Items...)
	if err != nil {
		return nil, err
	}
	b.amount = p.Amount
	b.commitments = slices.Clone(p.Commitments)
	return b, nil
}

// Payload returns the transport form of the bucket. It does not consume it.
func (b *Bucket) Payload() models.BucketPayload {
	return models.BucketPayload{
		Resource:    b.resource,
		Amount:      b.amount,
		Items:       b.Items(),
		Commitments: b.Commitments(),
	}
}

// Resource returns the identity of the held resource.
func (b *Bucket) Resource() models.ResourceIdentity {
	return b.resource
}

// Amount returns the visible amount. For non-fungible buckets it is the
// number of items.
func (b *Bucket) Amount() models.Amount {
	if b.resource.Kind == models.ResourceNonFungible {
		return models.Amount(len(b.items))
	}
	return b.amount
}

// Items returns the held items ordered by id.
func (b *Bucket) Items() []models.NonFungibleItem {
	return sortedItems(b.items)
}

// Commitments returns a copy of the held commitments.
func (b *Bucket) Commitments() []models.Commitment {
	return slices.Clone(b.commitments)
}

// ContainsConfidentialFunds reports whether any value in the bucket is
// hidden behind a commitment.
func (b *Bucket) ContainsConfidentialFunds() bool {
	return len(b.commitments) > 0
}

// Consumed reports whether the bucket has been moved into a vault.
func (b *Bucket) Consumed() bool {
	return b.consumed
}

// checkShape rejects contents that do not belong to kind: public resources
// hold an amount, non-fungible ones items, confidential ones commitments
// plus a revealed amount.
func checkShape(kind models.ResourceKind, amount models.Amount, items, commitments int) error {
	switch kind {
	case models.ResourcePublic:
		if items > 0 || commitments > 0 {
			return fmt.Errorf("%w: public resource with %d items and %d commitments", ErrBucketShape, items, commitments)
		}
	case models.ResourceNonFungible:
		if amount != 0 || commitments > 0 {
			return fmt.Errorf("%w: non-fungible resource with amount %d and %d commitments", ErrBucketShape, amount, commitments)
		}
	case models.ResourceConfidential:
		if items > 0 {
			return fmt.Errorf("%w: confidential resource with %d items", ErrBucketShape, items)
		}
	}
	return nil
}

func (b *Bucket) usable() error {
	if b == nil {
		return ErrNilBucket
	}
	if b.consumed {
		return ErrBucketConsumed
	}
	return nil
}

func sortedItems(items map[models.ItemID]models.NonFungibleItem) []models.NonFungibleItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]models.NonFungibleItem, 0, len(items))
	for _, it := range items {
		out = append(out, it)
	}
	slices.SortFunc(out, func(a, b models.NonFungibleItem) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out
}
