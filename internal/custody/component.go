// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package custody implements the custodial asset component: a single
// stateful unit holding a public supply, a non-fungible collection and a
// confidential supply, plus the vault collecting withdrawal fees.
//
// Every withdrawal-class call validates all of its preconditions (fee,
// balance, proof) before it mutates anything, so a failed call never keeps
// the fee and never moves the counter.
//
// A Component is not safe for concurrent use. Hosts serialize calls against
// one instance.
package custody

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/MKhiriev/go-custody/internal/confidential"
	"github.com/MKhiriev/go-custody/internal/registry"
	"github.com/MKhiriev/go-custody/internal/vault"
	"github.com/MKhiriev/go-custody/models"
)

// Fee is the flat fee, in units of the fee resource, charged by every
// withdrawal-class call.
const Fee models.Amount = 10

// Params configures [New].
type Params struct {
	InitialSupply             models.Amount
	InitialConfidentialSupply models.ConfidentialOutputStatement
	InitialItems              []models.NonFungibleItem

	// FeeResource is the plain-value resource fees are paid in.
	FeeResource models.ResourceIdentity

	TokenSymbol        string
	TokenName          string
	CollectionName     string
	ConfidentialSymbol string
}

// Component is the custodial asset component.
type Component struct {
	registry registry.Registry
	engine   confidential.Engine

	supply       *vault.Vault
	fees         *vault.Vault
	nonFungible  *vault.Vault
	confidential *vault.Vault

	counter     uint32
	accessRules models.AccessRules
}

// New creates the three component resources through reg, seeds one vault per
// resource with the initial value and opens an empty fee vault. Any rejected
// resource creation fails with ErrConstruction.
func New(ctx context.Context, reg registry.Registry, engine confidential.Engine, p Params) (*Component, error) {
	if p.InitialSupply.IsNegative() {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, ErrNegativeAmount)
	}
	if p.FeeResource.Kind != models.ResourcePublic || p.FeeResource.Address == "" {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, ErrInvalidFeeResource)
	}

	seed := p.InitialConfidentialSupply
	specs := []models.ResourceSpec{
		{
			Kind:          models.ResourcePublic,
			Symbol:        p.TokenSymbol,
			Metadata:      nameMetadata(p.TokenName),
			InitialSupply: p.InitialSupply,
		},
		{
			Kind:         models.ResourceNonFungible,
			Metadata:     nameMetadata(p.CollectionName),
			InitialItems: p.InitialItems,
		},
		{
			Kind:             models.ResourceConfidential,
			Symbol:           p.ConfidentialSymbol,
			InitialStatement: &seed,
		},
	}

	vaults := make([]*vault.Vault, 0, len(specs))
	for _, spec := range specs {
		_, bucket, err := reg.CreateResource(ctx, spec)
		if err != nil {
			return nil, fmt.Errorf("%w: create %s resource: %w", ErrConstruction, spec.Kind, err)
		}
		v, err := vault.FromBucket(bucket)
		if err != nil {
			return nil, fmt.Errorf("%w: seed %s vault: %w", ErrConstruction, spec.Kind, err)
		}
		vaults = append(vaults, v)
	}

	return &Component{
		registry:     reg,
		engine:       engine,
		supply:       vaults[0],
		nonFungible:  vaults[1],
		confidential: vaults[2],
		fees:         vault.NewEmpty(p.FeeResource),
		accessRules:  DefaultAccessRules(),
	}, nil
}

func nameMetadata(name string) map[string]string {
	if name == "" {
		return nil
	}
	return map[string]string{"name": name}
}

// Resources returns the identities of the resources the component holds.
func (c *Component) Resources() models.ComponentResources {
	return models.ComponentResources{
		Supply:       c.supply.Resource(),
		Fee:          c.fees.Resource(),
		NonFungible:  c.nonFungible.Resource(),
		Confidential: c.confidential.Resource(),
	}
}

// GetBalance returns the public supply vault balance.
func (c *Component) GetBalance() models.Amount {
	return c.supply.Balance()
}

// FeeBalance returns the amount of collected fees.
func (c *Component) FeeBalance() models.Amount {
	return c.fees.Balance()
}

// NonFungibleItems returns the items held by the collection vault.
func (c *Component) NonFungibleItems() []models.NonFungibleItem {
	return c.nonFungible.Items()
}

// ConfidentialCommitments returns the commitments held by the confidential
// vault.
func (c *Component) ConfidentialCommitments() []models.Commitment {
	return c.confidential.Commitments()
}

// Counter returns the number of completed withdrawals plus manual increases.
func (c *Component) Counter() uint32 {
	return c.counter
}

// Increase bumps the counter by one.
func (c *Component) Increase() error {
	if c.counter == math.MaxUint32 {
		return ErrCounterOverflow
	}
	c.counter++
	return nil
}

// checkFee validates a fee bucket without consuming it.
func (c *Component) checkFee(fee *vault.Bucket) error {
	if fee == nil || fee.Consumed() {
		return fmt.Errorf("%w: %w", ErrInsufficientFee, vault.ErrBucketConsumed)
	}
	if fee.ContainsConfidentialFunds() {
		return ErrFeeContainsHiddenValue
	}
	if !fee.Resource().SameResource(c.fees.Resource()) {
		return fmt.Errorf("%w: got %s", ErrInvalidFeeResource, fee.Resource().Address)
	}
	if err := c.fees.CanDeposit(fee); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFeeResource, err)
	}
	if fee.Amount() < Fee {
		return fmt.Errorf("%w: paid %d, required %d", ErrInsufficientFee, fee.Amount(), Fee)
	}
	return nil
}

// Withdraw takes amount units from the public supply in exchange for fee.
func (c *Component) Withdraw(fee *vault.Bucket, amount models.Amount) (*vault.Bucket, error) {
	if err := c.checkFee(fee); err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if err := c.supply.CanWithdraw(amount); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInsufficientBalance, err)
	}
	if c.counter == math.MaxUint32 {
		return nil, ErrCounterOverflow
	}

	out, err := c.supply.Withdraw(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInsufficientBalance, err)
	}
	if err = c.fees.Deposit(fee); err != nil {
		if rbErr := c.supply.Deposit(out); rbErr != nil {
			err = errors.Join(err, rbErr)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidFeeResource, err)
	}
	c.counter++

	return out, nil
}

// WithdrawConfidential spends confidential value according to proof in
// exchange for fee.
func (c *Component) WithdrawConfidential(fee *vault.Bucket, proof models.ConfidentialWithdrawProof) (*vault.Bucket, error) {
	if err := c.checkFee(fee); err != nil {
		return nil, err
	}
	if c.counter == math.MaxUint32 {
		return nil, ErrCounterOverflow
	}

	before := c.confidential.State()
	out, err := c.confidential.WithdrawConfidential(c.engine, proof)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWithdrawProof, err)
	}
	if err = c.fees.Deposit(fee); err != nil {
		if restored, rbErr := vault.Restore(before); rbErr == nil {
			c.confidential = restored
		} else {
			err = errors.Join(err, rbErr)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidFeeResource, err)
	}
	c.counter++

	return out, nil
}

// MintFungible mints amount new units of the public resource into the supply
// vault.
func (c *Component) MintFungible(ctx context.Context, amount models.Amount) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if _, ok := c.supply.Balance().CheckedAdd(amount); !ok {
		return fmt.Errorf("%w: %w", ErrMintRejected, vault.ErrAmountOverflow)
	}

	bucket, err := c.registry.Mint(ctx, c.supply.Resource().Address, models.MintRequest{Amount: amount})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMintRejected, err)
	}
	return c.deposit(c.supply, bucket)
}

// MintNonFungible mints one item into the collection vault.
func (c *Component) MintNonFungible(ctx context.Context, item models.NonFungibleItem) error {
	if c.nonFungible.HasItem(item.ID) {
		return fmt.Errorf("%w: %d", ErrDuplicateItemID, item.ID)
	}

	bucket, err := c.registry.Mint(ctx, c.nonFungible.Resource().Address, models.MintRequest{
		Items: []models.NonFungibleItem{item},
	})
	if errors.Is(err, registry.ErrDuplicateItemID) {
		return fmt.Errorf("%w: %d", ErrDuplicateItemID, item.ID)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMintRejected, err)
	}
	return c.deposit(c.nonFungible, bucket)
}

// MintConfidential mints the value described by stmt into the confidential
// vault. The amount is never observed.
func (c *Component) MintConfidential(ctx context.Context, stmt models.ConfidentialOutputStatement) error {
	bucket, err := c.registry.Mint(ctx, c.confidential.Resource().Address, models.MintRequest{Statement: &stmt})
	if errors.Is(err, registry.ErrInvalidStatement) {
		return fmt.Errorf("%w: %w", ErrInvalidStatement, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMintRejected, err)
	}
	return c.deposit(c.confidential, bucket)
}

func (c *Component) deposit(v *vault.Vault, bucket *vault.Bucket) error {
	if err := v.Deposit(bucket); err != nil {
		return fmt.Errorf("%w: deposit minted bucket: %w", ErrMintRejected, err)
	}
	return nil
}
