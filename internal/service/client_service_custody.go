package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-custody/internal/adapter"
	"github.com/MKhiriev/go-custody/internal/crypto"
	"github.com/MKhiriev/go-custody/internal/custody"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/models"
)

type clientCustodyService struct {
	adapter adapter.ServerAdapter
	wallet  ClientWalletService
	logger  *logger.Logger

	mu          sync.Mutex
	feeResource *models.ResourceIdentity
}

func NewClientCustodyService(serverAdapter adapter.ServerAdapter, wallet ClientWalletService, logger *logger.Logger) ClientCustodyService {
	return &clientCustodyService{adapter: serverAdapter, wallet: wallet, logger: logger}
}

func (c *clientCustodyService) Overview(ctx context.Context) (models.CustodyOverview, error) {
	resources, err := c.adapter.Resources(ctx)
	if err != nil {
		return models.CustodyOverview{}, mapAdapterError(err)
	}
	balance, err := c.adapter.Balance(ctx)
	if err != nil {
		return models.CustodyOverview{}, mapAdapterError(err)
	}
	fees, err := c.adapter.FeeBalance(ctx)
	if err != nil {
		return models.CustodyOverview{}, mapAdapterError(err)
	}
	counter, err := c.adapter.Counter(ctx)
	if err != nil {
		return models.CustodyOverview{}, mapAdapterError(err)
	}

	return models.CustodyOverview{
		Resources: resources,
		Balance:   balance,
		Fees:      fees,
		Counter:   counter,
	}, nil
}

// fee builds a bucket payload of exactly custody.Fee units of the fee
// resource. The fee resource identity is fetched once.
func (c *clientCustodyService) fee(ctx context.Context) (models.BucketPayload, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.feeResource == nil {
		resources, err := c.adapter.Resources(ctx)
		if err != nil {
			return models.BucketPayload{}, fmt.Errorf("fetch fee resource: %w", mapAdapterError(err))
		}
		c.feeResource = &resources.Fee
	}

	return models.BucketPayload{Resource: *c.feeResource, Amount: custody.Fee}, nil
}

func (c *clientCustodyService) Withdraw(ctx context.Context, amount models.Amount) (models.BucketPayload, error) {
	if amount.IsNegative() {
		return models.BucketPayload{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, custody.ErrNegativeAmount)
	}

	fee, err := c.fee(ctx)
	if err != nil {
		return models.BucketPayload{}, err
	}

	out, err := c.adapter.Withdraw(ctx, models.WithdrawRequest{Fee: fee, Amount: amount})
	if err != nil {
		return models.BucketPayload{}, mapAdapterError(err)
	}

	c.logger.Info().Int64("amount", int64(out.Amount)).Msg("withdrawn")
	return out, nil
}

func (c *clientCustodyService) WithdrawConfidential(ctx context.Context, amount uint64) (models.BucketPayload, error) {
	inputs, err := selectInputs(c.wallet.VaultOpenings(), amount)
	if err != nil {
		return models.BucketPayload{}, err
	}

	proof, openings, err := crypto.ProveWithdraw(inputs, amount)
	if err != nil {
		return models.BucketPayload{}, fmt.Errorf("prove withdraw: %w", err)
	}

	fee, err := c.fee(ctx)
	if err != nil {
		return models.BucketPayload{}, err
	}

	out, err := c.adapter.WithdrawConfidential(ctx, models.WithdrawConfidentialRequest{Fee: fee, Proof: proof})
	if err != nil {
		return models.BucketPayload{}, mapAdapterError(err)
	}

	// The server state already moved; a wallet save failure leaves the
	// wallet stale and is reported to the caller.
	if err = c.wallet.ApplyWithdraw(ctx, proof.Inputs, openings); err != nil {
		return out, fmt.Errorf("update wallet after withdraw: %w", err)
	}

	c.logger.Info().Str("output", proof.Output.Commitment.String()).Msg("confidential withdraw accepted")
	return out, nil
}

// selectInputs takes vault openings in order until they cover amount.
func selectInputs(vault []crypto.Opening, amount uint64) ([]crypto.Opening, error) {
	var (
		inputs []crypto.Opening
		total  uint64
	)
	for _, o := range vault {
		inputs = append(inputs, o)
		total += o.Value
		if total >= amount {
			return inputs, nil
		}
	}

	return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientConfidentialFunds, total, amount)
}

func (c *clientCustodyService) MintFungible(ctx context.Context, amount models.Amount) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, custody.ErrNegativeAmount)
	}
	return mapAdapterError(c.adapter.MintFungible(ctx, models.MintFungibleRequest{Amount: amount}))
}

func (c *clientCustodyService) MintNonFungible(ctx context.Context, item models.NonFungibleItem) error {
	return mapAdapterError(c.adapter.MintNonFungible(ctx, models.MintNonFungibleRequest{Item: item}))
}

func (c *clientCustodyService) MintConfidential(ctx context.Context, value uint64) (models.Commitment, error) {
	stmt, opening, err := crypto.NewOutput(value)
	if err != nil {
		return models.Commitment{}, fmt.Errorf("create confidential output: %w", err)
	}

	if err = c.adapter.MintConfidential(ctx, models.MintConfidentialRequest{Statement: stmt}); err != nil {
		return models.Commitment{}, mapAdapterError(err)
	}

	if err = c.wallet.TrackVault(ctx, opening); err != nil {
		return stmt.Commitment, fmt.Errorf("track minted opening: %w", err)
	}

	return stmt.Commitment, nil
}

func (c *clientCustodyService) Increase(ctx context.Context) (uint32, error) {
	counter, err := c.adapter.Increase(ctx)
	return counter, mapAdapterError(err)
}

func (c *clientCustodyService) Journal(ctx context.Context, filter models.JournalFilter) ([]models.JournalEntry, error) {
	entries, err := c.adapter.Journal(ctx, filter)
	return entries, mapAdapterError(err)
}
