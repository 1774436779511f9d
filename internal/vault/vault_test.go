package vault_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/MKhiriev/go-custody/internal/confidential"
	"github.com/MKhiriev/go-custody/internal/mock"
	"github.com/MKhiriev/go-custody/internal/vault"
	"github.com/MKhiriev/go-custody/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	coin    = models.ResourceIdentity{Address: "resource_coin", Kind: models.ResourcePublic, Symbol: "CSTD"}
	other   = models.ResourceIdentity{Address: "resource_other", Kind: models.ResourcePublic}
	badges  = models.ResourceIdentity{Address: "resource_badges", Kind: models.ResourceNonFungible}
	private = models.ResourceIdentity{Address: "resource_private", Kind: models.ResourceConfidential}
)

func mustBucket(t *testing.T, r models.ResourceIdentity, amount models.Amount) *vault.Bucket {
	t.Helper()
	b, err := vault.NewBucket(r, amount)
	require.NoError(t, err)
	return b
}

// ─────────────────────────────────────────────────────────────
// buckets
// ─────────────────────────────────────────────────────────────

func TestBucket_Constructors(t *testing.T) {
	_, err := vault.NewBucket(coin, -1)
	assert.ErrorIs(t, err, vault.ErrNegativeAmount)

	_, err = vault.NewItemBucket(badges, models.NonFungibleItem{ID: 1}, models.NonFungibleItem{ID: 1})
	assert.ErrorIs(t, err, vault.ErrDuplicateItem)

	items, err := vault.NewItemBucket(badges, models.NonFungibleItem{ID: 2}, models.NonFungibleItem{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, models.Amount(2), items.Amount())
	assert.Equal(t, models.ItemID(1), items.Items()[0].ID)

	_, err = vault.NewConfidentialBucket(private, -5)
	assert.ErrorIs(t, err, vault.ErrNegativeAmount)

	hidden, err := vault.NewConfidentialBucket(private, 0, models.Commitment{9})
	require.NoError(t, err)
	assert.True(t, hidden.ContainsConfidentialFunds())
	assert.False(t, mustBucket(t, coin, 3).ContainsConfidentialFunds())
}

func TestBucket_PayloadRoundTrip(t *testing.T) {
	p := models.BucketPayload{
		Resource:    coin,
		Amount:      12,
		Commitments: []models.Commitment{{1}},
	}
	b, err := vault.FromPayload(p)
	require.NoError(t, err)
	assert.Equal(t, p, b.Payload())

	p.Amount = -1
	_, err = vault.FromPayload(p)
	assert.ErrorIs(t, err, vault.ErrNegativeAmount)
}

func TestBucket_FromPayloadShape(t *testing.T) {
	tests := []struct {
		name    string
		payload models.BucketPayload
		err     error
	}{
		{
			name:    "public with items",
			payload: models.BucketPayload{Resource: coin, Amount: 10, Items: []models.NonFungibleItem{{ID: 7}, {ID: 8}}},
			err:     vault.ErrBucketShape,
		},
		{
			name:    "non-fungible with amount",
			payload: models.BucketPayload{Resource: badges, Amount: 3, Items: []models.NonFungibleItem{{ID: 1}}},
			err:     vault.ErrBucketShape,
		},
		{
			name:    "non-fungible with commitments",
			payload: models.BucketPayload{Resource: badges, Commitments: []models.Commitment{{1}}},
			err:     vault.ErrBucketShape,
		},
		{
			name:    "confidential with items",
			payload: models.BucketPayload{Resource: private, Items: []models.NonFungibleItem{{ID: 1}}},
			err:     vault.ErrBucketShape,
		},
		{
			name:    "public with hidden value is left to the fee check",
			payload: models.BucketPayload{Resource: coin, Amount: 10, Commitments: []models.Commitment{{1}}},
		},
		{
			name:    "confidential with revealed amount",
			payload: models.BucketPayload{Resource: private, Amount: 4, Commitments: []models.Commitment{{1}}},
		},
		{
			name:    "non-fungible items",
			payload: models.BucketPayload{Resource: badges, Items: []models.NonFungibleItem{{ID: 1}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := vault.FromPayload(tt.payload)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.payload.Resource, b.Resource())
		})
	}
}

func TestBucket_ConsumedOnDeposit(t *testing.T) {
	v := vault.NewEmpty(coin)
	b := mustBucket(t, coin, 5)

	require.NoError(t, v.Deposit(b))
	assert.True(t, b.Consumed())
	assert.Equal(t, models.Amount(0), b.Amount())

	assert.ErrorIs(t, v.Deposit(b), vault.ErrBucketConsumed)
	assert.Equal(t, models.Amount(5), v.Balance(), "second deposit must not credit anything")

	assert.ErrorIs(t, v.Deposit(nil), vault.ErrNilBucket)
}

// ─────────────────────────────────────────────────────────────
// vaults
// ─────────────────────────────────────────────────────────────

func TestVault_DepositRules(t *testing.T) {
	tests := []struct {
		name   string
		vault  *vault.Vault
		bucket func(t *testing.T) *vault.Bucket
		err    error
	}{
		{
			name:   "resource mismatch",
			vault:  vault.NewEmpty(coin),
			bucket: func(t *testing.T) *vault.Bucket { return mustBucket(t, other, 1) },
			err:    vault.ErrResourceMismatch,
		},
		{
			name: "overflow",
			vault: func() *vault.Vault {
				v := vault.NewEmpty(coin)
				b, _ := vault.NewBucket(coin, math.MaxInt64)
				_ = v.Deposit(b)
				return v
			}(),
			bucket: func(t *testing.T) *vault.Bucket { return mustBucket(t, coin, 1) },
			err:    vault.ErrAmountOverflow,
		},
		{
			name: "duplicate item",
			vault: func() *vault.Vault {
				b, _ := vault.NewItemBucket(badges, models.NonFungibleItem{ID: 1})
				v, _ := vault.FromBucket(b)
				return v
			}(),
			bucket: func(t *testing.T) *vault.Bucket {
				b, err := vault.NewItemBucket(badges, models.NonFungibleItem{ID: 1})
				require.NoError(t, err)
				return b
			},
			err: vault.ErrDuplicateItem,
		},
		{
			name:  "items into public vault",
			vault: vault.NewEmpty(coin),
			bucket: func(t *testing.T) *vault.Bucket {
				b, err := vault.NewItemBucket(coin, models.NonFungibleItem{ID: 7}, models.NonFungibleItem{ID: 8})
				require.NoError(t, err)
				return b
			},
			err: vault.ErrBucketShape,
		},
		{
			name:  "hidden value into public vault",
			vault: vault.NewEmpty(coin),
			bucket: func(t *testing.T) *vault.Bucket {
				b, err := vault.NewConfidentialBucket(coin, 10, models.Commitment{1})
				require.NoError(t, err)
				return b
			},
			err: vault.ErrBucketShape,
		},
		{
			name:   "amount into non-fungible vault",
			vault:  vault.NewEmpty(badges),
			bucket: func(t *testing.T) *vault.Bucket { return mustBucket(t, badges, 2) },
			err:    vault.ErrBucketShape,
		},
		{
			name:  "items into confidential vault",
			vault: vault.NewEmpty(private),
			bucket: func(t *testing.T) *vault.Bucket {
				b, err := vault.NewItemBucket(private, models.NonFungibleItem{ID: 1})
				require.NoError(t, err)
				return b
			},
			err: vault.ErrBucketShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.bucket(t)
			before := tt.vault.State()

			assert.ErrorIs(t, tt.vault.CanDeposit(b), tt.err)
			assert.ErrorIs(t, tt.vault.Deposit(b), tt.err)
			assert.False(t, b.Consumed())
			assert.Equal(t, before, tt.vault.State())
		})
	}
}

func TestVault_Withdraw(t *testing.T) {
	v, err := vault.FromBucket(mustBucket(t, coin, 100))
	require.NoError(t, err)

	out, err := v.Withdraw(40)
	require.NoError(t, err)
	assert.Equal(t, models.Amount(40), out.Amount())
	assert.Equal(t, coin, out.Resource())
	assert.Equal(t, models.Amount(60), v.Balance())

	_, err = v.Withdraw(61)
	assert.ErrorIs(t, err, vault.ErrInsufficientBalance)
	_, err = v.Withdraw(-1)
	assert.ErrorIs(t, err, vault.ErrNegativeAmount)
	assert.Equal(t, models.Amount(60), v.Balance())

	zero, err := v.Withdraw(0)
	require.NoError(t, err)
	assert.Equal(t, models.Amount(0), zero.Amount())

	_, err = vault.NewEmpty(badges).Withdraw(1)
	assert.ErrorIs(t, err, vault.ErrWrongResourceKind)
}

func TestVault_WithdrawConfidential(t *testing.T) {
	held := []models.Commitment{{1}, {2}}
	proof := models.ConfidentialWithdrawProof{Inputs: []models.Commitment{{1}}}

	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		engine := mock.NewMockEngine(ctrl)

		b, err := vault.NewConfidentialBucket(private, 0, held...)
		require.NoError(t, err)
		v, err := vault.FromBucket(b)
		require.NoError(t, err)

		engine.EXPECT().Withdraw(held, proof).Return(confidential.Transfer{
			Output:    models.Commitment{7},
			Remaining: []models.Commitment{{2}, {8}},
		}, nil)

		out, err := v.WithdrawConfidential(engine, proof)
		require.NoError(t, err)
		assert.Equal(t, []models.Commitment{{7}}, out.Commitments())
		assert.Equal(t, []models.Commitment{{2}, {8}}, v.Commitments())
	})

	t.Run("rejected leaves vault untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		engine := mock.NewMockEngine(ctrl)

		b, err := vault.NewConfidentialBucket(private, 0, held...)
		require.NoError(t, err)
		v, err := vault.FromBucket(b)
		require.NoError(t, err)

		engine.EXPECT().Withdraw(gomock.Any(), gomock.Any()).Return(confidential.Transfer{}, confidential.ErrInvalidWithdrawProof)

		_, err = v.WithdrawConfidential(engine, proof)
		assert.ErrorIs(t, err, confidential.ErrInvalidWithdrawProof)
		assert.Equal(t, held, v.Commitments())
	})

	t.Run("wrong kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		_, err := vault.NewEmpty(coin).WithdrawConfidential(mock.NewMockEngine(ctrl), proof)
		assert.ErrorIs(t, err, vault.ErrWrongResourceKind)
	})
}

func TestVault_StateRestore(t *testing.T) {
	b, err := vault.NewItemBucket(badges,
		models.NonFungibleItem{ID: 2, Data: json.RawMessage(`{"data":"x"}`)},
		models.NonFungibleItem{ID: 1},
	)
	require.NoError(t, err)
	v, err := vault.FromBucket(b)
	require.NoError(t, err)

	state := v.State()
	restored, err := vault.Restore(state)
	require.NoError(t, err)
	assert.Equal(t, state, restored.State())
	assert.True(t, restored.HasItem(2))

	_, err = vault.Restore(models.VaultState{Resource: models.ResourceIdentity{Kind: "gold"}})
	assert.ErrorIs(t, err, vault.ErrInvalidState)

	_, err = vault.Restore(models.VaultState{Resource: coin, Amount: -3})
	assert.ErrorIs(t, err, vault.ErrInvalidState)

	dup := state
	dup.Items = append(dup.Items, dup.Items[0])
	_, err = vault.Restore(dup)
	assert.ErrorIs(t, err, vault.ErrInvalidState)

	_, err = vault.Restore(models.VaultState{Resource: coin, Amount: 10, Items: []models.NonFungibleItem{{ID: 7}}})
	assert.ErrorIs(t, err, vault.ErrInvalidState)
	assert.ErrorIs(t, err, vault.ErrBucketShape)
}
