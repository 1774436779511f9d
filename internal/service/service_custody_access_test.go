package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-custody/internal/custody"
	"github.com/MKhiriev/go-custody/internal/mock"
	"github.com/MKhiriev/go-custody/internal/service"
	"github.com/MKhiriev/go-custody/internal/utils"
	"github.com/MKhiriev/go-custody/models"
)

type rulesPolicy models.AccessRules

func (p rulesPolicy) Permits(method string, role models.Role) bool {
	rule, ok := p[method]
	return ok && rule.Permits(role)
}

func newAccessService(t *testing.T) (service.CustodyService, *mock.MockCustodyService) {
	t.Helper()
	inner := mock.NewMockCustodyService(gomock.NewController(t))
	return service.NewCustodyAccessService(rulesPolicy(custody.DefaultAccessRules())).Wrap(inner), inner
}

func ownerCtx() context.Context {
	return utils.WithRole(context.Background(), models.RoleOwner)
}

// ── withdrawals are open to everyone ─────────────────────────────────────────

func TestCustodyAccessService_WithdrawAllowsAnonymous(t *testing.T) {
	svc, inner := newAccessService(t)
	req := models.WithdrawRequest{Amount: 5}
	want := models.BucketPayload{Amount: 5}

	inner.EXPECT().Withdraw(gomock.Any(), req).Return(want, nil)
	inner.EXPECT().WithdrawConfidential(gomock.Any(), gomock.Any()).Return(models.BucketPayload{}, nil)

	got, err := svc.Withdraw(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.WithdrawConfidential(context.Background(), models.WithdrawConfidentialRequest{})
	require.NoError(t, err)
}

// ── owner-only methods ───────────────────────────────────────────────────────

func TestCustodyAccessService_OwnerOnly(t *testing.T) {
	calls := map[string]func(context.Context, service.CustodyService) error{
		custody.MethodGetBalance: func(ctx context.Context, s service.CustodyService) error {
			_, err := s.GetBalance(ctx)
			return err
		},
		custody.MethodFeeBalance: func(ctx context.Context, s service.CustodyService) error {
			_, err := s.FeeBalance(ctx)
			return err
		},
		custody.MethodCounter: func(ctx context.Context, s service.CustodyService) error {
			_, err := s.Counter(ctx)
			return err
		},
		custody.MethodIncrease: func(ctx context.Context, s service.CustodyService) error {
			_, err := s.Increase(ctx)
			return err
		},
		custody.MethodMintFungible: func(ctx context.Context, s service.CustodyService) error {
			return s.MintFungible(ctx, models.MintFungibleRequest{Amount: 1})
		},
		custody.MethodMintNonFungible: func(ctx context.Context, s service.CustodyService) error {
			return s.MintNonFungible(ctx, models.MintNonFungibleRequest{})
		},
		custody.MethodMintConfidential: func(ctx context.Context, s service.CustodyService) error {
			return s.MintConfidential(ctx, models.MintConfidentialRequest{})
		},
		custody.MethodJournal: func(ctx context.Context, s service.CustodyService) error {
			_, err := s.Journal(ctx, models.JournalFilter{})
			return err
		},
	}

	for method, call := range calls {
		t.Run(method+"/anonymous denied", func(t *testing.T) {
			svc, _ := newAccessService(t)
			err := call(context.Background(), svc)
			require.ErrorIs(t, err, service.ErrAccessDenied)
			assert.Contains(t, err.Error(), method)
		})
	}

	t.Run("owner passes through", func(t *testing.T) {
		svc, inner := newAccessService(t)
		inner.EXPECT().GetBalance(gomock.Any()).Return(models.Amount(7), nil)
		inner.EXPECT().FeeBalance(gomock.Any()).Return(models.Amount(0), nil)
		inner.EXPECT().Counter(gomock.Any()).Return(uint32(0), nil)
		inner.EXPECT().Increase(gomock.Any()).Return(uint32(1), nil)
		inner.EXPECT().MintFungible(gomock.Any(), gomock.Any()).Return(nil)
		inner.EXPECT().MintNonFungible(gomock.Any(), gomock.Any()).Return(nil)
		inner.EXPECT().MintConfidential(gomock.Any(), gomock.Any()).Return(nil)
		inner.EXPECT().Journal(gomock.Any(), gomock.Any()).Return(nil, nil)

		for _, call := range calls {
			require.NoError(t, call(ownerCtx(), svc))
		}
	})
}

// ── unguarded methods ────────────────────────────────────────────────────────

func TestCustodyAccessService_ResourcesAndPersistUnguarded(t *testing.T) {
	svc, inner := newAccessService(t)
	inner.EXPECT().Resources(gomock.Any()).Return(models.ComponentResources{}, nil)
	inner.EXPECT().Persist(gomock.Any()).Return(nil)

	_, err := svc.Resources(context.Background())
	require.NoError(t, err)
	require.NoError(t, svc.Persist(context.Background()))
}
