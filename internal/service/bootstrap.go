package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-custody/internal/config"
	"github.com/MKhiriev/go-custody/internal/confidential"
	"github.com/MKhiriev/go-custody/internal/crypto"
	"github.com/MKhiriev/go-custody/internal/custody"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/store"
	"github.com/MKhiriev/go-custody/models"
)

// RestoreOrCreateComponent rebuilds the component and registry from stored
// snapshots. On first start it constructs a fresh component from params,
// paying fees in the registry's native resource unless params names another,
// and stores the initial snapshots.
func RestoreOrCreateComponent(ctx context.Context, reg ResourceRegistry, engine confidential.Engine, snapshots store.SnapshotRepository, params custody.Params, log *logger.Logger) (*custody.Component, error) {
	componentBlob, err := snapshots.Load(ctx, ComponentSnapshot)
	switch {
	case errors.Is(err, store.ErrSnapshotNotFound):
		return createComponent(ctx, reg, engine, snapshots, params, log)
	case err != nil:
		return nil, fmt.Errorf("load component snapshot: %w", err)
	}

	registryBlob, err := snapshots.Load(ctx, RegistrySnapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: registry snapshot: %w", ErrSnapshotCorrupted, err)
	}

	var registryState models.RegistryState
	if err := json.Unmarshal(registryBlob, &registryState); err != nil {
		return nil, fmt.Errorf("%w: registry snapshot: %w", ErrSnapshotCorrupted, err)
	}
	var componentState models.ComponentState
	if err := json.Unmarshal(componentBlob, &componentState); err != nil {
		return nil, fmt.Errorf("%w: component snapshot: %w", ErrSnapshotCorrupted, err)
	}

	if err := reg.Restore(registryState); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupted, err)
	}
	component, err := custody.Restore(reg, engine, componentState)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupted, err)
	}

	log.Info().
		Uint32("counter", component.Counter()).
		Int64("balance", int64(component.GetBalance())).
		Msg("custody component restored from snapshot")

	return component, nil
}

func createComponent(ctx context.Context, reg ResourceRegistry, engine confidential.Engine, snapshots store.SnapshotRepository, params custody.Params, log *logger.Logger) (*custody.Component, error) {
	if params.FeeResource.Address == "" {
		params.FeeResource = reg.Native()
	}

	component, err := custody.New(ctx, reg, engine, params)
	if err != nil {
		return nil, err
	}

	if err := saveSnapshots(ctx, snapshots, component.State(), reg.Snapshot()); err != nil {
		return nil, err
	}

	resources := component.Resources()
	log.Info().
		Str("supply", string(resources.Supply.Address)).
		Str("fee", string(resources.Fee.Address)).
		Str("non_fungible", string(resources.NonFungible.Address)).
		Str("confidential", string(resources.Confidential.Address)).
		Msg("custody component created")

	return component, nil
}

// ComponentParams turns the component configuration into construction
// parameters. Without a configured blinding the confidential seed gets a
// random one, which is logged once so the owner can import it into a wallet.
func ComponentParams(cfg config.Component, log *logger.Logger) (custody.Params, error) {
	var (
		blinding crypto.Scalar
		err      error
	)
	if cfg.ConfidentialSeedBlinding != "" {
		if err = blinding.UnmarshalText([]byte(cfg.ConfidentialSeedBlinding)); err != nil {
			return custody.Params{}, fmt.Errorf("%w: seed blinding: %w", ErrInvalidDataProvided, err)
		}
	} else {
		if blinding, err = crypto.RandomScalar(); err != nil {
			return custody.Params{}, err
		}
		seed, _ := blinding.MarshalText()
		log.Warn().
			Uint64("value", cfg.ConfidentialSeedValue).
			Str("blinding", string(seed)).
			Msg("generated confidential seed blinding")
	}

	stmt, _, err := crypto.NewOutputWithBlinding(cfg.ConfidentialSeedValue, blinding)
	if err != nil {
		return custody.Params{}, fmt.Errorf("confidential seed: %w", err)
	}

	items := make([]models.NonFungibleItem, 0, len(cfg.InitialItems))
	for _, id := range cfg.InitialItems {
		items = append(items, models.NonFungibleItem{ID: models.ItemID(id), Data: models.DefaultItemData})
	}

	return custody.Params{
		InitialSupply:             models.Amount(cfg.InitialSupply),
		InitialConfidentialSupply: stmt,
		InitialItems:              items,
		TokenSymbol:               cfg.TokenSymbol,
		TokenName:                 cfg.TokenName,
		CollectionName:            cfg.CollectionName,
		ConfidentialSymbol:        cfg.ConfidentialSymbol,
	}, nil
}
