package config

import (
	"encoding/hex"
	"fmt"
)

func (cfg *StructuredConfig) validate() error {
	if cfg.App.OwnerSecret == "" || cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: owner secret, token sign key and issuer are required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: at least one listen address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if err := cfg.Component.validate(); err != nil {
		return err
	}

	if cfg.Workers.SnapshotInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (c *Component) validate() error {
	if c.InitialSupply < 0 {
		return fmt.Errorf("%w: initial supply must not be negative", ErrInvalidComponentConfigs)
	}
	if c.TokenSymbol == "" {
		return fmt.Errorf("%w: token symbol is required", ErrInvalidComponentConfigs)
	}

	seen := make(map[uint64]struct{}, len(c.InitialItems))
	for _, id := range c.InitialItems {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate initial item %d", ErrInvalidComponentConfigs, id)
		}
		seen[id] = struct{}{}
	}

	if c.ConfidentialSeedBlinding != "" {
		raw, err := hex.DecodeString(c.ConfidentialSeedBlinding)
		if err != nil || len(raw) != 32 {
			return fmt.Errorf("%w: seed blinding must be 32 hex-encoded bytes", ErrInvalidComponentConfigs)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
