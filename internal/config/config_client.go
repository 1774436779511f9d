package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey is the HMAC key used to sign mint request bodies.
	HashKey string `env:"HASH_KEY"`
	// OwnerSecret is exchanged for an owner token before owner-only calls.
	OwnerSecret string `env:"OWNER_SECRET"`
	// LogFile is the client log file path. Defaults to logs/ next to the binary.
	LogFile string `env:"LOG_FILE"`
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the custody server.
	HTTPAddress string `env:"HTTP_ADDRESS" envDefault:"http://localhost:8080"`
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

// ClientWallet locates the local SQLite database holding the sealed wallet
// of confidential openings.
type ClientWallet struct {
	Path       string `env:"PATH" envDefault:"custody-wallet.db"`
	Passphrase string `env:"PASSPHRASE"`
}

// ClientConfig is the top-level client configuration.
type ClientConfig struct {
	App     ClientApp     `envPrefix:"CLIENT_"`
	Adapter ClientAdapter `envPrefix:"CLIENT_ADAPTER_"`
	Wallet  ClientWallet  `envPrefix:"CLIENT_WALLET_"`
}

// GetClientConfig loads the client configuration from the environment and
// validates it. Command-line flags are applied on top by the cobra commands.
func GetClientConfig() (*ClientConfig, error) {
	clientCfg := &ClientConfig{}
	if err := parseEnv(clientCfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	return clientCfg, clientCfg.validate()
}

// Validate re-checks the config after flag overrides.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
