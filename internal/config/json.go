package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors the layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		OwnerSecret   string   `json:"owner_secret"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		HashKey       string   `json:"hash_key"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
	} `json:"app,omitempty"`

	Component struct {
		TokenSymbol              string   `json:"token_symbol"`
		TokenName                string   `json:"token_name"`
		CollectionName           string   `json:"collection_name"`
		ConfidentialSymbol       string   `json:"confidential_symbol"`
		InitialSupply            int64    `json:"initial_supply"`
		InitialItems             []uint64 `json:"initial_items"`
		ConfidentialSeedValue    uint64   `json:"confidential_seed_value"`
		ConfidentialSeedBlinding string   `json:"confidential_seed_blinding"`
	} `json:"component,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		SnapshotInterval Duration `json:"snapshot_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			OwnerSecret:   jsonCfg.App.OwnerSecret,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			HashKey:       jsonCfg.App.HashKey,
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Component: Component{
			TokenSymbol:              jsonCfg.Component.TokenSymbol,
			TokenName:                jsonCfg.Component.TokenName,
			CollectionName:           jsonCfg.Component.CollectionName,
			ConfidentialSymbol:       jsonCfg.Component.ConfidentialSymbol,
			InitialSupply:            jsonCfg.Component.InitialSupply,
			InitialItems:             jsonCfg.Component.InitialItems,
			ConfidentialSeedValue:    jsonCfg.Component.ConfidentialSeedValue,
			ConfidentialSeedBlinding: jsonCfg.Component.ConfidentialSeedBlinding,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Workers: Workers{
			SnapshotInterval: time.Duration(jsonCfg.Workers.SnapshotInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
