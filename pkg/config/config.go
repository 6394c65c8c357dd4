// Package config loads the settings of the scaffold tools from a .env file, the environment and
// an optional networks file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Environment variables read by FromEnv.
const (
	EnvNetwork               = "NETWORK"
	EnvRPCURL                = "RPC_URL"
	EnvPrivateKeys           = "PRIVATE_KEYS"
	EnvPrivateKey            = "PRIVATE_KEY"
	EnvKeystoreDir           = "KEYSTORE_DIR"
	EnvKeystorePassphrase    = "KEYSTORE_PASSPHRASE"
	EnvLedgerDerivationPaths = "LEDGER_DERIVATION_PATHS"
	EnvConfirmTimeout        = "CONFIRM_TIMEOUT"
	EnvDeployArtifact        = "DEPLOY_ARTIFACT"
	EnvDeploymentsDir        = "DEPLOYMENTS_DIR"
	EnvNetworksFile          = "NETWORKS_FILE"
)

const (
	DefaultEnvFile        = ".env"
	DefaultNetwork        = "localhost"
	DefaultRPCURL         = "http://127.0.0.1:8545"
	DefaultConfirmTimeout = 2 * time.Minute
	DefaultDeployArtifact = "YourContractSelfOwned"
	DefaultDeploymentsDir = "deployments"

	// LocalDevPrivateKey is the key of the first prefunded account of local development nodes.
	// It is public knowledge and must never hold real funds.
	LocalDevPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
)

// SignerSource identifies where signing identities come from.
type SignerSource string

const (
	SignerSourcePrivateKeys SignerSource = "private-keys"
	SignerSourceKeystore    SignerSource = "keystore"
	SignerSourceLedger      SignerSource = "ledger"
)

// Config holds the resolved settings.
type Config struct {
	Network               string        `validate:"required"`
	RPCURL                string        `validate:"required,url"`
	PrivateKeys           []string      `validate:"omitempty,dive,hexadecimal"`
	KeystoreDir           string        `validate:"excluded_with=PrivateKeys LedgerDerivationPaths"`
	KeystorePassphrase    string        `validate:"excluded_without=KeystoreDir"`
	LedgerDerivationPaths []string      `validate:"excluded_with=PrivateKeys,omitempty,dive,startswith=m/"`
	ConfirmTimeout        time.Duration `validate:"gte=0"`
	DeployArtifact        string        `validate:"required"`

	// DeploymentsDir is where deployment records are written. Empty disables recording.
	DeploymentsDir string
}

// SignerSource reports which signer source is configured.
func (c *Config) SignerSource() SignerSource {
	switch {
	case len(c.LedgerDerivationPaths) > 0:
		return SignerSourceLedger
	case c.KeystoreDir != "":
		return SignerSourceKeystore
	default:
		return SignerSourcePrivateKeys
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// Network holds the settings of a named network in the networks file.
type Network struct {
	RPCURL         string        `yaml:"rpcUrl" validate:"omitempty,url"`
	ConfirmTimeout time.Duration `yaml:"confirmTimeout" validate:"gte=0"`
}

type networksFile struct {
	Networks map[string]Network `yaml:"networks" validate:"dive"`
}

// LookupFunc looks up an environment variable.
type LookupFunc func(key string) (string, bool)

// Load reads envFile, if it exists, and resolves the configuration from the process environment
// with the file as a fallback. Variables already set in the environment take precedence.
func Load(envFile string) (*Config, error) {
	fileEnv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
		if m != nil {
			fileEnv = m
		}
	}

	return FromEnv(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]

		return v, ok
	})
}

// FromEnv resolves the configuration from lookup. An RPC URL or confirm timeout set in the
// environment overrides the values of the networks file, which override the defaults. On the
// localhost network the local development key is used when no signer is configured.
func FromEnv(lookup LookupFunc) (*Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}

		return fallback
	}

	cfg := &Config{
		Network:               get(EnvNetwork, DefaultNetwork),
		RPCURL:                DefaultRPCURL,
		PrivateKeys:           splitList(get(EnvPrivateKeys, get(EnvPrivateKey, ""))),
		KeystoreDir:           get(EnvKeystoreDir, ""),
		LedgerDerivationPaths: splitList(get(EnvLedgerDerivationPaths, "")),
		ConfirmTimeout:        DefaultConfirmTimeout,
		DeployArtifact:        get(EnvDeployArtifact, DefaultDeployArtifact),
		DeploymentsDir:        DefaultDeploymentsDir,
	}

	// The passphrase is taken verbatim.
	if v, ok := lookup(EnvKeystorePassphrase); ok {
		cfg.KeystorePassphrase = v
	}

	// An empty value disables recording.
	if v, ok := lookup(EnvDeploymentsDir); ok {
		cfg.DeploymentsDir = strings.TrimSpace(v)
	}

	if path := get(EnvNetworksFile, ""); path != "" {
		networks, err := LoadNetworks(path)
		if err != nil {
			return nil, err
		}
		if n, ok := networks[cfg.Network]; ok {
			if n.RPCURL != "" {
				cfg.RPCURL = n.RPCURL
			}
			if n.ConfirmTimeout != 0 {
				cfg.ConfirmTimeout = n.ConfirmTimeout
			}
		}
	}

	cfg.RPCURL = get(EnvRPCURL, cfg.RPCURL)

	if v := get(EnvConfirmTimeout, ""); v != "" {
		timeout, err := cast.ToDurationE(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvConfirmTimeout, v, err)
		}
		cfg.ConfirmTimeout = timeout
	}

	if cfg.Network == DefaultNetwork && len(cfg.PrivateKeys) == 0 &&
		cfg.KeystoreDir == "" && len(cfg.LedgerDerivationPaths) == 0 {
		cfg.PrivateKeys = []string{LocalDevPrivateKey}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadNetworks reads a YAML networks file of the form
//
//	networks:
//	  sepolia:
//	    rpcUrl: https://rpc.sepolia.org
//	    confirmTimeout: 5m
func LoadNetworks(path string) (map[string]Network, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read networks file: %w", err)
	}

	var file networksFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("failed to parse networks file %s: %w", path, err)
	}

	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("invalid networks file %s: %w", path, err)
	}

	return file.Networks, nil
}

// splitList splits a comma separated list, dropping empty entries. It returns nil for an empty
// list.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
