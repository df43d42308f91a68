package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/GustavoCaso/apero/internal/crypto"
)

// DefaultRateLimit is the number of API requests per minute allowed per IP
// when the configuration does not set one.
const DefaultRateLimit = 120

// Config holds all apero configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Client ClientConfig `toml:"client"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig holds the settings of `apero serve`.
type ServerConfig struct {
	ListenAddr    string              `toml:"listen_addr"`
	PSKey         crypto.SecretBoxKey `toml:"ps_key"`
	SignPublicKey crypto.PublicKey    `toml:"sign_public_key"`
	// StorePath is the badger directory. If empty, entries are kept in memory.
	StorePath string `toml:"store_path"`
	// RateLimit is in requests per minute per client IP.
	RateLimit int `toml:"rate_limit"`
}

// ClientConfig holds the settings of the client commands.
type ClientConfig struct {
	Endpoint       string              `toml:"endpoint"`
	PSKey          crypto.SecretBoxKey `toml:"ps_key"`
	SignPrivateKey crypto.PrivateKey   `toml:"sign_private_key"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a zerolog level name. APERO_LOG_LEVEL overrides it.
	Level string `toml:"level"`
}

var (
	ErrInvalidPSKey      = errors.New("ps key is invalid")
	ErrInvalidPublicKey  = errors.New("sign public key is invalid")
	ErrInvalidPrivateKey = errors.New("sign private key is invalid")
)

// Validate checks the server settings.
func (c ServerConfig) Validate() error {
	if _, _, err := net.SplitHostPort(c.ListenAddr); err != nil {
		return fmt.Errorf("listen address: %w", err)
	}
	if !c.PSKey.IsValid() {
		return ErrInvalidPSKey
	}
	if !c.SignPublicKey.IsValid() {
		return ErrInvalidPublicKey
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must be positive, got %d", c.RateLimit)
	}
	return nil
}

// RequestsPerMinute returns the configured rate limit or DefaultRateLimit.
func (c ServerConfig) RequestsPerMinute() int {
	if c.RateLimit == 0 {
		return DefaultRateLimit
	}
	return c.RateLimit
}

// Validate checks the client settings.
func (c ClientConfig) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint %q must be an http or https URL", c.Endpoint)
	}
	if !c.PSKey.IsValid() {
		return ErrInvalidPSKey
	}
	if !c.SignPrivateKey.IsValid() {
		return ErrInvalidPrivateKey
	}
	return nil
}

// DefaultPath returns the default config file path: $HOME/.config/apero.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "apero.toml"
	}
	return filepath.Join(home, ".config", "apero.toml")
}

// Load parses a TOML config file at path.
// If the file does not exist, an empty Config is returned with no error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		fmt.Fprint(os.Stderr, "Config file not present. Using default values\n")
	}

	if level := os.Getenv("APERO_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}
