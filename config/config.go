package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the node-level settings for the social ledger engine.
type Config struct {
	DataDir                string   `toml:"DataDir"`
	LogPath                string   `toml:"LogPath"`
	Environment            string   `toml:"Environment"`
	MinimumTip             uint64   `toml:"MinimumTip"`
	FeeBasisPoints         uint32   `toml:"FeeBasisPoints"`
	EngagementPeriodLength uint64   `toml:"EngagementPeriodLength"`
	FeeRecipient           string   `toml:"FeeRecipient"`
	Admins                 []string `toml:"Admins"`
}

// Load reads the configuration from the given path, creating a default
// file when none exists.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefault(path)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func createDefault(path string) (*Config, error) {
	cfg := &Config{}
	applyDefaults(cfg)
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.DataDir) == "" {
		cfg.DataDir = "./data"
	}
	if strings.TrimSpace(cfg.Environment) == "" {
		cfg.Environment = "dev"
	}
	if cfg.MinimumTip == 0 {
		cfg.MinimumTip = 1_000
	}
	if cfg.FeeBasisPoints == 0 {
		cfg.FeeBasisPoints = 250
	}
	if cfg.EngagementPeriodLength == 0 {
		cfg.EngagementPeriodLength = 2_016
	}
	if cfg.Admins == nil {
		cfg.Admins = []string{}
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.FeeBasisPoints >= 10_000 {
		return fmt.Errorf("config: FeeBasisPoints must be below 10000")
	}
	if c.EngagementPeriodLength == 0 {
		return fmt.Errorf("config: EngagementPeriodLength must be positive")
	}
	if c.FeeRecipient != "" {
		if _, err := ParseAddress(c.FeeRecipient); err != nil {
			return fmt.Errorf("config: FeeRecipient: %w", err)
		}
	}
	for _, admin := range c.Admins {
		if _, err := ParseAddress(admin); err != nil {
			return fmt.Errorf("config: Admins: %w", err)
		}
	}
	return nil
}

// AdminAddresses decodes the configured administrator principals.
func (c *Config) AdminAddresses() ([][20]byte, error) {
	addrs := make([][20]byte, 0, len(c.Admins))
	for _, admin := range c.Admins {
		addr, err := ParseAddress(admin)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

// FeeRecipientAddress decodes the configured fee recipient. A zero
// address is returned when the field is unset.
func (c *Config) FeeRecipientAddress() ([20]byte, error) {
	if strings.TrimSpace(c.FeeRecipient) == "" {
		return [20]byte{}, nil
	}
	return ParseAddress(c.FeeRecipient)
}

// ParseAddress decodes a 0x-prefixed 20-byte hex principal.
func ParseAddress(raw string) ([20]byte, error) {
	var addr [20]byte
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	decoded, err := hex.DecodeString(trimmed)
	if err != nil {
		return addr, fmt.Errorf("invalid address %q: %w", raw, err)
	}
	if len(decoded) != len(addr) {
		return addr, fmt.Errorf("invalid address %q: want %d bytes, got %d", raw, len(addr), len(decoded))
	}
	copy(addr[:], decoded)
	return addr, nil
}
