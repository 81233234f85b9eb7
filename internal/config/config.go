package config

import "github.com/passbook-cli/passbook/internal/ledger"

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// DefaultsConfig seeds the shared ledger settings on first run. Once the
// ledger has issued a receipt, the persisted state is authoritative.
type DefaultsConfig struct {
	InterestRate float64        `mapstructure:"interest_rate"`
	TimeZone     TimeZoneConfig `mapstructure:"timezone"`
}

// TimeZoneConfig is a named UTC offset; an empty name means UTC.
type TimeZoneConfig struct {
	Name    string `mapstructure:"name"`
	Hours   int    `mapstructure:"hours"`
	Minutes int    `mapstructure:"minutes"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{InterestRate: ledger.DefaultInterestRate},
	}
}
