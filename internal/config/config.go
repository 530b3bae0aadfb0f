package config

import "github.com/hance08/concil/internal/constants"

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Lookup     LookupConfig   `mapstructure:"lookup"`
	Gateway    GatewayConfig  `mapstructure:"gateway"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	Input     string `mapstructure:"input"`
	OutputDir string `mapstructure:"output_dir"`
}

type LookupConfig struct {
	DelayMs int `mapstructure:"delay_ms"`
}

type GatewayConfig struct {
	Mode           string  `mapstructure:"mode"`
	DivergenceRate float64 `mapstructure:"divergence_rate"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Prefix     string `mapstructure:"prefix"`
	TimeFormat string `mapstructure:"time_format"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{
			Input:     "data/vendas.xlsx",
			OutputDir: "output",
		},
		Lookup: LookupConfig{DelayMs: constants.DefaultLookupDelayMs},
		Gateway: GatewayConfig{
			Mode:           "mock",
			DivergenceRate: constants.DefaultDivergence,
			TimeoutSeconds: constants.DefaultPortalTimeout,
		},
		Log: LogConfig{
			Level:      "warn",
			Format:     "text",
			Prefix:     constants.AppName,
			TimeFormat: "15:04:05",
		},
	}
}
