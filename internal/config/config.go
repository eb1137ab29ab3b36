// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"greenwatt/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server" yaml:"server"`

	// Market contains market data settings
	Market MarketConfig `json:"market" yaml:"market"`

	// Portal contains public data portal settings
	Portal PortalConfig `json:"portal" yaml:"portal"`

	// Database contains price history storage settings
	Database DatabaseConfig `json:"database" yaml:"database"`

	// Calc contains calculation preset settings
	Calc CalcConfig `json:"calc" yaml:"calc"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" yaml:"addr"`
}

// MarketConfig contains market data settings
type MarketConfig struct {
	// FixturePath is the market snapshot JSON fixture
	FixturePath string `json:"fixture_path" yaml:"fixture_path"`

	// ScoresPath is the regional location-score JSON fixture
	ScoresPath string `json:"scores_path" yaml:"scores_path"`

	// RefreshCron schedules periodic market refresh
	RefreshCron string `json:"refresh_cron" yaml:"refresh_cron"`
}

// PortalConfig contains public data portal settings.
// Empty keys switch the corresponding fetcher to its fallback payload.
type PortalConfig struct {
	// EnergyStatusURL is the data.go.kr power supply/demand endpoint
	EnergyStatusURL string `json:"energy_status_url" yaml:"energy_status_url"`

	// EnergyStatusKey is the data.go.kr service key
	EnergyStatusKey string `json:"energy_status_key" yaml:"energy_status_key"`

	// NaverClientID authenticates the news search API
	NaverClientID string `json:"naver_client_id" yaml:"naver_client_id"`

	// NaverClientSecret authenticates the news search API
	NaverClientSecret string `json:"naver_client_secret" yaml:"naver_client_secret"`

	// BizinfoURL is the policy program endpoint
	BizinfoURL string `json:"bizinfo_url" yaml:"bizinfo_url"`

	// BizinfoKey is the policy program service key
	BizinfoKey string `json:"bizinfo_key" yaml:"bizinfo_key"`

	// TimeoutSeconds bounds each portal request
	TimeoutSeconds int `json:"timeout_seconds" yaml:"timeout_seconds"`
}

// DatabaseConfig contains price history storage settings
type DatabaseConfig struct {
	// SQLitePath is the price history database; empty disables recording
	SQLitePath string `json:"sqlite_path" yaml:"sqlite_path"`
}

// CalcConfig contains calculation preset settings
type CalcConfig struct {
	// PresetFile is an optional HCL preset file
	PresetFile string `json:"preset_file" yaml:"preset_file"`

	// DefaultPreset is the preset applied when a request names none
	DefaultPreset string `json:"default_preset" yaml:"default_preset"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr: ":8080",
		},
		Market: MarketConfig{
			FixturePath: "data/market-data.json",
			ScoresPath:  "data/green-check.json",
			RefreshCron: "@hourly",
		},
		Portal: PortalConfig{
			EnergyStatusURL: "http://apis.data.go.kr/B552115/pwr_stat_info_pwr_use_state/get_pwr_stat_info_pwr_use_state",
			BizinfoURL:      "https://www.bizinfo.go.kr/uss/rss/bizinfoApi.do",
			TimeoutSeconds:  10,
		},
		Calc: CalcConfig{
			DefaultPreset: "default",
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath is the configuration file consulted when none is named
const DefaultPath = "greenwatt.json"

// Load loads configuration from a JSON or YAML file, then applies
// environment variable overrides. A missing file is an error; the
// implicit lookup that tolerates absence is LoadDefault.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, err
	}

	applyEnv(config)
	return config, nil
}

// LoadDefault loads DefaultPath when it exists and falls back to the
// built-in defaults, environment overrides included, when it does not.
func LoadDefault() (*Config, error) {
	config, err := Load(DefaultPath)
	if err != nil && os.IsNotExist(err) {
		config = Default()
		applyEnv(config)
		return config, nil
	}
	return config, err
}

func applyEnv(config *Config) {
	if v := os.Getenv("GREENWATT_ADDR"); v != "" {
		config.Server.Addr = v
	}
	if v := os.Getenv("DATA_GO_KR_API_KEY"); v != "" {
		config.Portal.EnergyStatusKey = v
	}
	if v := os.Getenv("NAVER_CLIENT_ID"); v != "" {
		config.Portal.NaverClientID = v
	}
	if v := os.Getenv("NAVER_CLIENT_SECRET"); v != "" {
		config.Portal.NaverClientSecret = v
	}
	if v := os.Getenv("BIZINFO_API_KEY"); v != "" {
		config.Portal.BizinfoKey = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		config.Database.SQLitePath = v
	}
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
