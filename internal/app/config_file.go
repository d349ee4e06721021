package app

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file YAML configuration schema. Nested
// sections map naturally onto flags and env variables.
type FileConfig struct {
	Searx struct {
		URL string `yaml:"url"`
		Key string `yaml:"key"`
		UA  string `yaml:"ua"`
	} `yaml:"searx"`

	Search struct {
		File string `yaml:"file"`
	} `yaml:"search"`

	Weather struct {
		GeocodeURL  string `yaml:"geocodeURL"`
		ForecastURL string `yaml:"forecastURL"`
		WttrURL     string `yaml:"wttrURL"`
	} `yaml:"weather"`

	Chain struct {
		AttemptTimeout time.Duration `yaml:"attemptTimeout"`
		MaxPageChars   int           `yaml:"maxPageChars"`
	} `yaml:"chain"`

	Settings struct {
		MaxResults     int      `yaml:"maxResults"`
		NoSafeSearch   bool     `yaml:"noSafeSearch"`
		AllowedDomains []string `yaml:"allowedDomains"`
		BlockedDomains []string `yaml:"blockedDomains"`
	} `yaml:"settings"`

	Cache struct {
		Dir string `yaml:"dir"`
	} `yaml:"cache"`

	Verbose bool `yaml:"verbose"`
}

// LoadConfigFile reads a YAML config file. A missing path is an error; call
// sites decide whether the file is optional.
func LoadConfigFile(path string) (*FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc FileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}

// MergeFileConfig fills unset cfg fields from fc. Flags and env win over the
// file, so only zero-valued fields are touched.
func MergeFileConfig(cfg *Config, fc *FileConfig) {
	if cfg == nil || fc == nil {
		return
	}
	if cfg.SearxURL == "" {
		cfg.SearxURL = fc.Searx.URL
	}
	if cfg.SearxKey == "" {
		cfg.SearxKey = fc.Searx.Key
	}
	if cfg.SearxUA == "" {
		cfg.SearxUA = fc.Searx.UA
	}
	if cfg.SearchFile == "" {
		cfg.SearchFile = fc.Search.File
	}
	if cfg.GeocodeURL == "" {
		cfg.GeocodeURL = fc.Weather.GeocodeURL
	}
	if cfg.ForecastURL == "" {
		cfg.ForecastURL = fc.Weather.ForecastURL
	}
	if cfg.WttrURL == "" {
		cfg.WttrURL = fc.Weather.WttrURL
	}
	if cfg.AttemptTimeout == 0 {
		cfg.AttemptTimeout = fc.Chain.AttemptTimeout
	}
	if cfg.MaxPageChars == 0 {
		cfg.MaxPageChars = fc.Chain.MaxPageChars
	}
	if cfg.MaxResults == 0 {
		cfg.MaxResults = fc.Settings.MaxResults
	}
	if !cfg.NoSafeSearch {
		cfg.NoSafeSearch = fc.Settings.NoSafeSearch
	}
	if len(cfg.AllowedDomains) == 0 {
		cfg.AllowedDomains = fc.Settings.AllowedDomains
	}
	if len(cfg.BlockedDomains) == 0 {
		cfg.BlockedDomains = fc.Settings.BlockedDomains
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if !cfg.Verbose {
		cfg.Verbose = fc.Verbose
	}
}
