package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.SearxURL == "" {
		// Support both SEARX_URL and SEARXNG_URL; prefer SEARX_URL if set
		v := os.Getenv("SEARX_URL")
		if v == "" {
			v = os.Getenv("SEARXNG_URL")
		}
		cfg.SearxURL = v
	}
	if cfg.SearxKey == "" {
		v := os.Getenv("SEARX_KEY")
		if v == "" {
			v = os.Getenv("SEARXNG_KEY")
		}
		cfg.SearxKey = v
	}
	if cfg.SearchFile == "" {
		cfg.SearchFile = os.Getenv("SEARCH_FILE")
	}
	if cfg.GeocodeURL == "" {
		cfg.GeocodeURL = os.Getenv("GEOCODE_URL")
	}
	if cfg.ForecastURL == "" {
		cfg.ForecastURL = os.Getenv("FORECAST_URL")
	}
	if cfg.WttrURL == "" {
		cfg.WttrURL = os.Getenv("WTTR_URL")
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = os.Getenv("CACHE_DIR")
	}

	if cfg.MaxResults == 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("MAX_RESULTS"))); err == nil && n > 0 {
			cfg.MaxResults = n
		}
	}
	if cfg.AttemptTimeout == 0 {
		if s := os.Getenv("ATTEMPT_TIMEOUT"); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				cfg.AttemptTimeout = d
			}
		}
	}

	if len(cfg.AllowedDomains) == 0 {
		cfg.AllowedDomains = splitDomains(os.Getenv("ALLOWED_DOMAINS"))
	}
	if len(cfg.BlockedDomains) == 0 {
		cfg.BlockedDomains = splitDomains(os.Getenv("BLOCKED_DOMAINS"))
	}

	setBool := func(dst *bool, envKey string) {
		if *dst {
			return
		}
		s := strings.ToLower(strings.TrimSpace(os.Getenv(envKey)))
		if s == "1" || s == "true" || s == "yes" || s == "on" {
			*dst = true
		}
	}
	setBool(&cfg.Verbose, "VERBOSE")
	setBool(&cfg.NoSafeSearch, "NO_SAFE_SEARCH")
}

func splitDomains(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
