package app

import "time"

// Config holds runtime configuration for the lookup engine.
type Config struct {
	// Search
	SearxURL string
	SearxKey string
	SearxUA  string
	DDGURL   string // override for tests; empty means the public API
	// SearchFile points at a JSON fixture served as an extra offline tier.
	SearchFile string

	// Weather
	GeocodeURL  string
	ForecastURL string
	WttrURL     string

	// Chain behavior
	AttemptTimeout time.Duration
	MaxPageChars   int

	// Initial settings overrides (zero values keep the defaults)
	MaxResults     int
	AllowedDomains []string
	BlockedDomains []string
	NoSafeSearch   bool

	// Infra
	CacheDir string
	Verbose  bool
}
