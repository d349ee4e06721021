// Package app wires the lookup engine together and exposes the façade the
// prompt assembler and settings UI call.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/golookup/internal/cache"
	"github.com/hyperifyio/golookup/internal/fetch"
	"github.com/hyperifyio/golookup/internal/format"
	"github.com/hyperifyio/golookup/internal/intent"
	"github.com/hyperifyio/golookup/internal/location"
	"github.com/hyperifyio/golookup/internal/resolver"
	"github.com/hyperifyio/golookup/internal/settings"
	"github.com/hyperifyio/golookup/internal/source"
	"github.com/hyperifyio/golookup/internal/weather"
)

// Outcome is what a lookup hands back to the prompt assembler. Context is
// the text block to embed; Summary is a one-line description of what
// happened. Performed is false when the intent gate decided against a
// lookup, in which case both strings are empty.
type Outcome struct {
	Performed bool
	Category  intent.Category
	Context   string
	Summary   string
}

// App is the engine façade. The settings store is injected so a UI
// collaborator can share it.
type App struct {
	cfg        Config
	store      *settings.Store
	httpClient *http.Client
	pageCache  *cache.PageCache
}

// New builds an App around the given store. A nil store gets defaults.
func New(cfg Config, store *settings.Store) *App {
	if store == nil {
		initial := settings.Defaults()
		if cfg.MaxResults > 0 {
			initial.MaxResults = cfg.MaxResults
		}
		if cfg.NoSafeSearch {
			initial.SafeSearch = false
		}
		if len(cfg.AllowedDomains) > 0 {
			initial.AllowedDomains = cfg.AllowedDomains
		}
		if len(cfg.BlockedDomains) > 0 {
			initial.BlockedDomains = cfg.BlockedDomains
		}
		store = settings.NewStore(initial)
	}
	a := &App{cfg: cfg, store: store, httpClient: newLookupHTTPClient()}
	if cfg.CacheDir != "" {
		a.pageCache = &cache.PageCache{Dir: cfg.CacheDir}
	}
	return a
}

// Settings exposes the store for the settings UI collaborator.
func (a *App) Settings() *settings.Store { return a.store }

// Lookup classifies the message and, when warranted, resolves it through the
// matching fallback chain. Network faults never escape: the worst case is a
// clearly labeled simulated answer. The returned error is limited to
// disabled and cancelled; for anything else the Outcome carries a
// best-effort string.
func (a *App) Lookup(ctx context.Context, message string) (Outcome, error) {
	st := a.store.Get()
	logger := log.With().Str("lookup_id", uuid.NewString()).Logger()

	if !intent.ShouldLookup(message, st) {
		logger.Debug().Msg("intent gate declined lookup")
		return Outcome{Performed: false, Category: intent.CategoryNone}, nil
	}
	cat := intent.Classify(message)
	res := a.newResolver(st)

	switch cat {
	case intent.CategoryWeather:
		loc, found := location.Extract(message)
		if !found {
			// Weather-flavored but no place named; a generic search answers better.
			break
		}
		rep, err := res.Weather(ctx, loc)
		if err != nil {
			return Outcome{Performed: true, Category: cat}, err
		}
		logger.Info().Str("location", loc).Bool("simulated", rep.Simulated).Msg("weather lookup resolved")
		return Outcome{
			Performed: true,
			Category:  cat,
			Context:   rep.Sentence,
			Summary:   weatherSummary(loc, rep),
		}, nil
	}

	results, err := res.SearchWeb(ctx, message, st.MaxResults)
	if err != nil {
		return Outcome{Performed: true, Category: cat}, err
	}
	logger.Info().Int("results", len(results)).Str("category", string(cat)).Msg("search lookup resolved")
	return Outcome{
		Performed: true,
		Category:  cat,
		Context:   format.Results(results),
		Summary:   searchSummary(message, results),
	}, nil
}

// LookupText is the tolerant variant for callers that can only embed text:
// every error except cancellation is flattened into a best-effort string.
func (a *App) LookupText(ctx context.Context, message string) (string, error) {
	out, err := a.Lookup(ctx, message)
	switch {
	case err == nil:
		return out.Context, nil
	case errors.Is(err, resolver.ErrCancelled):
		return "", err
	case errors.Is(err, resolver.ErrDisabled):
		return "External lookups are currently disabled.", nil
	default:
		return format.NoResults, nil
	}
}

// FetchURL resolves one page through the fetch chain using current settings.
func (a *App) FetchURL(ctx context.Context, rawURL string) (fetch.Content, error) {
	return a.newResolver(a.store.Get()).FetchURL(ctx, rawURL)
}

// newResolver builds the per-call resolver from a settings snapshot. Tiers
// appear in their fixed priority order: configured SearxNG first, then
// DuckDuckGo, then the optional file fixture; synthesis is implicit.
func (a *App) newResolver(st settings.InternetSettings) *resolver.Resolver {
	var tiers []source.Source
	if a.cfg.SearxURL != "" {
		tiers = append(tiers, &source.SearxNG{
			BaseURL:    a.cfg.SearxURL,
			APIKey:     a.cfg.SearxKey,
			SafeSearch: st.SafeSearch,
			UserAgent:  a.userAgent(),
			HTTPClient: a.httpClient,
		})
	}
	tiers = append(tiers, &source.DuckDuckGo{
		BaseURL:    a.cfg.DDGURL,
		UserAgent:  a.userAgent(),
		HTTPClient: a.httpClient,
	})
	if a.cfg.SearchFile != "" {
		tiers = append(tiers, &source.File{Path: a.cfg.SearchFile})
	}

	weatherTiers := []weather.Source{
		&weather.OpenMeteo{
			GeocodeURL:  a.cfg.GeocodeURL,
			ForecastURL: a.cfg.ForecastURL,
			UserAgent:   a.userAgent(),
			HTTPClient:  a.httpClient,
		},
		&weather.Wttr{
			BaseURL:    a.cfg.WttrURL,
			UserAgent:  a.userAgent(),
			HTTPClient: a.httpClient,
		},
	}

	return &resolver.Resolver{
		Settings:     st,
		SearchTiers:  tiers,
		WeatherTiers: weatherTiers,
		Fetcher: &fetch.Client{
			HTTPClient:        a.httpClient,
			UserAgent:         a.userAgent(),
			MaxAttempts:       2,
			PerRequestTimeout: a.cfg.AttemptTimeout,
			Cache:             a.pageCache,
		},
		AttemptTimeout: a.cfg.AttemptTimeout,
		MaxPageChars:   a.cfg.MaxPageChars,
	}
}

func (a *App) userAgent() string {
	if a.cfg.SearxUA != "" {
		return a.cfg.SearxUA
	}
	return "golookup/1.0 (+https://github.com/hyperifyio/golookup)"
}

func weatherSummary(loc string, rep weather.Report) string {
	if rep.Simulated {
		return fmt.Sprintf("Simulated weather for %s.", loc)
	}
	return fmt.Sprintf("Current weather for %s.", loc)
}

func searchSummary(query string, results []source.Result) string {
	if len(results) == 0 {
		return fmt.Sprintf("No results for %q.", strings.TrimSpace(query))
	}
	simulated := 0
	for _, r := range results {
		if r.Simulated {
			simulated++
		}
	}
	if simulated == len(results) {
		return fmt.Sprintf("%d simulated results for %q.", len(results), strings.TrimSpace(query))
	}
	return fmt.Sprintf("%d results for %q.", len(results), strings.TrimSpace(query))
}
