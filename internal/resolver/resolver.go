// Package resolver drives each lookup through its fallback chain: sources
// are attempted in a fixed declared order with a per-attempt timeout, every
// non-terminal failure is swallowed, and the synthetic tier at the end cannot
// fail. Callers never see a raw network error.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/golookup/internal/extract"
	"github.com/hyperifyio/golookup/internal/fetch"
	"github.com/hyperifyio/golookup/internal/intent"
	"github.com/hyperifyio/golookup/internal/policy"
	"github.com/hyperifyio/golookup/internal/settings"
	"github.com/hyperifyio/golookup/internal/source"
	"github.com/hyperifyio/golookup/internal/synthetic"
	"github.com/hyperifyio/golookup/internal/weather"
)

// Error taxonomy. Everything else that can go wrong is recovered internally.
var (
	// ErrDisabled reports the master switch is off; misconfiguration, not a fault.
	ErrDisabled = errors.New("internet access is disabled")
	// ErrDomainRejected reports a URL refused by the domain policy.
	ErrDomainRejected = errors.New("url rejected by domain policy")
	// ErrCancelled reports a caller-initiated abort; distinct from any answer.
	ErrCancelled = errors.New("lookup cancelled")
)

const (
	defaultAttemptTimeout = 8 * time.Second
	defaultMaxPageChars   = 8000
)

// Resolver is a per-call view over one settings snapshot. Construct a fresh
// one for each lookup so settings changes take effect immediately.
type Resolver struct {
	Settings settings.InternetSettings
	// SearchTiers and WeatherTiers are attempted in slice order. The
	// synthetic tier is implicit and always last; it is not listed here.
	SearchTiers  []source.Source
	WeatherTiers []weather.Source
	Fetcher      *fetch.Client
	// AttemptTimeout bounds each tier attempt. Zero means the 8s default.
	AttemptTimeout time.Duration
	// MaxPageChars caps extracted page text. Zero means the default.
	MaxPageChars int
}

func (r *Resolver) attemptTimeout() time.Duration {
	if r.AttemptTimeout > 0 {
		return r.AttemptTimeout
	}
	return defaultAttemptTimeout
}

// SearchWeb resolves a query through the search chain. The returned slice is
// never empty on a nil error: when every network tier fails or yields
// nothing, the synthetic tier answers. maxResults <= 0 falls back to the
// settings value, clamped to at least 1.
func (r *Resolver) SearchWeb(ctx context.Context, query string, maxResults int) ([]source.Result, error) {
	if !r.Settings.Enabled {
		return nil, ErrDisabled
	}
	if maxResults <= 0 {
		maxResults = r.Settings.MaxResults
	}
	if maxResults < 1 {
		maxResults = 1
	}
	rules := policy.FromSettings(r.Settings)

	for _, tier := range r.SearchTiers {
		results, err := r.trySearch(ctx, tier, query, maxResults)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %v", ErrCancelled, context.Cause(ctx))
			}
			log.Warn().Err(err).Str("source", tier.Name()).Str("query", query).Msg("search tier failed; falling through")
			continue
		}
		filtered := rules.Filter(dedupe(results))
		if len(filtered) > 0 {
			return truncate(filtered, maxResults), nil
		}
		log.Debug().Str("source", tier.Name()).Str("query", query).Msg("search tier returned nothing usable")
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrCancelled, context.Cause(ctx))
	}

	cat := intent.Classify(query)
	synth := rules.Filter(synthetic.SearchResults(query, cat))
	return truncate(synth, maxResults), nil
}

func (r *Resolver) trySearch(ctx context.Context, tier source.Source, query string, limit int) ([]source.Result, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, r.attemptTimeout())
	defer cancel()
	return tier.Search(attemptCtx, query, limit)
}

// Weather resolves current conditions for a location. This is the one chain
// allowed to surface ErrDisabled; transient faults still fall through to the
// synthetic report.
func (r *Resolver) Weather(ctx context.Context, location string) (weather.Report, error) {
	if !r.Settings.Enabled {
		return weather.Report{}, ErrDisabled
	}
	for _, tier := range r.WeatherTiers {
		attemptCtx, cancel := context.WithTimeout(ctx, r.attemptTimeout())
		rep, err := tier.Current(attemptCtx, location)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return weather.Report{}, fmt.Errorf("%w: %v", ErrCancelled, context.Cause(ctx))
			}
			log.Warn().Err(err).Str("source", tier.Name()).Str("location", location).Msg("weather tier failed; falling through")
			continue
		}
		return rep, nil
	}
	if ctx.Err() != nil {
		return weather.Report{}, fmt.Errorf("%w: %v", ErrCancelled, context.Cause(ctx))
	}
	return synthetic.WeatherReport(location), nil
}

// FetchURL retrieves and extracts one page. Policy rejection is surfaced;
// any retrieval fault falls through to a synthetic placeholder.
func (r *Resolver) FetchURL(ctx context.Context, rawURL string) (fetch.Content, error) {
	if !r.Settings.Enabled {
		return fetch.Content{}, ErrDisabled
	}
	rules := policy.FromSettings(r.Settings)
	if !rules.IsAllowed(rawURL) {
		return fetch.Content{}, fmt.Errorf("%w: %s", ErrDomainRejected, rawURL)
	}
	fetcher := r.Fetcher
	if fetcher == nil {
		fetcher = &fetch.Client{PerRequestTimeout: r.attemptTimeout()}
	}

	attemptCtx, cancel := context.WithTimeout(ctx, r.attemptTimeout())
	defer cancel()
	body, _, err := fetcher.Get(attemptCtx, rawURL)
	if err != nil {
		if ctx.Err() != nil {
			return fetch.Content{}, fmt.Errorf("%w: %v", ErrCancelled, context.Cause(ctx))
		}
		log.Warn().Err(err).Str("url", rawURL).Msg("fetch failed; serving placeholder")
		return synthetic.PageContent(rawURL), nil
	}

	doc := extract.FromHTML(body)
	text := doc.Text
	max := r.MaxPageChars
	if max <= 0 {
		max = defaultMaxPageChars
	}
	if len(text) > max {
		text = text[:max]
	}
	return fetch.Content{
		URL:       rawURL,
		Title:     doc.Title,
		Text:      text,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// dedupe canonicalizes URLs (lowercase host, fragment and tracking params
// stripped) and drops exact repeats, preserving first-seen order.
func dedupe(in []source.Result) []source.Result {
	seen := make(map[string]struct{}, len(in))
	out := make([]source.Result, 0, len(in))
	for _, r := range in {
		if r.URL == "" {
			continue
		}
		u, err := url.Parse(r.URL)
		if err != nil {
			continue
		}
		canonicalize(u)
		key := u.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		r.URL = key
		out = append(out, r)
	}
	return out
}

func canonicalize(u *url.URL) {
	u.Fragment = ""
	u.Host = strings.ToLower(u.Host)
	q := u.Query()
	for _, p := range []string{"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content", "gclid", "fbclid"} {
		q.Del(p)
	}
	u.RawQuery = q.Encode()
}

func truncate(in []source.Result, max int) []source.Result {
	if len(in) <= max {
		return in
	}
	return in[:max]
}
