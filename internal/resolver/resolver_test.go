package resolver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hyperifyio/golookup/internal/fetch"
	"github.com/hyperifyio/golookup/internal/settings"
	"github.com/hyperifyio/golookup/internal/source"
	"github.com/hyperifyio/golookup/internal/weather"
)

// failingSource always errors, standing in for an unreachable network tier.
type failingSource struct{ name string }

func (f *failingSource) Name() string { return f.name }
func (f *failingSource) Search(context.Context, string, int) ([]source.Result, error) {
	return nil, errors.New("connection refused")
}

// fixedSource returns a canned result set.
type fixedSource struct {
	name    string
	results []source.Result
}

func (f *fixedSource) Name() string { return f.name }
func (f *fixedSource) Search(context.Context, string, int) ([]source.Result, error) {
	return f.results, nil
}

// blockingSource waits until the context is done, to exercise cancellation.
type blockingSource struct{}

func (b *blockingSource) Name() string { return "blocking" }
func (b *blockingSource) Search(ctx context.Context, _ string, _ int) ([]source.Result, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

type failingWeather struct{}

func (f *failingWeather) Name() string { return "failing" }
func (f *failingWeather) Current(context.Context, string) (weather.Report, error) {
	return weather.Report{}, errors.New("boom")
}

func newResolver(tiers ...source.Source) *Resolver {
	return &Resolver{Settings: settings.Defaults(), SearchTiers: tiers}
}

func TestSearchWeb_AllTiersFail_SyntheticAnswers(t *testing.T) {
	r := newResolver(&failingSource{"primary"}, &failingSource{"secondary"})
	got, err := r.SearchWeb(context.Background(), "rust ownership", 3)
	if err != nil {
		t.Fatalf("chain must never surface a network error, got %v", err)
	}
	if len(got) == 0 || len(got) > 3 {
		t.Fatalf("expected 1-3 synthetic results, got %d", len(got))
	}
	for _, res := range got {
		if !res.Simulated {
			t.Fatalf("fallback result not flagged simulated: %+v", res)
		}
		if !strings.Contains(res.Snippet, "Simulated") {
			t.Fatalf("fallback snippet missing disclaimer: %q", res.Snippet)
		}
	}
}

func TestSearchWeb_FirstUsableTierWins(t *testing.T) {
	primary := &fixedSource{name: "primary", results: []source.Result{
		{Title: "P", URL: "https://example.com/p", Source: "primary"},
	}}
	secondary := &fixedSource{name: "secondary", results: []source.Result{
		{Title: "S", URL: "https://example.com/s", Source: "secondary"},
	}}
	r := newResolver(primary, secondary)
	got, err := r.SearchWeb(context.Background(), "q", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Source != "primary" {
		t.Fatalf("expected only the primary tier's results, got %+v", got)
	}
}

func TestSearchWeb_EmptyPrimaryFallsThrough(t *testing.T) {
	primary := &fixedSource{name: "primary"}
	secondary := &fixedSource{name: "secondary", results: []source.Result{
		{Title: "S", URL: "https://example.com/s", Source: "secondary"},
	}}
	r := newResolver(primary, secondary)
	got, err := r.SearchWeb(context.Background(), "q", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Source != "secondary" {
		t.Fatalf("zero-result primary should fall through, got %+v", got)
	}
}

func TestSearchWeb_PolicyFiltersEveryTier(t *testing.T) {
	primary := &fixedSource{name: "primary", results: []source.Result{
		{Title: "bad", URL: "https://malware-site.com/x"},
		{Title: "good", URL: "https://example.com/ok"},
	}}
	r := newResolver(primary)
	got, err := r.SearchWeb(context.Background(), "q", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, res := range got {
		if strings.Contains(res.URL, "malware") {
			t.Fatalf("policy-rejected URL leaked: %q", res.URL)
		}
	}
	if len(got) != 1 {
		t.Fatalf("expected the one passing result, got %+v", got)
	}
}

func TestSearchWeb_TruncatesWithoutDuplicatePadding(t *testing.T) {
	var results []source.Result
	for i := 0; i < 10; i++ {
		results = append(results, source.Result{
			Title: fmt.Sprintf("r%d", i),
			URL:   fmt.Sprintf("https://example.com/%d", i),
		})
	}
	// the same URL twice must collapse to one
	results = append(results, results[0])
	primary := &fixedSource{name: "primary", results: results}

	r := newResolver(primary)
	got, err := r.SearchWeb(context.Background(), "q", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected truncation to 3, got %d", len(got))
	}
	seen := map[string]bool{}
	for _, res := range got {
		if seen[res.URL] {
			t.Fatalf("duplicate URL in result set: %q", res.URL)
		}
		seen[res.URL] = true
	}
}

func TestSearchWeb_DisabledFailsFast(t *testing.T) {
	r := newResolver(&fixedSource{name: "primary"})
	r.Settings.Enabled = false
	if _, err := r.SearchWeb(context.Background(), "q", 3); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

func TestSearchWeb_CancelledBeforeTimeout(t *testing.T) {
	r := newResolver(&blockingSource{})
	r.AttemptTimeout = 5 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	start := time.Now()
	_, err := r.SearchWeb(ctx, "q", 3)
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("cancellation must not wait for the attempt timeout")
	}
}

func TestWeather_DisabledSurfacesError(t *testing.T) {
	r := &Resolver{Settings: settings.Defaults()}
	r.Settings.Enabled = false
	if _, err := r.Weather(context.Background(), "Anchorage, AK"); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

func TestWeather_FallsThroughToSynthetic(t *testing.T) {
	r := &Resolver{Settings: settings.Defaults(), WeatherTiers: []weather.Source{&failingWeather{}}}
	rep, err := r.Weather(context.Background(), "Anchorage, AK")
	if err != nil {
		t.Fatalf("weather chain must recover transient faults, got %v", err)
	}
	if !rep.Simulated {
		t.Fatalf("fallback report must be flagged simulated")
	}
	if !strings.Contains(rep.Sentence, "Anchorage") {
		t.Fatalf("report should mention the location: %q", rep.Sentence)
	}
}

func TestFetchURL_PolicyRejectionSurfaced(t *testing.T) {
	r := &Resolver{Settings: settings.Defaults()}
	if _, err := r.FetchURL(context.Background(), "https://malware-site.com/x"); !errors.Is(err, ErrDomainRejected) {
		t.Fatalf("expected ErrDomainRejected, got %v", err)
	}
	if _, err := r.FetchURL(context.Background(), "not a url"); !errors.Is(err, ErrDomainRejected) {
		t.Fatalf("unparseable URL must fail closed, got %v", err)
	}
}

func TestFetchURL_ExtractsAndCaps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><head><title>W</title></head><body><p>" + strings.Repeat("word ", 200) + "</p></body></html>"))
	}))
	defer srv.Close()

	r := &Resolver{
		Settings:     settings.Defaults(),
		Fetcher:      &fetch.Client{HTTPClient: srv.Client(), PerRequestTimeout: 2 * time.Second},
		MaxPageChars: 100,
	}
	c, err := r.FetchURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Title != "W" {
		t.Fatalf("unexpected title: %q", c.Title)
	}
	if len(c.Text) > 100 {
		t.Fatalf("text not capped: %d chars", len(c.Text))
	}
	if c.Simulated {
		t.Fatalf("real fetch must not be flagged simulated")
	}
}

func TestFetchURL_FailureYieldsPlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	r := &Resolver{
		Settings: settings.Defaults(),
		Fetcher:  &fetch.Client{HTTPClient: srv.Client(), PerRequestTimeout: 2 * time.Second},
	}
	c, err := r.FetchURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch faults must be recovered, got %v", err)
	}
	if !c.Simulated {
		t.Fatalf("placeholder must be flagged simulated")
	}
	if !strings.Contains(c.Text, "Simulated") {
		t.Fatalf("placeholder text missing disclaimer: %q", c.Text)
	}
}
