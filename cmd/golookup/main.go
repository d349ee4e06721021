package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/golookup/internal/app"
	"github.com/hyperifyio/golookup/internal/resolver"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath     string
		searxURL       string
		searxKey       string
		searxUA        string
		searchFile     string
		geocodeURL     string
		forecastURL    string
		wttrURL        string
		attemptTimeout time.Duration
		maxResults     int
		maxPageChars   int
		domainsAllow   string
		domainsDeny    string
		noSafeSearch   bool
		cacheDir       string
		fetchURL       string
		pdfPath        string
		verbose        bool
	)

	flag.StringVar(&configPath, "config", "", "Path to optional YAML config file")
	flag.StringVar(&searxURL, "searx.url", "", "SearxNG base URL (primary search tier)")
	flag.StringVar(&searxKey, "searx.key", "", "SearxNG API key (optional)")
	flag.StringVar(&searxUA, "searx.ua", "", "Custom User-Agent for outbound requests")
	flag.StringVar(&searchFile, "search.file", "", "Path to JSON file for the offline search tier")
	flag.StringVar(&geocodeURL, "weather.geocode", "", "Geocoding endpoint override")
	flag.StringVar(&forecastURL, "weather.forecast", "", "Forecast endpoint override")
	flag.StringVar(&wttrURL, "weather.wttr", "", "wttr.in base URL override")
	flag.DurationVar(&attemptTimeout, "timeout", 0, "Per-source attempt timeout (default 8s)")
	flag.IntVar(&maxResults, "max.results", 0, "Maximum results per lookup")
	flag.IntVar(&maxPageChars, "max.pageChars", 0, "Maximum characters of extracted page text")
	flag.StringVar(&domainsAllow, "domains.allow", "", "Comma-separated allow-list of host substrings")
	flag.StringVar(&domainsDeny, "domains.deny", "", "Comma-separated block-list of host substrings")
	flag.BoolVar(&noSafeSearch, "nosafesearch", false, "Disable safe-search hints to providers")
	flag.StringVar(&cacheDir, "cache.dir", "", "Directory for the fetched-page cache (empty disables)")
	flag.StringVar(&fetchURL, "fetch", "", "Fetch and extract one URL instead of answering a message")
	flag.StringVar(&pdfPath, "pdf", "", "Also write the lookup context to this PDF path")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		SearxURL:       searxURL,
		SearxKey:       searxKey,
		SearxUA:        searxUA,
		SearchFile:     searchFile,
		GeocodeURL:     geocodeURL,
		ForecastURL:    forecastURL,
		WttrURL:        wttrURL,
		AttemptTimeout: attemptTimeout,
		MaxResults:     maxResults,
		MaxPageChars:   maxPageChars,
		NoSafeSearch:   noSafeSearch,
		CacheDir:       cacheDir,
		Verbose:        verbose,
	}
	if domainsAllow != "" {
		cfg.AllowedDomains = splitCSV(domainsAllow)
	}
	if domainsDeny != "" {
		cfg.BlockedDomains = splitCSV(domainsDeny)
	}

	app.ApplyEnvToConfig(&cfg)
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("config file")
		}
		app.MergeFileConfig(&cfg, fc)
	}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	engine := app.New(cfg, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if fetchURL != "" {
		content, err := engine.FetchURL(ctx, fetchURL)
		if err != nil {
			log.Error().Err(err).Msg("fetch failed")
			os.Exit(1)
		}
		fmt.Println(content.Title)
		fmt.Println(content.URL)
		fmt.Println()
		fmt.Println(content.Text)
		return
	}

	message := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if message == "" {
		fmt.Fprintln(os.Stderr, "usage: golookup [flags] <message>")
		os.Exit(2)
	}

	out, err := engine.Lookup(ctx, message)
	switch {
	case errors.Is(err, resolver.ErrCancelled):
		log.Warn().Msg("lookup cancelled")
		os.Exit(130)
	case errors.Is(err, resolver.ErrDisabled):
		log.Error().Msg("external lookups are disabled in settings")
		os.Exit(1)
	case err != nil:
		log.Error().Err(err).Msg("lookup failed")
		os.Exit(1)
	}

	if !out.Performed {
		fmt.Println("No lookup was warranted for this message.")
		return
	}
	fmt.Println(out.Context)
	fmt.Fprintln(os.Stderr, out.Summary)

	if pdfPath != "" {
		if err := app.WriteReportPDF(message, out.Context, pdfPath); err != nil {
			log.Error().Err(err).Str("path", pdfPath).Msg("pdf export failed")
			os.Exit(1)
		}
		log.Info().Str("path", pdfPath).Msg("pdf written")
	}
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
