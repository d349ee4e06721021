// Package synthetic is the terminal tier of every fallback chain. It never
// fails and never touches the network: all output is derived from a hash of
// the input text, so identical input yields identical output, and every
// answer is explicitly labeled as simulated.
package synthetic

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/hyperifyio/golookup/internal/fetch"
	"github.com/hyperifyio/golookup/internal/intent"
	"github.com/hyperifyio/golookup/internal/source"
	"github.com/hyperifyio/golookup/internal/weather"
)

// Disclaimer is appended to every synthetic snippet and sentence so callers
// and tests can always tell simulated answers from real ones.
const Disclaimer = "(Simulated data — live sources were unavailable.)"

// SourceName tags synthetic results for observability.
const SourceName = "synthetic"

// hashOf sums character codes; stability matters here, quality does not.
func hashOf(s string) int {
	h := 0
	for _, r := range strings.ToLower(s) {
		h += int(r)
	}
	if h < 0 {
		h = -h
	}
	return h
}

// spread derives a value in [lo, hi] from the hash and a salt.
func spread(h, salt, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + (h*31+salt*17)%(hi-lo+1)
}

// ---- search ----

type resultTemplate struct {
	title   string // fmt with the query
	path    string
	snippet string // fmt with the query
}

var genericTemplates = []resultTemplate{
	{"Overview of %s", "overview", "An introductory overview of %s covering the essentials."},
	{"%s — a practical guide", "guide", "A practical walk-through of %s with worked examples."},
	{"%s explained", "explained", "Plain-language explanation of %s and the ideas behind it."},
	{"Frequently asked questions about %s", "faq", "Short answers to the questions most often asked about %s."},
}

var categoryTemplates = map[intent.Category][]resultTemplate{
	intent.CategoryWeather: {
		{"Weather outlook: %s", "weather/outlook", "Typical conditions and seasonal outlook for %s."},
		{"Climate summary for %s", "weather/climate", "Long-term climate averages relevant to %s."},
		{"Forecast discussion: %s", "weather/discussion", "What drives the local forecast around %s."},
	},
	intent.CategoryNews: {
		{"Latest developments: %s", "news/latest", "A roundup of recent developments related to %s."},
		{"%s in the headlines", "news/headlines", "Why %s has been making headlines lately."},
		{"Background briefing on %s", "news/briefing", "Context and background for recent coverage of %s."},
	},
	intent.CategoryHowto: {
		{"How to %s: step by step", "howto/steps", "A step-by-step approach to %s for beginners."},
		{"Common mistakes when you %s", "howto/mistakes", "Pitfalls people hit when they try to %s, and fixes."},
		{"Tools that help you %s", "howto/tools", "A short list of tools that make it easier to %s."},
	},
	intent.CategoryDefinition: {
		{"Definition: %s", "definition", "A concise definition of %s with usage notes."},
		{"%s — meaning and origin", "meaning", "Where the term %s comes from and how it is used."},
		{"%s in context", "context", "How %s relates to neighboring concepts."},
	},
	intent.CategoryPrice: {
		{"Price guide: %s", "price/guide", "Typical price ranges reported for %s."},
		{"Is %s worth it?", "price/value", "Value-for-money considerations when buying %s."},
		{"Where to compare prices for %s", "price/compare", "How to comparison-shop for %s effectively."},
	},
}

// synthetic results live on the reserved example domains so they pass any
// sane domain policy.
var syntheticHosts = []string{"www.example.com", "www.example.org"}

// SearchResults produces 2–4 templated results for the query, varying by
// category. Output is stable for identical input.
func SearchResults(query string, cat intent.Category) []source.Result {
	q := strings.TrimSpace(query)
	if q == "" {
		q = "your topic"
	}
	h := hashOf(q)
	flavored := categoryTemplates[cat]

	// Category templates first, topped up from the generic pool. Consecutive
	// indices keep the picks distinct, so no duplicate URLs are produced.
	n := spread(h, 1, 2, 4)
	picks := make([]resultTemplate, 0, n)
	for i := 0; i < n && i < len(flavored); i++ {
		picks = append(picks, flavored[(h+i)%len(flavored)])
	}
	for i := len(picks); i < n; i++ {
		picks = append(picks, genericTemplates[(h+i)%len(genericTemplates)])
	}

	out := make([]source.Result, 0, n)
	for i, tpl := range picks {
		host := syntheticHosts[(h+i)%len(syntheticHosts)]
		out = append(out, source.Result{
			Title:     fmt.Sprintf(tpl.title, q),
			URL:       fmt.Sprintf("https://%s/%s/%s", host, tpl.path, slugify(q)),
			Snippet:   fmt.Sprintf(tpl.snippet, q) + " " + Disclaimer,
			Source:    SourceName,
			Simulated: true,
		})
	}
	return out
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), "-")
	return url.PathEscape(s)
}

// ---- weather ----

var conditions = []string{
	"clear skies", "partly cloudy", "overcast", "light rain",
	"scattered showers", "breezy", "hazy sunshine",
}

type climate struct {
	markers []string
	minF    int
	maxF    int
}

// regional bias keeps the numbers plausible: a Florida-flavored location
// should not read as freezing.
var climates = []climate{
	{[]string{"florida", "miami", "texas", "arizona", "hawaii", "phoenix"}, 75, 95},
	{[]string{"alaska", "anchorage", "fairbanks", "yukon", "siberia"}, 5, 35},
	{[]string{"seattle", "london", "ireland", "scotland"}, 40, 60},
}

const defaultMinF, defaultMaxF = 45, 75

// trailing two-letter US state code means the asker expects US units.
var usStateSuffix = regexp.MustCompile(`[,\s][A-Za-z]{2}$`)

// WeatherReport produces a plausible, deterministic report for the location.
func WeatherReport(location string) weather.Report {
	loc := strings.TrimSpace(location)
	if loc == "" {
		loc = "your area"
	}
	h := hashOf(loc)
	cond := conditions[h%len(conditions)]

	minF, maxF := defaultMinF, defaultMaxF
	lower := strings.ToLower(loc)
	for _, c := range climates {
		for _, m := range c.markers {
			if strings.Contains(lower, m) {
				minF, maxF = c.minF, c.maxF
				break
			}
		}
	}
	tempF := spread(h, 2, minF, maxF)
	humidity := spread(h, 3, 30, 90)
	windMph := spread(h, 4, 2, 25)

	var sentence string
	if usStateSuffix.MatchString(loc) {
		sentence = fmt.Sprintf("Current weather in %s: %s, %d°F, humidity %d%%, wind %d mph. %s",
			loc, cond, tempF, humidity, windMph, Disclaimer)
	} else {
		tempC := (tempF - 32) * 5 / 9
		windKmh := windMph * 16 / 10
		sentence = fmt.Sprintf("Current weather in %s: %s, %d°C, humidity %d%%, wind %d km/h. %s",
			loc, cond, tempC, humidity, windKmh, Disclaimer)
	}
	return weather.Report{
		Location:   loc,
		Conditions: cond,
		Sentence:   sentence,
		Simulated:  true,
	}
}

// ---- page content ----

// PageContent is the placeholder a failed fetch falls back to.
func PageContent(rawURL string) fetch.Content {
	return fetch.Content{
		URL:   rawURL,
		Title: "Content unavailable",
		Text: fmt.Sprintf("The page at %s could not be retrieved. No live content is available for this URL right now. %s",
			rawURL, Disclaimer),
		FetchedAt: time.Now().UTC(),
		Simulated: true,
	}
}
