// Package location pulls a place phrase out of a weather-flavored message.
package location

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// placeCapture stops at the usual sentence terminators. A comma ends the
// capture too, except when it introduces a trailing two-letter region code
// ("Trevose, PA") which belongs to the place.
const placeCapture = `([^?.!,]+(?:,\s*[A-Za-z]{2}\b)?)`

// Patterns are tried in order; the first match wins.
var patterns = []struct {
	re         *regexp.Regexp
	minCapture int
}{
	{regexp.MustCompile(`(?i)what(?:'s| is) the weather (?:in|for) ` + placeCapture), 1},
	{regexp.MustCompile(`(?i)how(?:'s| is) the weather (?:in|for) ` + placeCapture), 1},
	{regexp.MustCompile(`(?i)\bweather (?:in|for) ` + placeCapture), 1},
	{regexp.MustCompile(`(?i)\btemperature (?:in|for) ` + placeCapture), 1},
	// Bare "weather X" fallback; short captures are noise ("weather is").
	{regexp.MustCompile(`(?i)\bweather ` + placeCapture), 3},
}

// stateNames expands the handful of US state abbreviations the chat corpus
// actually produced; everything else is passed through untouched.
var stateNames = map[string]string{
	"PA": "Pennsylvania",
	"CA": "California",
	"NY": "New York",
	"TX": "Texas",
	"FL": "Florida",
}

// Extract returns the normalized location phrase and whether one was found.
func Extract(message string) (string, bool) {
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		captured := strings.TrimSpace(m[1])
		if len(captured) < p.minCapture {
			continue
		}
		return Normalize(captured), true
	}
	return "", false
}

// Normalize cleans a raw location phrase: whitespace collapsed, comma
// spacing fixed, the trailing state abbreviation expanded, and all-lowercase
// segments title-cased. Purely textual and idempotent.
func Normalize(loc string) string {
	loc = collapseSpaces(strings.TrimSpace(loc))
	parts := strings.Split(loc, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	// drop empties left by stray commas
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	parts = kept
	if len(parts) > 0 {
		last := strings.ToUpper(parts[len(parts)-1])
		if full, ok := stateNames[last]; ok {
			parts[len(parts)-1] = full
		}
	}
	titler := cases.Title(language.English)
	for i, p := range parts {
		if p == strings.ToLower(p) {
			parts[i] = titler.String(p)
		}
	}
	return strings.Join(parts, ", ")
}

func collapseSpaces(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return b.String()
}
