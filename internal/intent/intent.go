// Package intent decides whether a chat message warrants an external lookup
// and what kind. The matching is a hand-tuned heuristic: false positives and
// negatives are acceptable, determinism is not negotiable.
package intent

import (
	"regexp"
	"strings"

	"github.com/hyperifyio/golookup/internal/settings"
)

// Category classifies what kind of lookup a message asks for.
type Category string

const (
	CategoryNone       Category = "none"
	CategoryWeather    Category = "weather"
	CategoryNews       Category = "news"
	CategoryHowto      Category = "howto"
	CategoryDefinition Category = "definition"
	CategoryPrice      Category = "price"
	CategoryGeneric    Category = "generic"
)

// triggerPhrases gate implicit lookups. Matched case-insensitively as
// substrings, first hit wins. Overlaps with the category tables are
// intentional and load-bearing; changing this list changes product behavior.
var triggerPhrases = []string{
	"what is",
	"what's",
	"who is",
	"weather in",
	"weather for",
	"temperature in",
	"latest",
	"current",
	"news about",
	"price of",
	"how much",
	"how to",
	"when did",
	"when was",
	"search for",
	"look up",
	"tell me about",
}

// triggerPatterns cover leadership/role questions that plain substrings miss.
var triggerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bpresident\b`),
	regexp.MustCompile(`(?i)\bprime minister\b`),
	regexp.MustCompile(`(?i)\bleader\b`),
	regexp.MustCompile(`(?i)\belected\b`),
}

// ShouldLookup reports whether the message warrants an implicit lookup under
// the given settings. Identical input and settings always yield the same
// answer.
func ShouldLookup(message string, s settings.InternetSettings) bool {
	if !s.Enabled || !s.AutoSearch {
		return false
	}
	m := strings.ToLower(message)
	for _, p := range triggerPhrases {
		if strings.Contains(m, p) {
			return true
		}
	}
	for _, re := range triggerPatterns {
		if re.MatchString(message) {
			return true
		}
	}
	return false
}

// categoryTokens is checked in order; within a row, first token hit wins.
// Weather outranks news so "current weather" lands in the weather path.
var categoryTokens = []struct {
	cat    Category
	tokens []string
}{
	{CategoryWeather, []string{"weather", "temperature", "forecast", "humidity", "rain", "snow", "sunny"}},
	{CategoryNews, []string{"latest", "current", "today", "news", "headline", "recent"}},
	{CategoryHowto, []string{"how to", "how do i", "how can i"}},
	{CategoryDefinition, []string{"what is", "what's", "who is", "define", "definition", "meaning of"}},
	{CategoryPrice, []string{"price", "cost", "how much", "buy"}},
}

// Classify returns the lookup category for a message that already passed the
// ShouldLookup gate. No token match falls back to generic.
func Classify(message string) Category {
	m := strings.ToLower(message)
	for _, row := range categoryTokens {
		for _, tok := range row.tokens {
			if strings.Contains(m, tok) {
				return row.cat
			}
		}
	}
	return CategoryGeneric
}
