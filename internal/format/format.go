// Package format renders resolver output into the plain-text blocks a prompt
// assembler embeds. All functions are pure and order-preserving.
package format

import (
	"fmt"
	"strings"

	"github.com/hyperifyio/golookup/internal/fetch"
	"github.com/hyperifyio/golookup/internal/source"
)

// NoResults is the fixed sentence returned for an empty result set.
const NoResults = "No results found."

// Results renders an enumerated list, one group per result: index, title,
// URL, snippet. Input order is preserved.
func Results(results []source.Result) string {
	if len(results) == 0 {
		return NoResults
	}
	var b strings.Builder
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Title)
		fmt.Fprintf(&b, "   %s\n", r.URL)
		if r.Snippet != "" {
			fmt.Fprintf(&b, "   %s\n", r.Snippet)
		}
		if r.Timestamp != "" {
			fmt.Fprintf(&b, "   (%s)\n", r.Timestamp)
		}
		if i < len(results)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// WebPage renders fetched page content with its title and source URL.
func WebPage(c fetch.Content) string {
	var b strings.Builder
	title := c.Title
	if title == "" {
		title = c.URL
	}
	fmt.Fprintf(&b, "%s\n%s\n\n%s\n", title, c.URL, c.Text)
	return b.String()
}
