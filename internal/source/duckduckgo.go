package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultDuckDuckGoURL = "https://api.duckduckgo.com/"

// DuckDuckGo queries the DuckDuckGo instant-answer API. It needs no key,
// which makes it a useful secondary tier, but it only answers well-known
// topics, so empty result sets are common and expected.
type DuckDuckGo struct {
	BaseURL    string // defaults to the public API
	UserAgent  string
	HTTPClient *http.Client
}

func (d *DuckDuckGo) Name() string { return "duckduckgo" }

func (d *DuckDuckGo) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	base := d.BaseURL
	if base == "" {
		base = defaultDuckDuckGoURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("no_html", "1")
	q.Set("skip_disambig", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if d.UserAgent != "" {
		req.Header.Set("User-Agent", d.UserAgent)
	}
	hc := d.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("duckduckgo status: %d", resp.StatusCode)
	}
	var ia instantAnswer
	if err := json.NewDecoder(resp.Body).Decode(&ia); err != nil {
		return nil, err
	}

	out := make([]Result, 0, limit)
	if ia.AbstractText != "" && ia.AbstractURL != "" {
		title := ia.Heading
		if title == "" {
			title = query
		}
		out = append(out, Result{
			Title:   strings.TrimSpace(title),
			URL:     strings.TrimSpace(ia.AbstractURL),
			Snippet: strings.TrimSpace(ia.AbstractText),
			Source:  d.Name(),
		})
	}
	for _, t := range ia.RelatedTopics {
		if len(out) >= limit {
			break
		}
		if t.FirstURL == "" || t.Text == "" {
			continue
		}
		out = append(out, Result{
			Title:   topicTitle(t.Text),
			URL:     strings.TrimSpace(t.FirstURL),
			Snippet: strings.TrimSpace(t.Text),
			Source:  d.Name(),
		})
	}
	return out, nil
}

// topicTitle trims a related-topic blurb down to a short title.
func topicTitle(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexAny(text, ".-–"); i > 0 {
		text = strings.TrimSpace(text[:i])
	}
	if len(text) > 80 {
		text = text[:80]
	}
	return text
}

type instantAnswer struct {
	Heading       string `json:"Heading"`
	AbstractText  string `json:"AbstractText"`
	AbstractURL   string `json:"AbstractURL"`
	RelatedTopics []struct {
		Text     string `json:"Text"`
		FirstURL string `json:"FirstURL"`
	} `json:"RelatedTopics"`
}
