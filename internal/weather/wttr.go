package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultWttrURL = "https://wttr.in"

// Wttr is the secondary weather tier against wttr.in's one-line text format.
type Wttr struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

func (w *Wttr) Name() string { return "wttr.in" }

func (w *Wttr) Current(ctx context.Context, location string) (Report, error) {
	base := w.BaseURL
	if base == "" {
		base = defaultWttrURL
	}
	endpoint := strings.TrimRight(base, "/") + "/" + url.PathEscape(location) + "?format=3"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Report{}, err
	}
	ua := w.UserAgent
	if ua == "" {
		ua = "curl/8" // wttr.in serves HTML to browser agents
	}
	req.Header.Set("User-Agent", ua)

	hc := w.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := hc.Do(req)
	if err != nil {
		return Report{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Report{}, fmt.Errorf("wttr.in status: %d", resp.StatusCode)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return Report{}, err
	}
	line := strings.TrimSpace(string(b))
	if line == "" || strings.Contains(strings.ToLower(line), "unknown location") {
		return Report{}, fmt.Errorf("wttr.in: no usable answer for %q", location)
	}
	return Report{
		Location: location,
		Sentence: fmt.Sprintf("Current weather: %s.", line),
	}, nil
}
