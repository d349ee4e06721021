package source

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
)

// File serves results from a local JSON fixture for offline and air-gapped
// runs. The file holds an array of objects: {"title", "url", "snippet"}.
type File struct {
	Path string
}

func (f *File) Name() string { return "file" }

func (f *File) Search(_ context.Context, query string, limit int) ([]Result, error) {
	if strings.TrimSpace(f.Path) == "" {
		return nil, errors.New("file source path is empty")
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	var raw []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Snippet string `json:"snippet"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Result, 0, len(raw))
	for _, r := range raw {
		if r.URL == "" || r.Title == "" {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(r.Title), q) && !strings.Contains(strings.ToLower(r.Snippet), q) {
			continue
		}
		out = append(out, Result{Title: r.Title, URL: r.URL, Snippet: r.Snippet, Source: f.Name()})
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
