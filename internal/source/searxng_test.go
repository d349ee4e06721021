package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearxNG_Search_ParsesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"title": "Doc", "url": "https://example.com", "content": "snippet", "publishedDate": "2026-01-02T00:00:00Z"},
				{"title": "Bad", "url": "", "content": "no url"},
			},
		})
	}))
	defer srv.Close()

	s := &SearxNG{BaseURL: srv.URL, HTTPClient: srv.Client()}
	got, err := s.Search(context.Background(), "query", 5)
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 valid result, got %d", len(got))
	}
	if got[0].URL != "https://example.com" {
		t.Fatalf("unexpected url: %q", got[0].URL)
	}
	if got[0].Timestamp != "2026-01-02T00:00:00Z" {
		t.Fatalf("expected published date carried over, got %q", got[0].Timestamp)
	}
	if got[0].Source != "searxng" {
		t.Fatalf("unexpected source tag: %q", got[0].Source)
	}
}

func TestSearxNG_Search_SafeSearchParam(t *testing.T) {
	var safe string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		safe = r.URL.Query().Get("safesearch")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	s := &SearxNG{BaseURL: srv.URL, SafeSearch: true, HTTPClient: srv.Client()}
	if _, err := s.Search(context.Background(), "q", 3); err != nil {
		t.Fatalf("search error: %v", err)
	}
	if safe != "1" {
		t.Fatalf("expected safesearch=1, got %q", safe)
	}
}

func TestSearxNG_Search_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s := &SearxNG{BaseURL: srv.URL, HTTPClient: srv.Client()}
	if _, err := s.Search(context.Background(), "q", 3); err == nil {
		t.Fatalf("expected error on 429")
	}
}
