package source

import (
	"context"
)

// Result is one retrieved or synthesized fact card. Immutable once produced.
// Timestamp is RFC3339 when the provider reports one, empty otherwise.
// Simulated marks output of the synthetic tier in addition to the disclaimer
// carried in the snippet text.
type Result struct {
	Title     string
	URL       string
	Snippet   string
	Timestamp string
	Source    string // tier name for observability
	Simulated bool
}

// Source is one search tier in the fallback chain.
type Source interface {
	Search(ctx context.Context, query string, limit int) ([]Result, error)
	Name() string
}
