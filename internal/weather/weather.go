package weather

import (
	"context"
)

// Report is one answered weather query. Sentence is the plain-language line
// handed to the formatter; Simulated marks synthetic-tier output.
type Report struct {
	Location   string
	Conditions string
	Sentence   string
	Simulated  bool
}

// Source is one weather tier in the fallback chain.
type Source interface {
	Current(ctx context.Context, location string) (Report, error)
	Name() string
}
