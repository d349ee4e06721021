package settings

import "sync"

// InternetSettings is the mutable runtime configuration for the lookup
// engine. Enabled is the master switch: when false every operation fails
// fast. AutoSearch controls whether the intent gate may trigger a lookup
// implicitly. AllowedDomains empty means no allow-list restriction;
// BlockedDomains is always enforced.
type InternetSettings struct {
	Enabled        bool
	AutoSearch     bool
	MaxResults     int
	SafeSearch     bool
	AllowedDomains []string
	BlockedDomains []string
}

// Defaults returns the settings a fresh store starts with.
func Defaults() InternetSettings {
	return InternetSettings{
		Enabled:        true,
		AutoSearch:     true,
		MaxResults:     5,
		SafeSearch:     true,
		BlockedDomains: []string{"malware", "phishing"},
	}
}

// Patch is a partial update. Nil fields are preserved; a non-nil empty slice
// clears the corresponding list.
type Patch struct {
	Enabled        *bool
	AutoSearch     *bool
	MaxResults     *int
	SafeSearch     *bool
	AllowedDomains []string
	BlockedDomains []string
}

// Store holds the current settings. Reads may run concurrently; updates are
// serialized with last-write-wins merge semantics.
type Store struct {
	mu  sync.RWMutex
	cur InternetSettings
}

// NewStore returns a store seeded with initial.
func NewStore(initial InternetSettings) *Store {
	return &Store{cur: cloneSettings(initial)}
}

// Get returns a defensive copy; mutating the returned value or its slices
// does not affect the store.
func (s *Store) Get() InternetSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSettings(s.cur)
}

// Update merges the given fields over the current state. No validation is
// applied; callers own sane values.
func (s *Store) Update(p Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Enabled != nil {
		s.cur.Enabled = *p.Enabled
	}
	if p.AutoSearch != nil {
		s.cur.AutoSearch = *p.AutoSearch
	}
	if p.MaxResults != nil {
		s.cur.MaxResults = *p.MaxResults
	}
	if p.SafeSearch != nil {
		s.cur.SafeSearch = *p.SafeSearch
	}
	if p.AllowedDomains != nil {
		s.cur.AllowedDomains = append([]string(nil), p.AllowedDomains...)
	}
	if p.BlockedDomains != nil {
		s.cur.BlockedDomains = append([]string(nil), p.BlockedDomains...)
	}
}

func cloneSettings(in InternetSettings) InternetSettings {
	out := in
	if in.AllowedDomains != nil {
		out.AllowedDomains = append([]string(nil), in.AllowedDomains...)
	}
	if in.BlockedDomains != nil {
		out.BlockedDomains = append([]string(nil), in.BlockedDomains...)
	}
	return out
}
