// Package policy implements the domain allow/block rules applied to every
// URL before it leaves the engine. Parsing failures fail closed.
package policy

import (
	"net/url"
	"strings"

	"github.com/hyperifyio/golookup/internal/settings"
	"github.com/hyperifyio/golookup/internal/source"
)

// Rules captures one snapshot of the domain policy. The block list takes
// precedence over the allow list; an empty allow list admits any host.
type Rules struct {
	Allowed []string
	Blocked []string
}

// FromSettings builds rules from the current settings snapshot.
func FromSettings(s settings.InternetSettings) Rules {
	return Rules{Allowed: s.AllowedDomains, Blocked: s.BlockedDomains}
}

// IsAllowed reports whether rawURL passes the policy. Anything that does not
// parse as an absolute http(s) URL with a hostname is rejected.
func (r Rules) IsAllowed(rawURL string) bool {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}
	for _, b := range r.Blocked {
		b = strings.ToLower(strings.TrimSpace(b))
		if b != "" && strings.Contains(host, b) {
			return false
		}
	}
	if len(r.Allowed) == 0 {
		return true
	}
	for _, a := range r.Allowed {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" && strings.Contains(host, a) {
			return true
		}
	}
	return false
}

// Filter drops results whose URL fails the policy. Rejected entries are
// silently removed, never replaced. Input order is preserved.
func (r Rules) Filter(in []source.Result) []source.Result {
	out := make([]source.Result, 0, len(in))
	for _, res := range in {
		if r.IsAllowed(res.URL) {
			out = append(out, res)
		}
	}
	return out
}
