package policy

import (
	"testing"

	"github.com/hyperifyio/golookup/internal/source"
)

func TestIsAllowed_BlockListRejects(t *testing.T) {
	r := Rules{Blocked: []string{"malware"}}
	if r.IsAllowed("http://malware-site.com/x") {
		t.Fatalf("blocked substring should reject the host")
	}
}

func TestIsAllowed_FailsClosedOnGarbage(t *testing.T) {
	r := Rules{}
	for _, raw := range []string{"not a url", "", "ftp://example.com/file", "relative/path"} {
		if r.IsAllowed(raw) {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestIsAllowed_EmptyAllowListAdmits(t *testing.T) {
	r := Rules{Blocked: []string{"malware"}}
	if !r.IsAllowed("https://example.com") {
		t.Fatalf("host with no allow list and no block match should pass")
	}
}

func TestIsAllowed_AllowListRestricts(t *testing.T) {
	r := Rules{Allowed: []string{"example.com"}}
	if !r.IsAllowed("https://www.example.com/page") {
		t.Fatalf("allow-list substring should admit the host")
	}
	if r.IsAllowed("https://other.org") {
		t.Fatalf("host outside the allow list should be rejected")
	}
}

func TestIsAllowed_BlockBeatsAllow(t *testing.T) {
	r := Rules{Allowed: []string{"example.com"}, Blocked: []string{"example.com"}}
	if r.IsAllowed("https://example.com") {
		t.Fatalf("block list must take precedence over allow list")
	}
}

func TestFilter_DropsSilentlyAndKeepsOrder(t *testing.T) {
	r := Rules{Blocked: []string{"bad"}}
	in := []source.Result{
		{Title: "a", URL: "https://good.com/1"},
		{Title: "b", URL: "https://bad.com/2"},
		{Title: "c", URL: "https://good.com/3"},
	}
	out := r.Filter(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(out))
	}
	if out[0].Title != "a" || out[1].Title != "c" {
		t.Fatalf("filter must preserve input order, got %v", out)
	}
}
