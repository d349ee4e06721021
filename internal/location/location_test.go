package location

import "testing"

func TestExtract_Patterns(t *testing.T) {
	cases := []struct {
		msg   string
		want  string
		found bool
	}{
		{"What's the weather in Trevose, PA?", "Trevose, Pennsylvania", true},
		{"how is the weather for Helsinki today?", "Helsinki today", true},
		{"weather in   new   york", "New York", true},
		{"temperature in Austin, TX please", "Austin, Texas", true},
		{"weather in Paris, tell me everything", "Paris", true},
		{"weather Anchorage", "Anchorage", true},
		{"tell me a story", "", false},
	}
	for _, c := range cases {
		got, found := Extract(c.msg)
		if found != c.found {
			t.Fatalf("Extract(%q) found=%v, want %v", c.msg, found, c.found)
		}
		if got != c.want {
			t.Fatalf("Extract(%q) = %q, want %q", c.msg, got, c.want)
		}
	}
}

func TestExtract_BareFallbackRejectsShortCaptures(t *testing.T) {
	if loc, found := Extract("weather ok"); found {
		t.Fatalf("two-character capture should be rejected, got %q", loc)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Trevose ,PA",
		"  san   francisco , ca ",
		"Oslo",
		"Anchorage, AK",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestNormalize_CommaSpacingAndExpansion(t *testing.T) {
	if got := Normalize("Trevose ,PA"); got != "Trevose, Pennsylvania" {
		t.Fatalf("got %q", got)
	}
	// AK is not in the expansion table and must pass through
	if got := Normalize("Anchorage, AK"); got != "Anchorage, AK" {
		t.Fatalf("got %q", got)
	}
}
