package intent

import (
	"testing"

	"github.com/hyperifyio/golookup/internal/settings"
)

func TestShouldLookup_GateRespectsSettings(t *testing.T) {
	msgs := []string{
		"what is the capital of France",
		"weather in Paris",
		"who was elected president",
	}
	off := settings.Defaults()
	off.AutoSearch = false
	disabled := settings.Defaults()
	disabled.Enabled = false
	for _, m := range msgs {
		if ShouldLookup(m, off) {
			t.Fatalf("autoSearch=false must gate %q", m)
		}
		if ShouldLookup(m, disabled) {
			t.Fatalf("enabled=false must gate %q", m)
		}
	}
}

func TestShouldLookup_TriggerPhrases(t *testing.T) {
	s := settings.Defaults()
	cases := []struct {
		msg  string
		want bool
	}{
		{"What is a goroutine?", true},
		{"WEATHER IN Berlin", true},
		{"latest go release", true},
		{"price of eggs", true},
		{"who is the president of Finland", true},
		{"Who was elected last year?", true},
		{"good morning", false},
		{"thanks, that was helpful", false},
	}
	for _, c := range cases {
		if got := ShouldLookup(c.msg, s); got != c.want {
			t.Fatalf("ShouldLookup(%q) = %v, want %v", c.msg, got, c.want)
		}
	}
}

func TestShouldLookup_Deterministic(t *testing.T) {
	s := settings.Defaults()
	msg := "tell me about the current weather"
	first := ShouldLookup(msg, s)
	for i := 0; i < 10; i++ {
		if ShouldLookup(msg, s) != first {
			t.Fatalf("gate flapped on identical input")
		}
	}
}

func TestClassify_PrecedenceOrder(t *testing.T) {
	cases := []struct {
		msg  string
		want Category
	}{
		{"what's the weather in Oslo", CategoryWeather},
		// weather token outranks the news-ish "current"
		{"current temperature outside", CategoryWeather},
		{"latest news about space", CategoryNews},
		{"current events", CategoryNews},
		{"how to make bread", CategoryHowto},
		{"what is a monad", CategoryDefinition},
		{"price of a macbook", CategoryPrice},
		// "how much" is a price token but "how to" is checked first
		{"how to estimate how much paint", CategoryHowto},
		{"look up rust ownership", CategoryGeneric},
	}
	for _, c := range cases {
		if got := Classify(c.msg); got != c.want {
			t.Fatalf("Classify(%q) = %q, want %q", c.msg, got, c.want)
		}
	}
}
