package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/hyperifyio/golookup/internal/source"
	"github.com/hyperifyio/golookup/internal/weather"
)

// debuglookup probes each configured source directly, bypassing the fallback
// chain, so provider problems can be diagnosed in isolation.
func main() {
	q := "what is love"
	if len(os.Args) > 1 {
		q = os.Args[1]
	}
	client := &http.Client{Timeout: 20 * time.Second}
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if base := os.Getenv("SEARX_URL"); base != "" {
		prov := &source.SearxNG{BaseURL: base, HTTPClient: client, UserAgent: "debuglookup/1.0"}
		res, err := prov.Search(ctx, q, 5)
		fmt.Println("searxng err:", err)
		for i, r := range res {
			fmt.Printf("%d. %s — %s\n", i+1, r.Title, r.URL)
		}
	}

	ddg := &source.DuckDuckGo{HTTPClient: client, UserAgent: "debuglookup/1.0"}
	res, err := ddg.Search(ctx, q, 5)
	fmt.Println("duckduckgo err:", err)
	for i, r := range res {
		fmt.Printf("%d. %s — %s\n", i+1, r.Title, r.URL)
	}

	if loc := os.Getenv("WEATHER_LOCATION"); loc != "" {
		om := &weather.OpenMeteo{HTTPClient: client, UserAgent: "debuglookup/1.0"}
		rep, err := om.Current(ctx, loc)
		fmt.Println("open-meteo err:", err)
		fmt.Println(rep.Sentence)

		wt := &weather.Wttr{HTTPClient: client, UserAgent: "debuglookup/1.0"}
		rep, err = wt.Current(ctx, loc)
		fmt.Println("wttr err:", err)
		fmt.Println(rep.Sentence)
	}
}
