package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/eringen/seolens"
	"github.com/eringen/seolens/fetch"
	"github.com/eringen/seolens/seo"
)

func runAnalyze(rawURL string, flags []string) error {
	asJSON := false
	for _, f := range flags {
		switch f {
		case "--json", "-json":
			asJSON = true
		default:
			return fmt.Errorf("unknown flag %s", f)
		}
	}

	url := seolens.NormalizeURL(rawURL)

	cfg := seolens.ConfigFromEnv()
	client := fetch.New(fetch.Config{
		Timeout:   cfg.FetchTimeout,
		UserAgent: cfg.UserAgent,
		MaxBytes:  cfg.MaxBodyBytes,
	})

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " Analyzing " + url
	if !asJSON {
		s.Start()
	}
	html, err := client.Fetch(context.Background(), url)
	s.Stop()
	if err != nil {
		return fmt.Errorf("could not access URL: %w", err)
	}

	report := seo.Analyze(html)
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(seolens.NewAnalyzeResponse(url, report))
	}
	printReport(os.Stdout, url, report)
	return nil
}

func printReport(w io.Writer, url string, r seo.Report) {
	fmt.Fprintf(w, "%s\n\n", text.Bold.Sprint(url))
	fmt.Fprintf(w, "Score: %s (%s)\n\n", ratingColor(r.Rating).Sprintf("%d", r.Score), r.Rating)

	meta := table.NewWriter()
	meta.SetOutputMirror(w)
	meta.SetStyle(table.StyleLight)
	meta.SetTitle("Metadata")
	meta.AppendHeader(table.Row{"Field", "Value"})
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"title", r.Meta.Title},
		{"description", r.Meta.Description},
		{"canonical", r.Meta.Canonical},
		{"og:title", r.Meta.OGTitle},
		{"og:description", r.Meta.OGDescription},
		{"og:image", r.Meta.OGImage},
		{"twitter:card", r.Meta.TwitterCard},
	} {
		v := "-"
		if f.value != nil {
			v = *f.value
		}
		meta.AppendRow(table.Row{f.name, v})
	}
	meta.SetColumnConfigs([]table.ColumnConfig{{Number: 2, WidthMax: 80}})
	meta.Render()
	fmt.Fprintln(w)

	issues := table.NewWriter()
	issues.SetOutputMirror(w)
	issues.SetStyle(table.StyleLight)
	issues.SetTitle("Issues")
	issues.AppendHeader(table.Row{"Level", "Field", "Message"})
	for _, is := range seo.SortIssues(r.Issues) {
		issues.AppendRow(table.Row{levelColor(is.Level).Sprint(is.Level), is.Field, is.Message})
	}
	issues.Render()
	fmt.Fprintln(w)

	if r.Advice.Perfect {
		fmt.Fprintln(w, text.FgGreen.Sprint("Perfect score! No suggestions."))
		return
	}
	sugg := table.NewWriter()
	sugg.SetOutputMirror(w)
	sugg.SetStyle(table.StyleLight)
	sugg.SetTitle(fmt.Sprintf("Suggestions (up to +%d points)", r.Advice.PotentialGain))
	sugg.AppendHeader(table.Row{"Impact", "Category", "Suggestion"})
	for _, s := range r.Advice.Suggestions {
		sugg.AppendRow(table.Row{s.Impact, s.Category, s.Title})
	}
	sugg.Render()
}

func ratingColor(r seo.Rating) text.Colors {
	switch r {
	case seo.RatingExcellent:
		return text.Colors{text.Bold, text.FgGreen}
	case seo.RatingNeedsImprovement:
		return text.Colors{text.Bold, text.FgYellow}
	}
	return text.Colors{text.Bold, text.FgRed}
}

func levelColor(l seo.Level) text.Color {
	switch l {
	case seo.LevelCritical:
		return text.FgRed
	case seo.LevelWarning:
		return text.FgYellow
	case seo.LevelSuccess:
		return text.FgGreen
	}
	return text.FgCyan
}
