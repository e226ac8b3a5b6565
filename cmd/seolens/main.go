package main

import (
	"fmt"
	"os"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	loadEnv()

	switch os.Args[1] {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "analyze":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: seolens analyze <url> [--json]")
			os.Exit(1)
		}
		if err := runAnalyze(os.Args[2], os.Args[3:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("seolens %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`seolens - SEO metadata analyzer built with Go, Echo, and templ

Usage:
  seolens <command> [arguments]

Commands:
  serve             Start the web UI and JSON API
  analyze <url>     Analyze one page and print the report
  version           Print the seolens version
  help              Show this help message

Environment (also read from .env.local and .env):
  SEOLENS_ADDR, SEOLENS_DATABASE_URL, SEOLENS_FETCH_TIMEOUT,
  SEOLENS_MAX_BODY_BYTES, SEOLENS_USER_AGENT, SEOLENS_RATE_LIMIT,
  SEOLENS_SESSION_SECRET, SEOLENS_COOKIE_SECURE,
  SEOLENS_HISTORY_CACHE_TTL, SEOLENS_HISTORY_QUEUE

Examples:
  seolens serve
  seolens analyze https://example.com
  seolens analyze example.com --json`)
}
