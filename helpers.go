package seolens

import (
	"strconv"
	"strings"
	"time"
)

// NormalizeURL trims raw and prefixes https:// when it has no http(s) scheme,
// so "example.com" can be typed into the report form.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}
	return "https://" + strings.TrimPrefix(raw, "//")
}

func envDuration(key string) time.Duration {
	d, err := time.ParseDuration(EnvOr(key, ""))
	if err != nil {
		return 0
	}
	return d
}

func envInt(key string) int {
	n, err := strconv.Atoi(EnvOr(key, ""))
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(EnvOr(key, ""))
	return b
}
