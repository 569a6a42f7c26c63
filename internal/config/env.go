package config

import (
	"log"
	"strings"
	"time"
)

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// durationOrDefault parses values such as "30s" and falls back on anything
// unparsable or non-positive.
func durationOrDefault(raw string, def time.Duration) time.Duration {
	if strings.TrimSpace(raw) == "" {
		return def
	}
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid duration %q, defaulting to %s", raw, def)
		return def
	}
	return d
}
