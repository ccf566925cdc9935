// ABOUTME: Publish-date parsing helpers for provider payloads
// ABOUTME: Podcast release dates may be year, year-month, or full-date precision

package models

import (
	"fmt"
	"time"
)

// ParsePublishedAt interprets an ISO-8601 timestamp and returns Unix millis.
// Items with missing or invalid dates are dropped by the pollers, so this
// returns an error instead of a fallback.
func ParsePublishedAt(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("published date is empty")
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return 0, fmt.Errorf("invalid published date %q: %w", raw, err)
	}
	return t.UTC().UnixMilli(), nil
}

// ParseReleaseDate normalizes a podcast release date to Unix millis.
// Dates come in YYYY, YYYY-MM, or YYYY-MM-DD precision and are
// left-anchored: "2024" -> 2024-01-01T00:00:00Z, "2024-06" -> June 1st.
// Invalid input falls back to nowMillis.
func ParseReleaseDate(raw string, nowMillis int64) int64 {
	layouts := []string{"2006-01-02", "2006-01", "2006"}
	for _, layout := range layouts {
		if len(raw) != len(layout) {
			continue
		}
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().UnixMilli()
		}
	}
	return nowMillis
}
