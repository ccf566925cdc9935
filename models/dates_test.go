package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseReleaseDate(t *testing.T) {
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC).UnixMilli()

	tests := map[string]struct {
		raw      string
		expected int64
	}{
		"year_only_anchors_to_january_first": {
			raw:      "2024",
			expected: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
		},
		"year_month_anchors_to_first_of_month": {
			raw:      "2024-06",
			expected: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
		},
		"full_date_is_midnight_utc": {
			raw:      "2024-06-15",
			expected: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC).UnixMilli(),
		},
		"garbage_falls_back_to_now": {
			raw:      "not-a-date",
			expected: now,
		},
		"empty_falls_back_to_now": {
			raw:      "",
			expected: now,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseReleaseDate(tc.raw, now))
		})
	}
}

func TestParsePublishedAt(t *testing.T) {
	ms, err := ParsePublishedAt("2024-01-15T10:30:00Z")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC).UnixMilli(), ms)

	_, err = ParsePublishedAt("")
	assert.Error(t, err)

	_, err = ParsePublishedAt("2024-13-45T99:99:99Z")
	assert.Error(t, err)
}

func TestSyntheticCreatorID(t *testing.T) {
	a := SyntheticCreatorID(ProviderRSS, "  The Daily Feed ")
	b := SyntheticCreatorID(ProviderRSS, "the daily feed")
	assert.Equal(t, a, b, "normalization should make ids stable")
	assert.Len(t, a, 32)

	c := SyntheticCreatorID(ProviderWeb, "the daily feed")
	assert.NotEqual(t, a, c, "provider participates in the hash")
}

func TestSubscriptionDue(t *testing.T) {
	now := int64(1_700_000_000_000)
	polled := now - 4000*1000

	tests := map[string]struct {
		sub      Subscription
		expected bool
	}{
		"never_polled_is_due": {
			sub:      Subscription{Status: SubscriptionActive, PollIntervalSeconds: 3600},
			expected: true,
		},
		"zero_last_polled_is_due": {
			sub:      Subscription{Status: SubscriptionActive, PollIntervalSeconds: 3600, LastPolledAt: ptr(int64(0))},
			expected: true,
		},
		"interval_elapsed": {
			sub:      Subscription{Status: SubscriptionActive, PollIntervalSeconds: 3600, LastPolledAt: &polled},
			expected: true,
		},
		"interval_not_elapsed": {
			sub:      Subscription{Status: SubscriptionActive, PollIntervalSeconds: 7200, LastPolledAt: &polled},
			expected: false,
		},
		"paused_never_due": {
			sub:      Subscription{Status: SubscriptionPaused, PollIntervalSeconds: 3600},
			expected: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.sub.Due(now))
		})
	}
}

func ptr[T any](v T) *T { return &v }
