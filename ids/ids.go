// ABOUTME: Time-ordered ID generation and the millisecond clock used across the service
// ABOUTME: ULIDs keep cursor pagination and row ordering lexicographically sortable

package ids

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewULID returns a lexicographically sortable, time-ordered identifier.
// IDs generated within the same millisecond are monotonically increasing.
func NewULID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), entropy).String()
}

// NewToken returns a random opaque token used for lock ownership.
func NewToken() string {
	return uuid.NewString()
}

// NowMillis returns the current wall-clock time as integer Unix milliseconds.
// All domain timestamps use this representation; conversions to time.Time
// happen only at the database boundary.
func NowMillis() int64 {
	return time.Now().UTC().UnixMilli()
}

// MillisToTime converts integer Unix milliseconds to a UTC time.Time.
func MillisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// TimeToMillis converts a time.Time to integer Unix milliseconds.
func TimeToMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}
