// ABOUTME: Conversions between domain integer-millisecond timestamps and SQL timestamptz
// ABOUTME: ISO-8601/time.Time never crosses the repository interface

package repository

import (
	"time"

	"inbox-hub/ids"
)

func millisToTime(ms int64) time.Time {
	return ids.MillisToTime(ms)
}

func millisPtrToTime(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := ids.MillisToTime(*ms)
	return &t
}

func timePtrToMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := ids.TimeToMillis(*t)
	return &ms
}

func timeToMillis(t time.Time) int64 {
	return ids.TimeToMillis(t)
}
