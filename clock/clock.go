// Package clock supplies wall-clock time for block timestamps. The chain
// engine never reads a clock itself: callers acquire a timestamp here and
// hand the concrete value to Append.
package clock

import (
	"strconv"
	"time"
)

// Clock is a source of wall-clock time.
type Clock interface {
	Now() time.Time
}

// Timestamp renders t in the chain's timestamp encoding: milliseconds since
// epoch as a base-10 string.
func Timestamp(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// SystemClock reads the local system time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
