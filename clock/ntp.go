package clock

import (
	"sync"
	"time"

	"github.com/beevik/ntp"
)

const (
	ntpBackoffInitial = 5 * time.Second
	ntpBackoffMax     = 5 * time.Minute
)

// NTPClock corrects the system clock with a periodically refreshed NTP
// offset. A failed query leaves the previous offset in place and backs off
// exponentially before the next attempt, so a flaky server never blocks
// timestamp acquisition.
type NTPClock struct {
	mu           sync.Mutex
	server       string
	syncInterval time.Duration
	offset       time.Duration
	lastSync     time.Time
	backoff      time.Duration
	lastErr      error
}

// NewNTPClock creates a clock synced against server, e.g. "time.google.com".
// The initial sync failing is not fatal; the offset stays zero until a later
// attempt succeeds.
func NewNTPClock(server string, syncInterval time.Duration) *NTPClock {
	c := &NTPClock{server: server, syncInterval: syncInterval}
	if err := c.sync(); err != nil {
		c.lastErr = err
	}
	return c
}

func (c *NTPClock) Now() time.Time {
	c.mu.Lock()
	c.maybeSync()
	offset := c.offset
	c.mu.Unlock()
	return time.Now().Add(offset)
}

// LastError reports the most recent sync failure, or nil after a clean sync.
func (c *NTPClock) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *NTPClock) maybeSync() {
	interval := c.syncInterval
	if c.backoff > 0 {
		interval = c.backoff
	}
	if time.Since(c.lastSync) < interval {
		return
	}
	if err := c.sync(); err != nil {
		c.lastErr = err
		if c.backoff == 0 {
			c.backoff = ntpBackoffInitial
		} else {
			c.backoff *= 2
		}
		if c.backoff > ntpBackoffMax {
			c.backoff = ntpBackoffMax
		}
		return
	}
	c.backoff = 0
}

func (c *NTPClock) sync() error {
	resp, err := ntp.Query(c.server)
	if err != nil {
		return err
	}
	c.offset = resp.ClockOffset
	c.lastSync = time.Now()
	c.lastErr = nil
	return nil
}
