// Package timeouts centralizes context deadlines for handler operations.
//
// Every handler derives a bounded context from one of these values before
// touching the store or an external service, so a hung backend fails the
// request instead of pinning it forever.
package timeouts

import (
	"sync"
	"time"
)

// Defaults, used unless Configure is called at startup.
const (
	DefaultPing     = 2 * time.Second
	DefaultShort    = 5 * time.Second
	DefaultMedium   = 10 * time.Second
	DefaultAnalysis = 30 * time.Second
)

var mu sync.RWMutex

var (
	ping     = DefaultPing
	short    = DefaultShort
	medium   = DefaultMedium
	analysis = DefaultAnalysis
)

// Configure overrides the timeout tiers. Zero values keep the current
// setting. Intended to be called once from the composition root.
func Configure(p, s, m, a time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	if p > 0 {
		ping = p
	}
	if s > 0 {
		short = s
	}
	if m > 0 {
		medium = m
	}
	if a > 0 {
		analysis = a
	}
}

// Ping is for health checks and connectivity probes.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short is for single-record reads and writes.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium is for collection snapshots and multi-step mutations.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// Analysis is for round trips to the external image-analysis service.
func Analysis() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return analysis
}
