// Package leaktest checks that tests do not leave goroutines behind.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettleTimeout bounds how long Check waits for goroutines to exit
const DefaultSettleTimeout = 500 * time.Millisecond

const pollInterval = 10 * time.Millisecond

// GoroutineChecker compares the goroutine count against a baseline taken at creation
type GoroutineChecker struct {
	t       testing.TB
	before  int
	timeout time.Duration
}

// NewGoroutineChecker records the current goroutine count as the baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	return &GoroutineChecker{
		t:       t,
		before:  settledCount(),
		timeout: DefaultSettleTimeout,
	}
}

// WithTimeout changes how long Check waits for the count to drop
func (g *GoroutineChecker) WithTimeout(d time.Duration) *GoroutineChecker {
	g.timeout = d
	return g
}

// Leaked returns how many goroutines exist above the baseline right now
func (g *GoroutineChecker) Leaked() int {
	return runtime.NumGoroutine() - g.before
}

// Check fails the test when more than tolerance goroutines are still running
// once the settle timeout has passed. It returns as soon as the count is
// within tolerance.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(g.timeout)
	for {
		leaked := g.Leaked()
		if leaked <= tolerance {
			return
		}
		if time.Now().After(deadline) {
			g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d",
				g.before, g.before+leaked, leaked, tolerance)
			return
		}
		runtime.GC()
		time.Sleep(pollInterval)
	}
}

// Run executes fn and checks that it left no goroutines behind
func Run(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// settledCount lets goroutines that are already exiting finish before counting
func settledCount() int {
	runtime.Gosched()
	time.Sleep(pollInterval)
	return runtime.NumGoroutine()
}
