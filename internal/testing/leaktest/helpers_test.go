package leaktest

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder captures Errorf calls so failing checks can be asserted on
type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(string, ...any) { r.failed = true }

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WaitsForExit(t *testing.T) {
	checker := NewGoroutineChecker(t)

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(30 * time.Millisecond)
		}()
	}

	// Goroutines are still sleeping here; Check must wait for them
	checker.Check(0)
	wg.Wait()
}

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec).WithTimeout(50 * time.Millisecond)

	done := make(chan struct{})
	defer close(done)
	go func() { <-done }()

	assert.GreaterOrEqual(t, checker.Leaked(), 1)
	checker.Check(0)
	assert.True(t, rec.failed)
}

func TestGoroutineChecker_Tolerance(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec).WithTimeout(50 * time.Millisecond)

	done := make(chan struct{})
	defer close(done)
	go func() { <-done }()

	checker.Check(1)
	assert.False(t, rec.failed)
}

func TestRun(t *testing.T) {
	Run(t, func() {
		ch := make(chan int)
		go func() { ch <- 1 }()
		<-ch
	})
}
