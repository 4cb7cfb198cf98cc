// Package bench runs every detection strategy against every fixture, checking
// answers against the fixtures' known shape and timing the runs.
package bench

import (
	"fmt"
	"strings"
	"time"
)

// CheckKind says what a Check compared.
type CheckKind string

const (
	// KindResult compares the detector's answer with the fixture's shape.
	KindResult CheckKind = "result"
	// KindRepeat compares a second run on the same chain with the first.
	KindRepeat CheckKind = "repeat"
	// KindIntact checks that a non-mutating detector left every link as it was.
	KindIntact CheckKind = "intact"
)

// Check is the outcome of one strategy on one fixture.
type Check struct {
	Kind     CheckKind
	Strategy string
	Fixture  string
	Want     bool
	Got      bool
	Advances int // Forward links dereferenced, result checks only
	Err      error
}

// Passed reports whether the detector ran and matched expectations.
func (c Check) Passed() bool {
	return c.Err == nil && c.Got == c.Want
}

func (c Check) String() string {
	if c.Err != nil {
		return fmt.Sprintf("%s/%s (%s): %v", c.Strategy, c.Fixture, c.Kind, c.Err)
	}
	return fmt.Sprintf("%s/%s (%s): want %v, got %v", c.Strategy, c.Fixture, c.Kind, c.Want, c.Got)
}

// Timing is the measured cost of one strategy across all fixtures.
type Timing struct {
	Strategy string
	Rounds   int           // Passes over the fixture set
	Calls    int           // Detector invocations
	Elapsed  time.Duration // Time spent inside detectors only
	Fastest  bool
}

// PerCall returns the mean time of a single detector call.
func (t Timing) PerCall() time.Duration {
	if t.Calls == 0 {
		return 0
	}
	return t.Elapsed / time.Duration(t.Calls)
}

// RoundsPerSecond is the throughput over the whole fixture set, the figure
// the fastest strategy is picked by.
func (t Timing) RoundsPerSecond() float64 {
	if t.Elapsed <= 0 {
		return 0
	}
	return float64(t.Rounds) / t.Elapsed.Seconds()
}

// Report collects the results of a harness run.
type Report struct {
	StartedAt   time.Time
	CompletedAt time.Time
	Strategies  []string
	Fixtures    []string
	Checks      []Check
	Timings     []Timing
}

// Duration is the wall time of the run.
func (r *Report) Duration() time.Duration {
	return r.CompletedAt.Sub(r.StartedAt)
}

// Failed returns the checks that did not pass.
func (r *Report) Failed() []Check {
	var failed []Check
	for _, c := range r.Checks {
		if !c.Passed() {
			failed = append(failed, c)
		}
	}
	return failed
}

// Passed returns the number of checks that passed.
func (r *Report) Passed() int {
	return len(r.Checks) - len(r.Failed())
}

// Result returns the result check for a strategy and fixture.
func (r *Report) Result(strategy, fixture string) (Check, bool) {
	for _, c := range r.Checks {
		if c.Kind == KindResult && c.Strategy == strategy && c.Fixture == fixture {
			return c, true
		}
	}
	return Check{}, false
}

// Fastest returns the timing marked fastest, if any.
func (r *Report) Fastest() (Timing, bool) {
	for _, t := range r.Timings {
		if t.Fastest {
			return t, true
		}
	}
	return Timing{}, false
}

// MismatchError is returned by Verify when any check fails.
type MismatchError struct {
	Total  int
	Failed []Check
}

func (e *MismatchError) Error() string {
	msgs := make([]string, 0, len(e.Failed))
	for _, c := range e.Failed {
		msgs = append(msgs, c.String())
	}
	return fmt.Sprintf("%d of %d checks failed:\n  - %s", len(e.Failed), e.Total, strings.Join(msgs, "\n  - "))
}
