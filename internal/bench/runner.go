package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dbsmedya/goloop/internal/chain"
	"github.com/dbsmedya/goloop/internal/detect"
	"github.com/dbsmedya/goloop/internal/fixture"
	"github.com/dbsmedya/goloop/internal/logger"
)

// Runner drives strategies over fixtures. It is not safe for concurrent use:
// mutating strategies share nothing across calls only because the runner
// builds or restores chains between them.
type Runner struct {
	strategies []detect.Strategy
	fixtures   []fixture.Fixture
	iterations int
	logger     *logger.Logger
	now        func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithIterations sets how many rounds Benchmark runs per strategy.
func WithIterations(n int) Option {
	return func(r *Runner) {
		r.iterations = n
	}
}

// NewRunner creates a runner for the given strategies and fixtures.
func NewRunner(strategies []detect.Strategy, fixtures []fixture.Fixture, opts ...Option) (*Runner, error) {
	if len(strategies) == 0 {
		return nil, errors.New("no strategies selected")
	}
	if len(fixtures) == 0 {
		return nil, errors.New("no fixtures selected")
	}

	r := &Runner{
		strategies: strategies,
		fixtures:   fixtures,
		iterations: 1,
		logger:     logger.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", r.iterations)
	}
	return r, nil
}

func (r *Runner) newReport() *Report {
	report := &Report{StartedAt: r.now()}
	for _, s := range r.strategies {
		report.Strategies = append(report.Strategies, s.Name)
	}
	for _, f := range r.fixtures {
		report.Fixtures = append(report.Fixtures, f.Name)
	}
	return report
}

// Verify runs every strategy on a freshly built copy of every fixture and
// compares the answer with the fixture's shape. Strategies that leave the
// chain untouched are also run a second time on the same chain, and their
// links are compared before and after.
//
// It returns a *MismatchError alongside the full report when any check fails.
func (r *Runner) Verify(ctx context.Context) (*Report, error) {
	report := r.newReport()

	for _, s := range r.strategies {
		log := r.logger.WithStrategy(s.Name)
		for _, f := range r.fixtures {
			if err := ctx.Err(); err != nil {
				report.CompletedAt = r.now()
				return report, fmt.Errorf("verification interrupted: %w", err)
			}

			checks := r.verifyOne(s, f)
			for _, c := range checks {
				if c.Passed() {
					log.WithFixture(f.Name).Debugw("Check passed",
						"kind", c.Kind,
						"cycle", c.Got,
						"advances", c.Advances,
					)
				} else {
					log.WithFixture(f.Name).Warnw("Check failed",
						"kind", c.Kind,
						"want", c.Want,
						"got", c.Got,
						"error", c.Err,
					)
				}
			}
			report.Checks = append(report.Checks, checks...)
		}
	}

	report.CompletedAt = r.now()
	r.logger.Infow("Verification complete",
		"checks", len(report.Checks),
		"failed", len(report.Failed()),
		"duration", report.Duration(),
	)

	if failed := report.Failed(); len(failed) > 0 {
		return report, &MismatchError{Total: len(report.Checks), Failed: failed}
	}
	return report, nil
}

func (r *Runner) verifyOne(s detect.Strategy, f fixture.Fixture) []Check {
	c := f.Build()
	before := links(c)

	trace, err := s.Trace(c.Start())
	checks := []Check{{
		Kind:     KindResult,
		Strategy: s.Name,
		Fixture:  f.Name,
		Want:     f.Cyclic(),
		Got:      trace.Cycle,
		Advances: trace.Advances,
		Err:      err,
	}}
	if err != nil || s.Mutates {
		return checks
	}

	checks = append(checks, Check{
		Kind:     KindIntact,
		Strategy: s.Name,
		Fixture:  f.Name,
		Want:     true,
		Got:      sameLinks(before, links(c)),
	})

	again, err := s.HasCycle(c.Start())
	checks = append(checks, Check{
		Kind:     KindRepeat,
		Strategy: s.Name,
		Fixture:  f.Name,
		Want:     trace.Cycle,
		Got:      again,
		Err:      err,
	})
	return checks
}

// Benchmark times every strategy over the fixture set for the configured
// number of rounds. Chains are built once per strategy; after a mutating
// strategy they are restored before the next round, outside the timed region.
// A detector error stops the benchmark.
func (r *Runner) Benchmark(ctx context.Context) (*Report, error) {
	report := r.newReport()

	for _, s := range r.strategies {
		timing, err := r.benchmarkOne(ctx, s)
		if err != nil {
			report.CompletedAt = r.now()
			return report, fmt.Errorf("benchmark of %s: %w", s.Name, err)
		}
		r.logger.WithStrategy(s.Name).Infow("Benchmark complete",
			"rounds", timing.Rounds,
			"elapsed", timing.Elapsed,
			"per_call", timing.PerCall(),
		)
		report.Timings = append(report.Timings, timing)
	}

	markFastest(report.Timings)
	report.CompletedAt = r.now()

	if fastest, ok := report.Fastest(); ok {
		r.logger.Infow("Fastest strategy", "strategy", fastest.Strategy)
	}
	return report, nil
}

func (r *Runner) benchmarkOne(ctx context.Context, s detect.Strategy) (Timing, error) {
	chains := make([]*chain.Chain, len(r.fixtures))
	for i, f := range r.fixtures {
		chains[i] = f.Build()
	}

	timing := Timing{Strategy: s.Name}
	for round := 0; round < r.iterations; round++ {
		if err := ctx.Err(); err != nil {
			return timing, fmt.Errorf("interrupted: %w", err)
		}
		if s.Mutates && round > 0 {
			for _, c := range chains {
				c.Restore()
			}
		}

		start := r.now()
		for i, c := range chains {
			// The answer is checked by Verify; a failing call would make
			// the round time meaningless.
			if _, err := s.HasCycle(c.Start()); err != nil {
				return timing, fmt.Errorf("fixture %s: %w", r.fixtures[i].Name, err)
			}
		}
		timing.Elapsed += r.now().Sub(start)
		timing.Calls += len(chains)
		timing.Rounds++
	}
	return timing, nil
}

func markFastest(timings []Timing) {
	best := -1
	for i, t := range timings {
		if t.Elapsed <= 0 {
			continue
		}
		if best < 0 || t.RoundsPerSecond() > timings[best].RoundsPerSecond() {
			best = i
		}
	}
	if best >= 0 {
		timings[best].Fastest = true
	}
}

// links snapshots the forward link of every node in append order.
func links(c *chain.Chain) []*chain.Node {
	nodes := c.Nodes()
	out := make([]*chain.Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Next
	}
	return out
}

func sameLinks(a, b []*chain.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
