package bench

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/goloop/internal/chain"
	"github.com/dbsmedya/goloop/internal/detect"
	"github.com/dbsmedya/goloop/internal/fixture"
	"github.com/dbsmedya/goloop/internal/logger"
)

// fakeClock advances by step on every reading.
func fakeClock(step time.Duration) func() time.Time {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func defaultFixtures(t *testing.T) []fixture.Fixture {
	t.Helper()
	r := fixture.Default()
	for _, f := range fixture.Generated(64) {
		require.NoError(t, r.Register(f))
	}
	return r.All()
}

func TestNewRunner_Errors(t *testing.T) {
	fixtures := fixture.Default().All()

	_, err := NewRunner(nil, fixtures)
	assert.Error(t, err)

	_, err = NewRunner(detect.All(), nil)
	assert.Error(t, err)

	_, err = NewRunner(detect.All(), fixtures, WithIterations(0))
	assert.Error(t, err)
}

func TestVerify_AllStrategiesAllFixtures(t *testing.T) {
	r, err := NewRunner(detect.All(), defaultFixtures(t), WithLogger(logger.NewNop()))
	require.NoError(t, err)

	report, err := r.Verify(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report.Failed())
	assert.Equal(t, len(report.Checks), report.Passed())
	assert.Equal(t, detect.Names(), report.Strategies)

	for _, s := range detect.All() {
		for _, f := range report.Fixtures {
			c, ok := report.Result(s.Name, f)
			require.True(t, ok, "missing result for %s/%s", s.Name, f)
			assert.True(t, c.Passed(), c.String())
		}
	}
}

func TestVerify_RepeatAndIntactOnlyForNonMutating(t *testing.T) {
	fixtures := fixture.Default().All()
	r, err := NewRunner(detect.All(), fixtures)
	require.NoError(t, err)

	report, err := r.Verify(context.Background())
	require.NoError(t, err)

	kinds := map[string]map[CheckKind]int{}
	for _, c := range report.Checks {
		if kinds[c.Strategy] == nil {
			kinds[c.Strategy] = map[CheckKind]int{}
		}
		kinds[c.Strategy][c.Kind]++
	}

	for _, s := range detect.All() {
		assert.Equal(t, len(fixtures), kinds[s.Name][KindResult], s.Name)
		if s.Mutates {
			assert.Zero(t, kinds[s.Name][KindRepeat], s.Name)
			assert.Zero(t, kinds[s.Name][KindIntact], s.Name)
		} else {
			assert.Equal(t, len(fixtures), kinds[s.Name][KindRepeat], s.Name)
			assert.Equal(t, len(fixtures), kinds[s.Name][KindIntact], s.Name)
		}
	}
}

func TestVerify_ReportsMismatch(t *testing.T) {
	// Declared acyclic but built as a full loop.
	liar := fixture.Fixture{
		Name:  "liar",
		Shape: fixture.Acyclic,
		Build: func() *chain.Chain {
			c, _ := fixture.Generate(fixture.FullLoop, 3, 0)
			return c
		},
	}
	two, err := detect.Lookup("two-pointer")
	require.NoError(t, err)

	r, err := NewRunner([]detect.Strategy{two}, []fixture.Fixture{liar})
	require.NoError(t, err)

	report, err := r.Verify(context.Background())
	require.Error(t, err)

	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	require.Len(t, mismatch.Failed, 1)
	assert.Equal(t, KindResult, mismatch.Failed[0].Kind)
	assert.Contains(t, err.Error(), "1 of 3 checks failed")
	assert.Contains(t, err.Error(), "two-pointer/liar (result): want false, got true")
	assert.Len(t, report.Failed(), 1)
}

func TestVerify_Cancelled(t *testing.T) {
	r, err := NewRunner(detect.All(), fixture.Default().All())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := r.Verify(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Checks)
}

func TestBenchmark_TimesEveryStrategy(t *testing.T) {
	fixtures := defaultFixtures(t)
	r, err := NewRunner(detect.All(), fixtures, WithIterations(5))
	require.NoError(t, err)
	r.now = fakeClock(time.Millisecond)

	report, err := r.Benchmark(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Timings, len(detect.All()))

	fastestCount := 0
	for _, timing := range report.Timings {
		assert.Equal(t, 5, timing.Rounds)
		assert.Equal(t, 5*len(fixtures), timing.Calls)
		// Two clock readings per round, one step apart.
		assert.Equal(t, 5*time.Millisecond, timing.Elapsed)
		assert.Equal(t, timing.Elapsed/time.Duration(timing.Calls), timing.PerCall())
		if timing.Fastest {
			fastestCount++
		}
	}
	assert.Equal(t, 1, fastestCount)

	fastest, ok := report.Fastest()
	require.True(t, ok)
	assert.Equal(t, report.Timings[0].Strategy, fastest.Strategy, "ties go to the first strategy")
}

func TestBenchmark_Cancelled(t *testing.T) {
	r, err := NewRunner(detect.All(), fixture.Default().All(), WithIterations(10))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.Benchmark(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "interrupted")
}

func TestBenchmark_DetectorErrorStopsRun(t *testing.T) {
	empty := fixture.Fixture{
		Name:  "empty",
		Shape: fixture.Acyclic,
		Build: chain.New,
	}
	fixtures := append(fixture.Default().All(), empty)

	r, err := NewRunner(detect.All()[:2], fixtures, WithIterations(3))
	require.NoError(t, err)

	report, err := r.Benchmark(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, detect.ErrInvalidInput)
	assert.Contains(t, err.Error(), "fixture empty")
	assert.Empty(t, report.Timings, "no timing is recorded for a failed strategy")
}

func TestBenchmark_MutatingStrategiesStillCorrectAfterRounds(t *testing.T) {
	// After the benchmark restores chains, a verification of the same
	// fixtures must still pass; the benchmark never hands a polluted chain
	// to a detector.
	mark, err := detect.Lookup("mark")
	require.NoError(t, err)
	rev, err := detect.Lookup("reversal")
	require.NoError(t, err)

	r, err := NewRunner([]detect.Strategy{mark, rev}, fixture.Default().All(), WithIterations(3))
	require.NoError(t, err)

	_, err = r.Benchmark(context.Background())
	require.NoError(t, err)

	_, err = r.Verify(context.Background())
	assert.NoError(t, err)
}

func TestMarkFastest(t *testing.T) {
	timings := []Timing{
		{Strategy: "slow", Rounds: 10, Elapsed: 10 * time.Second},
		{Strategy: "zero", Rounds: 10, Elapsed: 0},
		{Strategy: "quick", Rounds: 10, Elapsed: time.Second},
	}
	markFastest(timings)

	assert.False(t, timings[0].Fastest)
	assert.False(t, timings[1].Fastest, "untimed entries are never fastest")
	assert.True(t, timings[2].Fastest)
	assert.InDelta(t, 10.0, timings[2].RoundsPerSecond(), 1e-9)
}

func TestTiming_ZeroValues(t *testing.T) {
	var timing Timing
	assert.Zero(t, timing.PerCall())
	assert.Zero(t, timing.RoundsPerSecond())
}
