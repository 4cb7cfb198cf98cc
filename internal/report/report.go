package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gookit/color"

	"github.com/dbsmedya/goloop/internal/bench"
	"github.com/dbsmedya/goloop/internal/chain"
	"github.com/dbsmedya/goloop/internal/detect"
	"github.com/dbsmedya/goloop/internal/fixture"
)

var (
	passStyle    = color.Style{color.FgGreen}
	failStyle    = color.Style{color.FgRed, color.OpBold}
	fastestStyle = color.Style{color.FgCyan, color.OpBold}
	mutateStyle  = color.Style{color.FgYellow}
)

// Strategies lists the registered strategies and their trade-offs.
func Strategies(w io.Writer, strategies []detect.Strategy, useColor bool) {
	t := NewTable("NAME", "TITLE", "TIME", "SPACE", "MUTATES", "NOTES")
	for _, s := range strategies {
		mutates := Plain("no")
		switch {
		case s.Mutates:
			mutates = Styled(mutateStyle, "yes")
		case s.Restores:
			mutates = Plain("restores")
		}
		t.AddRow(Plain(s.Name), Plain(s.Title), Plain(s.Time), Plain(s.Space), mutates, Plain(s.Notes))
	}
	t.Render(w, useColor)
}

// Fixtures lists fixtures with the topology each one builds.
func Fixtures(w io.Writer, fixtures []fixture.Fixture, useColor bool) error {
	t := NewTable("NAME", "SHAPE", "NODES", "TAIL", "LOOP", "DESCRIPTION")
	for _, f := range fixtures {
		topo, err := chain.Inspect(f.Build().Start())
		if err != nil {
			return fmt.Errorf("fixture %q: %w", f.Name, err)
		}
		t.AddRow(
			Plain(f.Name),
			Plain(f.Shape.String()),
			Plain(strconv.Itoa(topo.Len())),
			Plain(strconv.Itoa(topo.TailLen)),
			Plain(strconv.Itoa(topo.LoopLen)),
			Plain(f.Description),
		)
	}
	t.Render(w, useColor)
	return nil
}

// Matrix prints one row per strategy and one column per fixture. Each cell
// shows the detector's answer and how many links it followed.
func Matrix(w io.Writer, r *bench.Report, useColor bool) {
	headers := append([]string{"STRATEGY"}, r.Fixtures...)
	t := NewTable(headers...)

	for _, s := range r.Strategies {
		row := []Cell{Plain(s)}
		for _, f := range r.Fixtures {
			c, ok := r.Result(s, f)
			if !ok {
				row = append(row, Plain("-"))
				continue
			}
			row = append(row, resultCell(c))
		}
		t.AddRow(row...)
	}
	t.Render(w, useColor)

	fmt.Fprintln(w)
	failed := r.Failed()
	summary := fmt.Sprintf("%d checks, %d passed, %d failed in %s",
		len(r.Checks), r.Passed(), len(failed), r.Duration().Round(time.Microsecond))
	if useColor {
		if len(failed) > 0 {
			summary = failStyle.Sprint(summary)
		} else {
			summary = passStyle.Sprint(summary)
		}
	}
	fmt.Fprintln(w, summary)

	for _, c := range failed {
		line := "  - " + c.String()
		if useColor {
			line = failStyle.Sprint(line)
		}
		fmt.Fprintln(w, line)
	}
}

func resultCell(c bench.Check) Cell {
	if c.Err != nil {
		return Styled(failStyle, "error")
	}
	answer := "none"
	if c.Got {
		answer = "cycle"
	}
	text := fmt.Sprintf("%s %d", answer, c.Advances)
	if !c.Passed() {
		return Styled(failStyle, text+" !")
	}
	return Styled(passStyle, text)
}

// Timings prints the benchmark table and names the fastest strategy.
func Timings(w io.Writer, r *bench.Report, useColor bool) {
	t := NewTable("STRATEGY", "ROUNDS", "CALLS", "TOTAL", "PER CALL", "ROUNDS/S", "")
	for _, tm := range r.Timings {
		mark := Plain("")
		name := Plain(tm.Strategy)
		if tm.Fastest {
			mark = Styled(fastestStyle, "fastest")
			name = Styled(fastestStyle, tm.Strategy)
		}
		t.AddRow(
			name,
			Plain(strconv.Itoa(tm.Rounds)),
			Plain(strconv.Itoa(tm.Calls)),
			Plain(tm.Elapsed.Round(time.Microsecond).String()),
			Plain(tm.PerCall().String()),
			Plainf("%.0f", tm.RoundsPerSecond()),
			mark,
		)
	}
	t.Render(w, useColor)

	fmt.Fprintln(w)
	if fastest, ok := r.Fastest(); ok {
		fmt.Fprintf(w, "Fastest is %s\n", fastest.Strategy)
	}
}
