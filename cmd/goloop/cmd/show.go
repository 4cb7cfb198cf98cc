package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goloop/internal/chain"
	"github.com/dbsmedya/goloop/internal/config"
	"github.com/dbsmedya/goloop/internal/detect"
	"github.com/dbsmedya/goloop/internal/diagram"
	"github.com/dbsmedya/goloop/internal/fixture"
	"github.com/dbsmedya/goloop/internal/report"
)

var (
	showAscii    bool
	showMaxNodes int
)

var showCmd = &cobra.Command{
	Use:   "show <fixture>",
	Short: "Draw a fixture and run every strategy on it",
	Long: `Show draws the chain a fixture builds, with the loop back-link drawn as
a bracket, next to a summary of its topology and the answer and work count
of every strategy.

Chains longer than --max-nodes are summarised without the drawing.

Example:
  goloop show tail-loop
  goloop show full-loop --ascii`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showAscii, "ascii", false,
		"Draw with plain ASCII instead of box drawing characters")
	showCmd.Flags().IntVar(&showMaxNodes, "max-nodes", 64,
		"Largest chain to draw")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	registry, err := fixture.FromConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to build fixtures: %w", err)
	}
	f, err := registry.Lookup(args[0])
	if err != nil {
		return err
	}

	topo, err := chain.Inspect(f.Build().Start())
	if err != nil {
		return fmt.Errorf("failed to inspect fixture %q: %w", f.Name, err)
	}

	summary, err := summaryLines(f, topo)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report.Header(out, "Chain: %s", f.Name)
	fmt.Fprintln(out)

	if topo.Len() > showMaxNodes {
		fmt.Fprintf(out, "(%d nodes, drawing skipped; raise --max-nodes to draw)\n\n", topo.Len())
		fmt.Fprintln(out, strings.Join(summary, "\n"))
		return nil
	}

	drawing, err := diagram.Render(topo, nil, diagramConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to render diagram: %w", err)
	}
	report.SideBySide(out, drawing, summary, 4)

	fmt.Fprintln(out)
	printPath(out, topo)
	return nil
}

func diagramConfig(cfg *config.Config) *diagram.Config {
	return &diagram.Config{UseAscii: cfg.Output.ASCII}
}

// summaryLines describes the topology and runs every strategy on a fresh
// copy of the fixture.
func summaryLines(f fixture.Fixture, topo *chain.Topology) ([]string, error) {
	entry := "none"
	if topo.Cyclic() {
		entry = fmt.Sprint(topo.Entry.Value)
	}

	lines := []string{
		"[ Chain Summary ]",
		strings.Repeat("-", 17),
		fmt.Sprintf("Shape:       %s", f.Shape),
		fmt.Sprintf("Nodes:       %d", topo.Len()),
		fmt.Sprintf("Tail:        %d", topo.TailLen),
		fmt.Sprintf("Loop:        %d", topo.LoopLen),
		fmt.Sprintf("Loops into:  %s", entry),
		"",
		"[ Detectors ]",
		strings.Repeat("-", 13),
	}

	for _, s := range detect.All() {
		trace, err := s.Trace(f.Build().Start())
		if err != nil {
			return nil, fmt.Errorf("strategy %s: %w", s.Name, err)
		}
		answer := "none"
		if trace.Cycle {
			answer = "cycle"
		}
		lines = append(lines, fmt.Sprintf("%-17s %-5s %6d links", s.Name, answer, trace.Advances))
	}
	return lines, nil
}

func printPath(w io.Writer, topo *chain.Topology) {
	report.Section(w, "Path")
	fmt.Fprintf(w, "  %s\n", topo.Path(nil))
	fmt.Fprintf(w, "  %s\n", topo)
}
