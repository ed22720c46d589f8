package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/engine"
)

func newRunCmd() *cobra.Command {
	var showSteps bool

	cmd := &cobra.Command{
		Use:   "run <algorithm>",
		Short: "Run one algorithm and print its result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph()
			if err != nil {
				return err
			}

			rec := engine.NewRecorder()
			if err := rec.Start(args[0], g, flagSource, flagTarget, runOptions()...); err != nil {
				return err
			}

			if showSteps {
				stepper, err := rec.Stepper()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for st, ok := stepper.Current(), true; ok; st, ok = stepper.Next() {
					fmt.Fprintf(out, "%4d  %s\n", st.Number, st.Explanation)
				}
			}

			m, err := rec.RunToCompletion()
			if err != nil {
				return err
			}
			slog.Debug("run complete", "run_id", m.RunID, "steps", m.TotalSteps)
			printMetrics(cmd, m)

			return nil
		},
	}
	addRunFlags(cmd)
	cmd.Flags().BoolVar(&showSteps, "steps", false, "print every step's explanation")

	return cmd
}

func printMetrics(cmd *cobra.Command, m engine.Metrics) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s → %s\n", m.Label, m.Source, m.Target)
	if m.Heuristic != "" {
		fmt.Fprintf(out, "  heuristic:      %s\n", m.Heuristic)
	}
	switch {
	case m.NegativeCycle:
		fmt.Fprintln(out, "  result:         negative cycle, shortest paths undefined")
	case !m.PathFound:
		fmt.Fprintln(out, "  result:         no path")
	default:
		fmt.Fprintf(out, "  path:           %d edge(s), cost %g\n", m.PathLength, m.PathCost)
	}
	fmt.Fprintf(out, "  nodes visited:  %d\n", m.NodesVisited)
	fmt.Fprintf(out, "  edges relaxed:  %d\n", m.EdgesRelaxed)
	fmt.Fprintf(out, "  total steps:    %d\n", m.TotalSteps)
	fmt.Fprintf(out, "  wall time:      %s\n", m.Duration)
}
