package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/engine"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <left> <right>",
		Short: "Run two algorithms over the same graph and compare metrics",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph()
			if err != nil {
				return err
			}

			metrics := make([]engine.Metrics, 2)
			for i, key := range args {
				rec := engine.NewRecorder()
				if err := rec.Start(key, g, flagSource, flagTarget, runOptions()...); err != nil {
					return err
				}
				if metrics[i], err = rec.RunToCompletion(); err != nil {
					return err
				}
			}

			c := engine.Compare(metrics[0], metrics[1])
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "METRIC\t%s\t%s\tWINNER\n", c.Left.AlgorithmKey, c.Right.AlgorithmKey)
			fmt.Fprintf(w, "nodes visited\t%d\t%d\t%s\n", c.Left.NodesVisited, c.Right.NodesVisited, winner(c, c.NodesVisited))
			fmt.Fprintf(w, "edges relaxed\t%d\t%d\t%s\n", c.Left.EdgesRelaxed, c.Right.EdgesRelaxed, winner(c, c.EdgesRelaxed))
			fmt.Fprintf(w, "path cost\t%s\t%s\t%s\n", cost(c.Left), cost(c.Right), winner(c, c.PathCost))
			fmt.Fprintf(w, "wall time\t%s\t%s\t%s\n", c.Left.Duration, c.Right.Duration, winner(c, c.WallTime))

			return w.Flush()
		},
	}
	addRunFlags(cmd)

	return cmd
}

func winner(c engine.Comparison, v engine.Verdict) string {
	switch v {
	case engine.VerdictLeft:
		return c.Left.AlgorithmKey
	case engine.VerdictRight:
		return c.Right.AlgorithmKey
	default:
		return "tie"
	}
}

func cost(m engine.Metrics) string {
	if m.NegativeCycle {
		return "neg-cycle"
	}
	if !m.PathFound {
		return "no path"
	}

	return fmt.Sprintf("%g", m.PathCost)
}
