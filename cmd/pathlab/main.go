// Command pathlab drives registered pathfinding algorithms over YAML graph
// documents: list the registry, replay one run step by step, or race two
// algorithms and compare their metrics.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/algorithms"
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/graphio"
)

var (
	flagVerbose   bool
	flagGraph     string
	flagSource    string
	flagTarget    string
	flagHeuristic string
)

func main() {
	root := &cobra.Command{
		Use:           "pathlab",
		Short:         "Step-driven pathfinding playback",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if flagVerbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newListCmd(), newRunCmd(), newCompareCmd())

	if err := root.Execute(); err != nil {
		slog.Error("pathlab failed", "error", err)
		os.Exit(1)
	}
}

// addRunFlags wires the flags shared by run and compare.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagGraph, "graph", "g", "", "YAML graph document (required)")
	cmd.Flags().StringVarP(&flagSource, "source", "s", "", "source vertex ID (required)")
	cmd.Flags().StringVarP(&flagTarget, "target", "t", "", "target vertex ID (required)")
	cmd.Flags().StringVar(&flagHeuristic, "heuristic", "", "heuristic for A*/Greedy (euclidean|manhattan|octile|zero)")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")
}

// loadGraph reads the --graph document.
func loadGraph() (*core.Graph, error) {
	g, err := graphio.LoadFile(flagGraph)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	slog.Debug("graph loaded", "path", flagGraph, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return g, nil
}

// runOptions translates CLI flags into algorithm options.
func runOptions() []algorithms.Option {
	var opts []algorithms.Option
	if flagHeuristic != "" {
		opts = append(opts, algorithms.WithHeuristic(algorithms.Heuristic(flagHeuristic)))
	}

	return opts
}
