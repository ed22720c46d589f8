package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/catalog"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered algorithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tLABEL\tTIME\tSPACE\tTAGS")
			for _, d := range catalog.List() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					d.Key, d.Label, d.TimeComplexity, d.SpaceComplexity, strings.Join(d.Tags, ","))
			}

			return w.Flush()
		},
	}
}
