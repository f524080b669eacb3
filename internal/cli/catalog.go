package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/legwise/legwise/internal/journey"
)

const keySegments = "segments"

func (a *app) newCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List every journey combination with its stats.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			planner, err := a.newPlanner(cmd)
			if err != nil {
				return err
			}

			combos := planner.Combinations()
			out := cmd.OutOrStdout()
			p := newPalette(a.v.GetBool(keyColor))
			if err := writeCombinationsTable(out, combos, p); err != nil {
				return err
			}

			b := planner.Catalog().Baseline
			if _, err := fmt.Fprintf(out, "%d combinations. Direct drive: %s, %.2f\n", len(combos), journey.FormatDuration(b.TimeMinutes), b.CostAmount); err != nil {
				return err
			}

			if !a.v.GetBool(keySegments) {
				return nil
			}
			return writeSegmentsTable(out, planner.Catalog())
		},
	}

	cmd.Flags().Bool(keySegments, false, "also print the CO2 share of every leg segment")
	return cmd
}
