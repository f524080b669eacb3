package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/legwise/legwise/internal/journey"
)

func (a *app) newRankCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank journeys for a tab and mode selection.",
		Long: `Rank prints the best journeys for one ranking tab.

Tabs:
- fastest: shortest door-to-door time
- cheapest: lowest total fare
- smart: cost plus a weighted share of the time (default)`,
		Example: `  legwise rank --tab cheapest --modes train,bus
  legwise rank --tab fastest --depart 2024-03-01T08:00:00Z`,
		Args: cobra.NoArgs,
		RunE: a.runRank,
	}

	cmd.Flags().String(keyTab, journey.StrategySmart, "ranking tab: "+strings.Join(journey.StrategyNames(), ", "))
	cmd.Flags().String(keyModes, "", "comma separated allowed modes (default all)")
	cmd.Flags().Float64(keyWeight, 0, "smart time weight (default policy weight)")
	cmd.Flags().Int(keyLimit, journey.DefaultResultLimit, "number of journeys to show")
	cmd.Flags().String(keyDepart, "", "departure time (RFC3339) to print an itinerary")
	return cmd
}

func (a *app) runRank(cmd *cobra.Command, _ []string) error {
	query, err := a.rankQuery()
	if err != nil {
		return err
	}

	planner, err := a.newPlanner(cmd)
	if err != nil {
		return err
	}

	results, err := planner.Search(cmd.Context(), query)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	strategy := journey.ParseStrategy(query.Strategy, query.TimeWeight)
	if _, err := fmt.Fprintf(out, "Tab: %s  Modes: %s\n", strategy.Name(), query.Modes); err != nil {
		return err
	}
	if len(results) == 0 {
		_, err := fmt.Fprintln(out, "No journeys match the selected modes.")
		return err
	}

	if err := writeResultsTable(out, results, newPalette(a.v.GetBool(keyColor))); err != nil {
		return err
	}

	for _, r := range results {
		if r.Itinerary == nil {
			continue
		}
		if err := writeItinerary(out, r); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) rankQuery() (journey.Query, error) {
	q := journey.Query{
		Strategy:   a.v.GetString(keyTab),
		TimeWeight: a.v.GetFloat64(keyWeight),
	}

	if !isStrategy(q.Strategy) {
		return q, fmt.Errorf("unknown tab %q (want one of %s)", q.Strategy, strings.Join(journey.StrategyNames(), ", "))
	}

	if list := a.v.GetString(keyModes); list != "" {
		modes, unknown := journey.ParseModes(list)
		if len(unknown) > 0 {
			sort.Strings(unknown)
			return q, fmt.Errorf("unknown modes: %s", strings.Join(unknown, ", "))
		}
		q.Modes = modes
	}

	if depart := a.v.GetString(keyDepart); depart != "" {
		t, err := time.Parse(time.RFC3339, depart)
		if err != nil {
			return q, fmt.Errorf("parse --depart: %w", err)
		}
		q.DepartAt = t
	}
	return q, nil
}

func isStrategy(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range journey.StrategyNames() {
		if s == name {
			return true
		}
	}
	return false
}
