package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/legwise/legwise/internal/catalog"
	"github.com/legwise/legwise/internal/journey"
)

// palette colours risk scores: 0 green, 1 yellow, 2 and above red.
type palette struct {
	low, medium, high func(...any) string
	dim               func(...any) string
}

func newPalette(enabled bool) palette {
	if !enabled {
		return palette{low: fmt.Sprint, medium: fmt.Sprint, high: fmt.Sprint, dim: fmt.Sprint}
	}
	return palette{
		low:    color.New(color.FgGreen).SprintFunc(),
		medium: color.New(color.FgYellow).SprintFunc(),
		high:   color.New(color.FgRed, color.Bold).SprintFunc(),
		dim:    color.New(color.FgHiBlack).SprintFunc(),
	}
}

func (p palette) risk(score int) string {
	s := strconv.Itoa(score)
	switch {
	case score <= 0:
		return p.low(s)
	case score == 1:
		return p.medium(s)
	default:
		return p.high(s)
	}
}

func (p palette) saving(e journey.Emissions) string {
	if !e.Claimed() {
		return p.dim("-")
	}
	return fmt.Sprintf("%.2f (%d%%)", e.Savings, e.SavingsPercent)
}

func writeResultsTable(w io.Writer, results []journey.Result, p palette) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Rank", "Journey", "Cost", "Time", "Risk", "CO2 Saving"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(results))
	for _, r := range results {
		data = append(data, []string{
			strconv.Itoa(r.Rank),
			r.ID,
			fmt.Sprintf("%.2f", r.Cost),
			r.DurationText,
			p.risk(r.Risk),
			p.saving(r.Emissions),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeCombinationsTable(w io.Writer, combos []journey.Combination, p palette) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Journey", "Cost", "Time", "Risk", "CO2", "vs Drive", "CO2 Saving"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(combos))
	for _, c := range combos {
		data = append(data, []string{
			c.ID,
			fmt.Sprintf("%.2f", c.Cost),
			journey.FormatDuration(c.Time),
			p.risk(c.Risk),
			fmt.Sprintf("%.2f", c.Emissions.Combination),
			fmt.Sprintf("%+d min", c.VsDriving.TimeDelta),
			p.saving(c.Emissions),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeSegmentsTable breaks every leg down by segment. The figures are
// display estimates; scores use whole-leg emissions.
func writeSegmentsTable(w io.Writer, c *catalog.Catalog) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Group", "Leg", "Segment", "Mode", "Time", "Distance", "CO2"})

	var data [][]string
	add := func(group catalog.Group, legs ...catalog.Leg) {
		for i := range legs {
			for _, se := range journey.SegmentEmissions(&legs[i]) {
				data = append(data, []string{
					string(group),
					legs[i].ID,
					se.Segment.Label,
					string(se.Segment.Mode),
					journey.FormatDuration(se.Segment.DurationMinutes),
					fmt.Sprintf("%.2f", se.DistanceUnits),
					fmt.Sprintf("%.2f", se.Emission),
				})
			}
		}
	}
	add(catalog.GroupFirstMile, c.FirstMile...)
	add(catalog.GroupMainLeg, c.MainLeg)
	add(catalog.GroupLastMile, c.LastMile...)

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeItinerary(w io.Writer, r journey.Result) error {
	if _, err := fmt.Fprintf(w, "\n#%d %s, arrive %s\n", r.Rank, r.ID, r.Itinerary.ArriveAt.Format("15:04")); err != nil {
		return err
	}
	for _, s := range r.Itinerary.Steps {
		label := s.Label
		if s.Kind == journey.StepTravel {
			label = fmt.Sprintf("%s to %s", s.Label, s.DestinationName)
		}
		if _, err := fmt.Fprintf(w, "  %s  %s\n", s.TimeRange(), label); err != nil {
			return err
		}
	}
	return nil
}
