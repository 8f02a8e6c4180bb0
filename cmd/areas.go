package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/sells-group/realty-insights/internal/dataset"
	"github.com/sells-group/realty-insights/internal/report"
)

var areasCmd = &cobra.Command{
	Use:   "areas",
	Short: "List areas with their headline metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initAssistant(cmd.Context(), "areas")
		if err != nil {
			return err
		}
		defer env.Close()

		snap := env.Service.Store().Snapshot()
		writeAreaTable(cmd.OutOrStdout(), snap.AllMetrics())
		fmt.Fprintf(cmd.OutOrStdout(), "\nsource: %s (%d records)\n", snap.Source, snap.Len())
		return nil
	},
}

func writeAreaTable(w io.Writer, metrics []dataset.AreaMetrics) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Area", "Years", "Latest Price", "Avg Price", "Avg Demand", "Growth", "Segment"})

	for _, m := range metrics {
		table.Append([]string{
			m.Area,
			fmt.Sprintf("%d-%d", m.First.Year, m.Latest.Year),
			report.Money(m.Latest.Price),
			report.Money(m.AvgPrice),
			report.Score(m.AvgDemand),
			report.Percent(m.Growth),
			report.SegmentFor(m.AvgPrice).Label(),
		})
	}

	table.Render()
}

func init() {
	rootCmd.AddCommand(areasCmd)
}
