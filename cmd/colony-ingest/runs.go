package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yanivbyd/colony-analytics/internal/catalog"
)

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.Flags().Int("limit", 20, "maximum number of runs to show")
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent ingest runs from the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, _, err := setup()
		if err != nil {
			return err
		}

		cat, err := catalog.NewCatalog(cfg.CatalogPath)
		if err != nil {
			return err
		}
		defer cat.Close()

		records, err := cat.RecentRuns(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(os.Stdout, "No ingest runs recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CREATED\tCOLONY\tTABLE\tOBJECTS\tROWS\tUPLOADED\tDURATION\tFINGERPRINT")
		for _, rec := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%t\t%dms\t%016x\n",
				rec.CreatedAt.Format("2006-01-02 15:04:05"),
				rec.ColonyID, rec.Table, rec.ObjectCount, rec.RowCount,
				rec.Uploaded, rec.DurationMs, uint64(rec.Fingerprint))
		}
		return w.Flush()
	},
}
