package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yleoer/numeral/pkg/database"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversions",
	RunE:  runHistory,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Number of records to show (default HISTORY_LIMIT)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	limit := historyLimit
	if limit <= 0 {
		limit = cfg.HistoryLimit
	}
	dbStore, err := database.NewSQLiteStore(cfg.DBPath, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer dbStore.Close()

	records, err := dbStore.RecentConversions(limit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No conversions recorded yet.")
		return nil
	}
	for _, rec := range records {
		result := rec.Output
		if rec.ErrKind != "" {
			result = "错误：" + rec.ErrKind
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.Input, result)
	}
	return nil
}
