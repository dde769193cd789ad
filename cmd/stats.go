package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lenix123/dd-manager/internal/model"
	"github.com/lenix123/dd-manager/internal/stats"
)

var (
	startDate    string
	endDate      string
	statsVerbose bool
	statsSave    bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Collect per-user remediation statistics over a date window",
	RunE: func(cmd *cobra.Command, args []string) error {
		window := stats.DefaultWindow(cfg.WindowDays)
		if startDate != "" {
			start, err := model.ParseDay(startDate)
			if err != nil {
				return fmt.Errorf("invalid --start_date: %w", err)
			}
			window.Start = start
		}
		if endDate != "" {
			end, err := model.ParseDay(endDate)
			if err != nil {
				return fmt.Errorf("invalid --end_date: %w", err)
			}
			window.End = end
		}

		st, err := loadStore()
		if err != nil {
			return err
		}

		engine := stats.New(newClient(), st, window, logger)
		engine.Run()
		engine.Print(os.Stdout, statsVerbose)

		if statsSave {
			// The file starts the next period clean; debt carries forward.
			st.ResetPeriodCounters()
			return st.Save()
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVarP(&startDate, "start_date", "d", "", "(29/07/2002) window start, defaults to a week ago")
	statsCmd.Flags().StringVar(&endDate, "end_date", "", "(29/07/2002) window end, defaults to today")
	statsCmd.Flags().BoolVarP(&statsVerbose, "verbose", "v", false, "print raw counters per user")
	statsCmd.Flags().BoolVarP(&statsSave, "save", "s", false, "persist counters and start a new period")
	rootCmd.AddCommand(statsCmd)
}
