package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lenix123/dd-manager/internal/checks"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Scan findings and risk acceptances for anomalous states",
	Run: func(cmd *cobra.Command, args []string) {
		checks.New(newClient(), logger).Run(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
