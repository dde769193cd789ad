package cmd

import (
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lenix123/dd-manager/internal/assign"
)

var assignSave bool

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Randomly distribute open findings across users up to their quotas",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStore()
		if err != nil {
			return err
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		assigner := assign.New(newClient(), st, rng, logger)
		assigned, err := assigner.Run(os.Stdout, assign.DefaultPoolSize)
		if err != nil {
			return err
		}

		if assignSave {
			assigner.TagAssigned(assigned)
			return st.Save()
		}
		return nil
	},
}

func init() {
	assignCmd.Flags().BoolVarP(&assignSave, "save", "s", false, "tag assigned findings and persist the assignment")
	rootCmd.AddCommand(assignCmd)
}
