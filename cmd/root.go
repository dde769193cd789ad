package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lenix123/dd-manager/internal/config"
	"github.com/lenix123/dd-manager/internal/ddclient"
	"github.com/lenix123/dd-manager/internal/logging"
	"github.com/lenix123/dd-manager/internal/store"
)

var (
	tokenFlag  string
	configFlag string
	debugMode  bool

	cfg    *config.Config
	logger *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "dd-manager",
	Short: "dd-manager - distributes findings across assignees and collects remediation statistics",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(debugMode)
		if err != nil {
			return err
		}

		cfg, err = config.Load(configFlag)
		if err != nil {
			return err
		}
		if token := os.Getenv("DD_TOKEN"); token != "" {
			cfg.Token = token
		}
		if tokenFlag != "" {
			cfg.Token = tokenFlag
		}
		return cfg.Validate()
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&tokenFlag, "token", "t", "", "platform API token (see https://dd.codescoring.tech/api/key-v2)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to a YAML config file (default dd-manager.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
}

func newClient() *ddclient.Client {
	return ddclient.New(cfg.BaseURL(), cfg.Token, logger)
}

func loadStore() (*store.Store, error) {
	return store.Load(cfg.TasksFile)
}
