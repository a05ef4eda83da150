package commands

import (
	"context"
	"fmt"

	"github.com/ougirez/planstat/internal/pkg/config"
	"github.com/ougirez/planstat/internal/pkg/constants"
	"github.com/ougirez/planstat/internal/pkg/logger"
	"github.com/ougirez/planstat/internal/pkg/store"
	"github.com/ougirez/planstat/internal/pkg/store/mongostore"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags.
	Version = "dev"

	configFile string
	verbose    bool
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "planstat",
	Short:         "Indicator statistics for planning data",
	Long:          `planstat derives statistics and chart series from indicator followup data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return fmt.Errorf("config.Load: %w", err)
		}

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		if err = logger.Init(level, cfg.LogDevelopment); err != nil {
			return fmt.Errorf("logger.Init: %w", err)
		}

		logger.Infof(cmd.Context(), "planstat %s, store driver %s", Version, cfg.StoreDriver)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default ./planstat.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case constants.StoreDriverPostgres:
		return store.ConnectPostgres(ctx, cfg.PostgresDSN, cfg.StoreConnectRetries)
	case constants.StoreDriverMongo:
		return mongostore.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.StoreConnectRetries)
	default:
		return nil, fmt.Errorf("%w: %q", constants.ErrUnknownDriver, cfg.StoreDriver)
	}
}
