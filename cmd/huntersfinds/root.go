package main

import (
	"fmt"
	"os"

	"github.com/okian/huntersfinds/internal/adapters/repository"
	"github.com/okian/huntersfinds/internal/adapters/timer"
	service "github.com/okian/huntersfinds/internal/app"
	"github.com/okian/huntersfinds/internal/config"
	"github.com/okian/huntersfinds/internal/domain/scoring"
	"github.com/okian/huntersfinds/pkg/logger"
	"github.com/spf13/cobra"
)

// cli carries state shared by every subcommand once the root has run.
type cli struct {
	configPath string
	format     string

	cfg *config.Config
	log logger.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "huntersfinds",
		Short: "Rate dishes and browse the leaderboards",
		Long: `huntersfinds scores dish ratings from taste, price-value and portion,
ranks them against the catalog, and lets you explore restaurants, groups
and diners.

Configuration comes from defaults, then the YAML file named by --config
or HUNTERS_CONFIG, then HUNTERS_* environment variables.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML config file (overrides "+config.EnvConfigPath+")")
	root.PersistentFlags().StringVar(&c.format, "format", formatText, "output format: text, yaml or json")

	root.AddCommand(
		c.rateCmd(),
		c.leaderboardCmd(),
		c.categoriesCmd(),
		c.browseCmd(),
		c.simulateCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if err := validFormat(c.format); err != nil {
		return err
	}

	path := c.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	cfg, err := config.LoadFile(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c.cfg = cfg

	opts := []logger.Option{logger.WithWriter(cmd.ErrOrStderr())}
	if cfg.LogFormat == "json" {
		opts = append(opts, logger.WithJSON())
	}
	if err := logger.Init(opts...); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	c.log = logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		c.log.Warn(cmd.Context(), "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	return nil
}

// newService builds a controller from the loaded configuration.
func (c *cli) newService(clock timer.Clock) *service.Service {
	return service.New(
		service.WithLogger(c.log.Named("app")),
		service.WithClock(clock),
		service.WithCatalog(repository.NewMemoryCatalog()),
		service.WithEngine(scoring.NewEngine(scoring.WithCategoryAverages(c.cfg.CategoryAverages))),
		service.WithCloseDelay(c.cfg.CloseDelay()),
		service.WithStackLimit(c.cfg.ModalStackLimit),
		service.WithRecordSubmissions(c.cfg.RecordSubmissions),
		service.WithQueueSize(c.cfg.QueueSize),
	)
}
