package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	appconfig "Food-Inventory/cmd/config"
	migration "Food-Inventory/cmd/database/migrate"
	"Food-Inventory/internal/jobs"
	"Food-Inventory/internal/utils"
	"Food-Inventory/internal/utils/mailing"
	"Food-Inventory/pkg/expiry"
	"Food-Inventory/pkg/food"
	"Food-Inventory/pkg/logger"
	"Food-Inventory/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const defaultConfigPath = "config.yaml"

type rootOptions struct {
	configPath string
}

// NewRootCommand builds the foodinv command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "foodinv",
		Short: "Food inventory backend with expiration tracking",
		Long: `Tracks stored food items, computes their expiration dates from a production
date and shelf-life period, and flags items that are about to expire.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "path to the YAML config file")

	rootCmd.AddCommand(newServeCommand(opts))
	rootCmd.AddCommand(newMigrateCommand(opts))
	rootCmd.AddCommand(newRefreshCommand(opts))
	rootCmd.AddCommand(newAddUserCommand(opts))
	return rootCmd
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// environment holds the pieces every subcommand starts from.
type environment struct {
	cfg  *utils.Config
	logg *logger.Logger
	db   *gorm.DB
}

func setup(opts *rootOptions, logOutput io.Writer) (*environment, error) {
	cfg, err := utils.LoadConfig(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logg := logger.New(logger.Options{
		ServiceName: cfg.AppName,
		Level:       logger.ParseLevel(cfg.LogLevel),
		Format:      cfg.LogFormat,
		Output:      logOutput,
	})

	db, err := appconfig.ConnectDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := migration.Migrate(db); err != nil {
		closeDB(db)
		return nil, err
	}
	return &environment{cfg: cfg, logg: logg, db: db}, nil
}

func (e *environment) close() {
	closeDB(e.db)
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (e *environment) policy() expiry.Policy {
	return expiry.Policy{
		WarningWindowDays: e.cfg.WarningWindowDays,
		Location:          e.cfg.Location(),
	}
}

// newRefresher wires the status refresher. A Redis lock is used when
// REDIS_URL is set and a mail digest when SMTP is configured.
func (e *environment) newRefresher(ctx context.Context, reg prometheus.Registerer) (*jobs.StatusRefresher, func(), error) {
	cleanup := func() {}

	var lock jobs.Lock = jobs.NoopLock{}
	if e.cfg.RedisURL != "" {
		client, err := jobs.NewRedisClient(ctx, e.cfg.RedisURL)
		if err != nil {
			return nil, cleanup, err
		}
		lock = jobs.NewRefreshLock(client)
		cleanup = func() { _ = client.Close() }
	}

	var notifier jobs.Notifier = jobs.LogNotifier{Logger: e.logg}
	if e.cfg.MailEnabled() {
		mailer := mailing.NewMailer(mailing.LoadMailConfig(e.cfg))
		notifier = jobs.NewMailNotifier(mailer, e.cfg.DigestRecipient)
	}

	refresher, err := jobs.NewStatusRefresher(jobs.RefresherParams{
		Repository: food.NewFoodRepository(e.db),
		Policy:     e.policy(),
		Lock:       lock,
		Metrics:    metrics.NewJobMetrics(reg),
		Notifier:   notifier,
		Logger:     e.logg,
	})
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	return refresher, cleanup, nil
}
