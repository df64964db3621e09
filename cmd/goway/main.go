package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"goway/config"
	"goway/destination"
	gowaylog "goway/utils/log"
)

const version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flags override the environment configuration.
type flags struct {
	storePath string
	dataset   string
	logLevel  string
	metrics   string
	open      string
}

func (f flags) apply(cfg *config.Config) {
	if f.storePath != "" {
		cfg.StorePath = f.storePath
	}
	if f.dataset != "" {
		cfg.Dataset = f.dataset
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.metrics != "" {
		cfg.MetricsAddr = f.metrics
	}
}

// parseOpen maps the --open flag to a destination; empty means none.
func parseOpen(raw string) (*destination.Destination, error) {
	if raw == "" {
		return nil, nil
	}
	if strings.EqualFold(raw, string(destination.KindSearch)) {
		d := destination.Search()
		return &d, nil
	}
	k, ok := destination.ParseCategory(raw)
	if !ok {
		return nil, fmt.Errorf("unknown screen %q", raw)
	}
	d := destination.Category(k)
	return &d, nil
}

func rootCmd() *cobra.Command {
	var (
		f   flags
		cfg *config.Config
	)

	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "Indoor wayfinding for office parks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			f.apply(loaded)
			cfg = loaded
			logPath := gowaylog.Init(config.AppName, cfg.LogOptions())
			gowaylog.L().Debugf("%s %s logging to %s", config.AppName, version, logPath)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			gowaylog.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			open, err := parseOpen(f.open)
			if err != nil {
				return err
			}
			return runTUI(cfg, open)
		},
	}

	cmd.PersistentFlags().StringVar(&f.storePath, "store", "", "Pending request store (sqlite file)")
	cmd.PersistentFlags().StringVar(&f.dataset, "dataset", "", "Venue dataset (YAML); the bundled one by default")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&f.metrics, "metrics-addr", "", "Serve prometheus metrics on this address")
	cmd.Flags().StringVar(&f.open, "open", "", "Start on a category screen, or search")

	cmd.AddCommand(
		requestCmd(&cfg),
		pendingCmd(&cfg),
		clearCmd(&cfg),
		venuesCmd(&cfg),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", config.AppName, version)
			},
		},
	)

	return cmd
}
