// Command shootings runs the shooting-incident report: it loads the public
// incident CSV, cleans it, prints the weekday/year/region summaries, fits
// murders against shootings, and optionally renders HTML plots.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shootings/internal/config"
	"shootings/internal/pipeline"
	"shootings/internal/report"
)

var (
	logger *zap.Logger

	configPath string
	inputPath  string
	outputDir  string
	noPlots    bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:          "shootings",
	Short:        "Descriptive report over the historical shooting-incident dataset",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		if logger, err = zcfg.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the full pipeline and print the summary tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		res, err := pipeline.Run(cfg, logger)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := report.WriteTable(out, "Shootings by weekday", res.Weekday); err != nil {
			return err
		}

		if err := report.WriteTable(out, "Shootings by year", res.Yearly); err != nil {
			return err
		}

		if err := report.WriteTable(out, "Shootings by region", res.Region); err != nil {
			return err
		}

		if err := report.WriteTable(out, "Shootings by region and year", res.Pivot); err != nil {
			return err
		}

		if err := report.WriteTable(out, "Year model", res.YearModel); err != nil {
			return err
		}

		return report.WriteFit(out, res.Fit)
	},
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadConfig(configPath); err != nil {
			return nil, err
		}
	}

	// flags override file values
	if inputPath != "" {
		cfg.Input = inputPath
	}

	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	if noPlots {
		cfg.Plots = false
	}

	if cfg.Input == "" {
		return nil, fmt.Errorf("no input file: set --input or the config's input key")
	}

	return cfg, nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	reportCmd.Flags().StringVar(&inputPath, "input", "", "incident CSV path")
	reportCmd.Flags().StringVar(&outputDir, "output", "", "plot output directory")
	reportCmd.Flags().BoolVar(&noPlots, "no-plots", false, "skip HTML plot output")

	rootCmd.AddCommand(reportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
