// Package cli wires the evos command tree: GPU and system snapshot
// views over the monitoring services.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/evanluo/evos/internal/config"
	"github.com/evanluo/evos/internal/i18n"
	"github.com/evanluo/evos/internal/logger"
)

const version = "1.0.0"

var (
	cfgFile  string
	unitFlag string
	langFlag string

	cfg    *config.Config
	log    *zap.Logger
	labels *i18n.Catalog
)

var rootCmd = &cobra.Command{
	Use:           "evos",
	Short:         "Console GPU and system monitor",
	Long:          "evos shows point-in-time GPU telemetry and host memory/process snapshots.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if unitFlag != "" {
			cfg.Display.ByteUnit = strings.ToLower(unitFlag)
		}
		if langFlag != "" {
			cfg.General.Language = strings.ToLower(langFlag)
		}

		log, err = logger.New(cfg.Log.Level, cfg.Log.File)
		if err != nil {
			return err
		}
		labels = i18n.New(cfg.General.Language)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			log.Sync()
		}
	},
}

// Execute runs the command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		PrintError(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default ./evos.yaml, ~/.evos/evos.yaml)")
	rootCmd.PersistentFlags().StringVarP(&unitFlag, "unit", "u", "",
		"byte unit: auto, kb, mb, gb")
	rootCmd.PersistentFlags().StringVarP(&langFlag, "lang", "l", "",
		"display language: en, zh")

	rootCmd.AddCommand(gpuCmd)
	rootCmd.AddCommand(systemCmd)
	rootCmd.AddCommand(processesCmd)
	rootCmd.AddCommand(hardwareCmd)
	rootCmd.AddCommand(watchCmd)
}
