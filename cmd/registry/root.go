package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rzbill/registry/internal/config"
	"github.com/rzbill/registry/pkg/log"
	"github.com/rzbill/registry/pkg/store"
	"github.com/rzbill/registry/pkg/version"
)

var (
	cfgFile      string
	storeBackend string
	dataDir      string
	logLevel     string
	logFormat    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "registry",
	Short: "Registry - typed resource registry",
	Long: `Registry is a minimal typed resource registry: self-describing,
ownership-linked records stored and retrieved by their
apiVersion/kind/name reference.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	Version: version.Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&storeBackend, "store", "", "store backend (memory, badger)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory for disk-backed stores")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")

	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newApplyCmd())
	rootCmd.AddCommand(newGetCmd())
}

// openStore loads configuration, applies flag overrides, and opens the
// configured backend.
func openStore() (store.Store, log.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if storeBackend != "" {
		cfg.Store.Backend = storeBackend
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}

	logger := cfg.NewLogger()
	s, err := cfg.OpenStore(logger)
	if err != nil {
		return nil, nil, err
	}
	return s, logger, nil
}
