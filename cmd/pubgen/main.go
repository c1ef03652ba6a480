// Package main provides the pubgen CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/qzhang/pubgen/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool
	configPath  string
	verbose     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pubgen",
	Short: "Generate publication and collaborator pages from a BibTeX file",
	Long: `pubgen reads a BibTeX bibliography and writes two Markdown documents:

  - a publication list grouped into Published, Preprints, Workinprogress
    and Thesis sections (chosen from each entry's keywords)
  - a collaborator list ranked by number of co-authored entries

Author roles are read from each entry's note field, e.g.
  note = {self=Qiong Zhang,equalcontrib=Amy Lee|Bob Brown,corresponding=John Smith}

Running pubgen without a subcommand is the same as 'pubgen generate'.
Configuration comes from pubgen.yml, .env / PUBGEN_* variables and flags.`,
	Args:          cobra.NoArgs,
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./pubgen.yml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline details to stderr")
	addPathFlags(rootCmd)
	rootCmd.Version = Version
}

// loadConfig layers defaults, the YAML file, .env / environment and flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}

	_ = godotenv.Load()
	cfg.ApplyEnv(os.Getenv)
	applyPathFlags(cmd, &cfg)
	cfg.ExpandPaths()

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// mustLoadConfig loads configuration, exits on error.
func mustLoadConfig(cmd *cobra.Command) config.Config {
	cfg, err := loadConfig(cmd)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// newLogger returns a development logger at debug level with --verbose and a
// no-op logger otherwise. Logs go to stderr so stdout stays machine-readable.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
