package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qzhang/pubgen/internal/config"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(initCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration after applying pubgen.yml,
.env / PUBGEN_* environment variables and flags.

Keys:
  bib_file            BibTeX source (PUBGEN_BIB_FILE)
  publications_file   Publications document (PUBGEN_PUBLICATIONS_FILE)
  collaborators_file  Collaborators document (PUBGEN_COLLABORATORS_FILE)
  self_name           Self-identity name (PUBGEN_SELF_NAME)`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig(cmd)

	if humanOutput {
		fmt.Printf("bib_file:            %s\n", cfg.BibFile)
		fmt.Printf("publications_file:   %s\n", cfg.PublicationsFile)
		fmt.Printf("collaborators_file:  %s\n", cfg.CollaboratorsFile)
		fmt.Printf("self_name:           %s\n", cfg.SelfName)
		return nil
	}
	return outputJSON(ConfigResponse{
		BibFile:           cfg.BibFile,
		PublicationsFile:  cfg.PublicationsFile,
		CollaboratorsFile: cfg.CollaboratorsFile,
		SelfName:          cfg.SelfName,
	})
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a pubgen.yml with the default settings",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultConfigFile
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		exitWithError(ExitConfigError, "%s already exists (use --force to overwrite)", path)
	}

	cfg := config.Default()
	applyPathFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	if err := cfg.Save(path); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("Wrote %s\n", path)
		return nil
	}
	return outputJSON(StatusResponse{Status: "created", Path: path})
}
