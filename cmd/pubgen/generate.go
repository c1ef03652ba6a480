package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/qzhang/pubgen/internal/bibtex"
	"github.com/qzhang/pubgen/internal/config"
	"github.com/qzhang/pubgen/internal/publist"
)

var (
	flagBibFile           string
	flagPublicationsFile  string
	flagCollaboratorsFile string
	flagSelfName          string
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the publications and collaborators documents",
	Long: `Write the publications and collaborators documents.

Examples:
  pubgen generate
  pubgen generate --bib refs.bib --self "Amy Lee"
  pubgen generate --publications site/pubs.md --collaborators site/people.md --human`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

// addPathFlags registers the path and identity overrides shared by every command.
func addPathFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&flagBibFile, "bib", "", "BibTeX source file")
	flags.StringVar(&flagPublicationsFile, "publications", "", "Output path for the publications document")
	flags.StringVar(&flagCollaboratorsFile, "collaborators", "", "Output path for the collaborators document")
	flags.StringVar(&flagSelfName, "self", "", "Self-identity name (bolded, excluded from collaborators)")
}

// applyPathFlags copies explicitly set flags into cfg.
func applyPathFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("bib") {
		cfg.BibFile = flagBibFile
	}
	if flags.Changed("publications") {
		cfg.PublicationsFile = flagPublicationsFile
	}
	if flags.Changed("collaborators") {
		cfg.CollaboratorsFile = flagCollaboratorsFile
	}
	if flags.Changed("self") {
		cfg.SelfName = flagSelfName
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig(cmd)
	logger := newLogger()
	defer logger.Sync()

	res, err := publist.Generate(cfg, logger)
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	if humanOutput {
		printGenerateHuman(res)
		return nil
	}
	return outputJSON(res)
}

// exitCodeFor maps pipeline errors to exit codes.
func exitCodeFor(err error) int {
	var synErr *bibtex.SyntaxError
	switch {
	case errors.As(err, &synErr):
		return ExitDataError
	case errors.Is(err, config.ErrEmptyField):
		return ExitConfigError
	default:
		return ExitError
	}
}
