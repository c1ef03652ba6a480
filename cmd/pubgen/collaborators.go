package main

import (
	"github.com/spf13/cobra"

	"github.com/qzhang/pubgen/internal/publist"
	"github.com/qzhang/pubgen/internal/render"
)

var collaboratorsLimit int

func init() {
	collaboratorsCmd.Flags().IntVarP(&collaboratorsLimit, "limit", "n", 0, "Show at most N collaborators (0 = all)")
	rootCmd.AddCommand(collaboratorsCmd)
}

var collaboratorsCmd = &cobra.Command{
	Use:   "collaborators",
	Short: "List co-authors ranked by number of shared entries",
	Long: `List co-authors ranked by number of shared entries, without writing files.

The self-identity name is never counted.

Examples:
  pubgen collaborators
  pubgen collaborators --limit 10 --human`,
	Args: cobra.NoArgs,
	RunE: runCollaborators,
}

func runCollaborators(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig(cmd)
	logger := newLogger()
	defer logger.Sync()

	entries, err := publist.Load(cfg, logger)
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	collabs := render.TallyCollaborators(entries, cfg.SelfName)
	total := len(collabs)
	if collaboratorsLimit > 0 && len(collabs) > collaboratorsLimit {
		collabs = collabs[:collaboratorsLimit]
	}

	if humanOutput {
		printCollaboratorsHuman(collabs)
		return nil
	}
	if collabs == nil {
		collabs = []render.Collaborator{}
	}
	return outputJSON(CollaboratorsResponse{Collaborators: collabs, Total: total})
}
