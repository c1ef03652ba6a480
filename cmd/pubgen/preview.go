package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/qzhang/pubgen/internal/publist"
)

var previewWidth int

func init() {
	previewCmd.Flags().IntVar(&previewWidth, "width", 80, "Word wrap width")
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview [publications|collaborators]",
	Short: "Render a generated document in the terminal",
	Long: `Render a generated document in the terminal without writing any files.

Examples:
  pubgen preview
  pubgen preview collaborators --width 100`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"publications", "collaborators"},
	RunE:      runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig(cmd)
	logger := newLogger()
	defer logger.Sync()

	entries, err := publist.Load(cfg, logger)
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}
	docs := publist.Build(entries, cfg.SelfName, logger)

	markdown := docs.Publications
	if len(args) == 1 && args[0] == "collaborators" {
		markdown = docs.Collaborators
	}

	out, err := renderMarkdown(markdown, previewWidth)
	if err != nil {
		exitWithError(ExitError, "rendering preview: %v", err)
	}
	fmt.Print(out)
	return nil
}

// renderMarkdown styles Markdown for the terminal.
func renderMarkdown(markdown string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}
