package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/qzhang/pubgen/internal/publist"
	"github.com/qzhang/pubgen/internal/reference"
	"github.com/qzhang/pubgen/internal/render"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(os.Stderr, "%s %s\n", red("error:"), msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// ConfigResponse is the response for the config command.
type ConfigResponse struct {
	BibFile           string `json:"bib_file"`
	PublicationsFile  string `json:"publications_file"`
	CollaboratorsFile string `json:"collaborators_file"`
	SelfName          string `json:"self_name"`
}

// CollaboratorsResponse is the response for the collaborators command.
type CollaboratorsResponse struct {
	Collaborators []render.Collaborator `json:"collaborators"`
	Total         int                   `json:"total"`
}

// printGenerateHuman prints a run summary in human-readable format.
func printGenerateHuman(res *publist.Result) {
	green := color.New(color.FgGreen).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Printf("%s %s\n", green("Generated"), res.PublicationsPath)
	for _, s := range reference.Sections {
		fmt.Printf("  %-16s %s\n", render.SectionHeading(s), gray(fmt.Sprintf("%d entries", res.Sections[string(s)])))
	}
	fmt.Printf("%s %s\n", green("Generated"), res.CollaboratorsPath)
	fmt.Printf("  %s\n", gray(fmt.Sprintf("%d collaborators", res.Collaborators)))
}

// printCollaboratorsHuman prints the ranked collaborator list.
func printCollaboratorsHuman(collabs []render.Collaborator) {
	if len(collabs) == 0 {
		fmt.Println("No collaborators found")
		return
	}
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	for i, c := range collabs {
		fmt.Printf("%3d. %s (%d papers)\n", i+1, cyan(c.Name), c.Count)
	}
}
