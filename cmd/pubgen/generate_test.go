package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/qzhang/pubgen/internal/bibtex"
	"github.com/qzhang/pubgen/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"syntax error", fmt.Errorf("parsing pubs.bib: %w", &bibtex.SyntaxError{Line: 3, Msg: "x"}), ExitDataError},
		{"empty config value", fmt.Errorf("%w: self_name", config.ErrEmptyField), ExitConfigError},
		{"missing file", fmt.Errorf("opening bibliography: %w", os.ErrNotExist), ExitError},
		{"other", errors.New("boom"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestApplyPathFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	addPathFlags(cmd)
	if err := cmd.ParseFlags([]string{"--bib", "refs.bib", "--self", "Amy Lee"}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	cfg := config.Default()
	applyPathFlags(cmd, &cfg)

	if cfg.BibFile != "refs.bib" {
		t.Errorf("BibFile = %q, want refs.bib", cfg.BibFile)
	}
	if cfg.SelfName != "Amy Lee" {
		t.Errorf("SelfName = %q, want Amy Lee", cfg.SelfName)
	}
	if cfg.PublicationsFile != config.DefaultPublicationsFile {
		t.Errorf("PublicationsFile = %q, unset flag should keep default", cfg.PublicationsFile)
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := renderMarkdown("# Collaborators\n\n- Amy Lee (2 papers)\n", 80)
	if err != nil {
		t.Fatalf("renderMarkdown() error = %v", err)
	}
	if !strings.Contains(out, "Amy Lee (2 papers)") {
		t.Errorf("renderMarkdown() output missing list item:\n%s", out)
	}
}
