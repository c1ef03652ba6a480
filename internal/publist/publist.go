// Package publist runs the whole generation pipeline: load the bibliography,
// render both documents and write them out.
package publist

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/qzhang/pubgen/internal/bibtex"
	"github.com/qzhang/pubgen/internal/config"
	"github.com/qzhang/pubgen/internal/reference"
	"github.com/qzhang/pubgen/internal/render"
)

// Documents holds both rendered Markdown documents and what went into them.
type Documents struct {
	Publications  string
	Collaborators string

	Entries        int
	SectionCounts  map[reference.Section]int
	Collaborations []render.Collaborator
}

// Result summarizes a completed run.
type Result struct {
	PublicationsPath  string         `json:"publications_path"`
	CollaboratorsPath string         `json:"collaborators_path"`
	Entries           int            `json:"entries"`
	Sections          map[string]int `json:"sections"`
	Collaborators     int            `json:"collaborators"`
}

// Load reads the configured bibliography. Any error is fatal for a run.
func Load(cfg config.Config, log *zap.Logger) ([]bibtex.Entry, error) {
	log = orNop(log)
	entries, err := bibtex.ParseFile(cfg.BibFile)
	if err != nil {
		return nil, err
	}
	log.Debug("Loaded bibliography", zap.String("path", cfg.BibFile), zap.Int("entries", len(entries)))
	return entries, nil
}

// Build renders both documents from already loaded entries.
func Build(entries []bibtex.Entry, self string, log *zap.Logger) *Documents {
	log = orNop(log)
	docs := &Documents{
		Entries:       len(entries),
		SectionCounts: make(map[reference.Section]int, len(reference.Sections)),
	}

	groups := render.GroupBySection(entries)
	debug := log.Core().Enabled(zap.DebugLevel)
	for _, s := range reference.Sections {
		docs.SectionCounts[s] = len(groups[s])
		if !debug {
			continue
		}
		for _, e := range groups[s] {
			log.Debug("Classified entry",
				zap.String("key", e.Key),
				zap.String("section", string(s)),
				zap.Strings("authors", reference.SplitAuthors(e.Get("author"))))
		}
	}

	docs.Publications = render.GroupedPublicationsMarkdown(groups, self)
	docs.Collaborations = render.TallyCollaborators(entries, self)
	docs.Collaborators = render.CollaboratorsMarkdown(docs.Collaborations)
	return docs
}

// Generate loads the bibliography, renders both documents and writes them to
// the configured paths. Missing parent directories are created.
func Generate(cfg config.Config, log *zap.Logger) (*Result, error) {
	log = orNop(log)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	entries, err := Load(cfg, log)
	if err != nil {
		return nil, err
	}
	docs := Build(entries, cfg.SelfName, log)

	if err := writeFile(cfg.PublicationsFile, docs.Publications); err != nil {
		return nil, err
	}
	log.Info("Generated publications", zap.String("path", cfg.PublicationsFile))

	if err := writeFile(cfg.CollaboratorsFile, docs.Collaborators); err != nil {
		return nil, err
	}
	log.Info("Generated collaborators", zap.String("path", cfg.CollaboratorsFile),
		zap.Int("collaborators", len(docs.Collaborations)))

	sections := make(map[string]int, len(docs.SectionCounts))
	for s, n := range docs.SectionCounts {
		sections[string(s)] = n
	}
	return &Result{
		PublicationsPath:  cfg.PublicationsFile,
		CollaboratorsPath: cfg.CollaboratorsFile,
		Entries:           docs.Entries,
		Sections:          sections,
		Collaborators:     len(docs.Collaborations),
	}, nil
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
