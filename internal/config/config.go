// Package config handles pubgen configuration: input and output paths and the
// self-identity name.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the explicit configuration passed to every pipeline stage.
type Config struct {
	BibFile           string `yaml:"bib_file"`           // BibTeX source
	PublicationsFile  string `yaml:"publications_file"`  // Markdown publication list
	CollaboratorsFile string `yaml:"collaborators_file"` // Markdown collaborator list
	SelfName          string `yaml:"self_name"`          // Bolded, never counted as a collaborator
}

const (
	DefaultConfigFile        = "pubgen.yml"
	DefaultBibFile           = "content/research/pubs.bib"
	DefaultPublicationsFile  = "content/research/publications.md"
	DefaultCollaboratorsFile = "content/research/collaborators.md"
	DefaultSelfName          = "Qiong Zhang"
)

// Environment variables that override file configuration.
const (
	EnvBibFile           = "PUBGEN_BIB_FILE"
	EnvPublicationsFile  = "PUBGEN_PUBLICATIONS_FILE"
	EnvCollaboratorsFile = "PUBGEN_COLLABORATORS_FILE"
	EnvSelfName          = "PUBGEN_SELF_NAME"
)

// ErrEmptyField is returned by Validate when a required value is blank.
var ErrEmptyField = errors.New("required configuration value is empty")

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BibFile:           DefaultBibFile,
		PublicationsFile:  DefaultPublicationsFile,
		CollaboratorsFile: DefaultCollaboratorsFile,
		SelfName:          DefaultSelfName,
	}
}

// Load returns the defaults overlaid with the YAML file at path.
// With an empty path, DefaultConfigFile in the working directory is used if it
// exists; an explicit path that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from PUBGEN_* variables. Unset or empty variables
// leave the field unchanged. getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&c.BibFile, EnvBibFile)
	set(&c.PublicationsFile, EnvPublicationsFile)
	set(&c.CollaboratorsFile, EnvCollaboratorsFile)
	set(&c.SelfName, EnvSelfName)
}

// ExpandPaths expands a leading ~ in every path field.
func (c *Config) ExpandPaths() {
	c.BibFile = ExpandPath(c.BibFile)
	c.PublicationsFile = ExpandPath(c.PublicationsFile)
	c.CollaboratorsFile = ExpandPath(c.CollaboratorsFile)
}

// Validate checks that every field has a value.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"bib_file", c.BibFile},
		{"publications_file", c.PublicationsFile},
		{"collaborators_file", c.CollaboratorsFile},
		{"self_name", c.SelfName},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrEmptyField, f.name)
		}
	}
	return nil
}

// Save writes the configuration as YAML to path.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
