// Package config loads the optional qrcgen tool configuration. Build
// systems usually pass everything on the command line; the config file
// exists so projects can check their bundling defaults into the repo.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Default config file names probed in the working directory, in order.
var defaultFiles = []string{".qrcgen.yaml", ".qrcgen.yml", ".qrcgen.toml"}

// Config is the optional tool configuration. Command-line flags take
// precedence over every field.
type Config struct {
	// Output is the default manifest destination path.
	Output string `yaml:"output" toml:"output"`

	// TranslationDirs are the default upstream translation directories,
	// scanned in order.
	TranslationDirs []string `yaml:"translation-dirs" toml:"translation-dirs"`

	// LocalTranslationDir is the default directory of the project's own
	// translations (and its translations.conf).
	LocalTranslationDir string `yaml:"local-translation-dir" toml:"local-translation-dir"`

	// Sort orders directory listings for reproducible manifests.
	// Defaults to true.
	Sort *bool `yaml:"sort,omitempty" toml:"sort,omitempty"`

	// Components overrides the allow-list of bundled components
	// (default: qt, qtbase).
	Components []string `yaml:"components,omitempty" toml:"components,omitempty"`
}

// SortEnabled resolves the Sort field to its effective value.
func (c *Config) SortEnabled() bool {
	if c == nil || c.Sort == nil {
		return true
	}
	return *c.Sort
}

// Load reads the tool configuration. With an explicit path the file must
// exist and parse; with an empty path the default file names are probed and
// a missing file yields a nil config.
func Load(path string) (*Config, error) {
	if path != "" {
		return loadFile(path)
	}

	for _, name := range defaultFiles {
		if _, err := os.Stat(name); err == nil {
			return loadFile(name)
		}
	}
	return nil, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if len(bytes.TrimSpace(data)) == 0 {
		return &cfg, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
		}
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
		}
	}

	return &cfg, nil
}
