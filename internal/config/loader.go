// Package config decodes rule configuration files into the generic
// structure the resolver consumes. Supported formats: a JSON or YAML
// rc file, or the [lint] section of the brick.toml project manifest.
// The resolver never sees raw file text.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/abrick/brick/internal/rules"
)

// SearchFiles is the discovery order inside a directory. The manifest
// comes last so an explicit rc file always wins.
var SearchFiles = []string{
	".brickrc.json",
	".brickrc.yaml",
	".brickrc.yml",
	"brick.config.json",
	"brick.toml",
}

// ManifestName is the project manifest; its lint configuration lives
// under the [lint] table.
const ManifestName = "brick.toml"

// Discover returns the first config file found in dir, or "".
func Discover(dir string) string {
	for _, name := range SearchFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadFile decodes one config file by extension. For the project
// manifest only the [lint] section is read.
func LoadFile(path string) (*rules.FileConfig, error) {
	k := koanf.New(".")

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		parser = kjson.Parser()
	case ".yaml", ".yml":
		parser = kyaml.Parser()
	case ".toml":
		parser = ktoml.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	if filepath.Base(path) == ManifestName {
		k = k.Cut("lint")
	}
	return fromKoanf(k)
}

// LoadDir discovers and decodes configuration in dir. A missing config
// file is not an error; it returns (nil, nil).
func LoadDir(dir string) (*rules.FileConfig, error) {
	path := Discover(dir)
	if path == "" {
		return nil, nil
	}
	return LoadFile(path)
}

// FromMap decodes an in-memory configuration mapping through the same
// normalization as a file, for runtime overrides and tests.
func FromMap(data map[string]any) (*rules.FileConfig, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(data, "."), nil); err != nil {
		return nil, fmt.Errorf("load config map: %w", err)
	}
	return fromKoanf(k)
}

// fromKoanf maps the decoded tree onto the resolver's generic
// structure, normalizing the shorthand forms: extends may be a single
// string or a list.
func fromKoanf(k *koanf.Koanf) (*rules.FileConfig, error) {
	cfg := &rules.FileConfig{}

	switch v := k.Get("extends").(type) {
	case nil:
	case string:
		cfg.Extends = []string{v}
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("extends entries must be strings, got %T", item)
			}
			cfg.Extends = append(cfg.Extends, s)
		}
	case []string:
		cfg.Extends = v
	default:
		return nil, fmt.Errorf("extends must be a string or a list, got %T", v)
	}

	if raw := k.Get("rules"); raw != nil {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("rules must be a mapping, got %T", raw)
		}
		cfg.Rules = m
	}

	switch v := k.Get("ignorePatterns").(type) {
	case nil:
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("ignorePatterns entries must be strings, got %T", item)
			}
			cfg.IgnorePatterns = append(cfg.IgnorePatterns, s)
		}
	case []string:
		cfg.IgnorePatterns = v
	default:
		return nil, fmt.Errorf("ignorePatterns must be a list, got %T", v)
	}

	return cfg, nil
}
