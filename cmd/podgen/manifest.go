package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"podgen/internal/expand"
)

// podgen.toml binds extra derive names to trait paths:
//
//	[[derive]]
//	name = "Zeroable"
//	trait = "crate::pod::Zeroable"
//
// The built-in Pod binding stays unless the manifest overrides it.
type podgenManifest struct {
	Path   string
	Root   string
	Config podgenConfig
}

type podgenConfig struct {
	Derive []deriveConfig `toml:"derive"`
}

type deriveConfig struct {
	Name  string `toml:"name"`
	Trait string `toml:"trait"`
}

func findPodgenToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "podgen.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadPodgenManifest(startDir string) (*podgenManifest, bool, error) {
	manifestPath, ok, err := findPodgenToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadPodgenConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &podgenManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadPodgenConfig(path string) (podgenConfig, error) {
	var cfg podgenConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return podgenConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	for i, d := range cfg.Derive {
		if strings.TrimSpace(d.Name) == "" {
			return podgenConfig{}, fmt.Errorf("%s: [[derive]] entry %d: missing name", path, i+1)
		}
		if strings.TrimSpace(d.Trait) == "" {
			return podgenConfig{}, fmt.Errorf("%s: [[derive]] %q: missing trait", path, d.Name)
		}
	}
	return cfg, nil
}

// buildRegistry starts from the built-in bindings and layers the manifest
// (if any) on top.
func buildRegistry(startDir string) (*expand.Registry, error) {
	reg := expand.DefaultRegistry()

	manifest, ok, err := loadPodgenManifest(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return reg, nil
	}

	for _, d := range manifest.Config.Derive {
		trait, terr := expand.ParseTraitPath(d.Trait)
		if terr != nil {
			return nil, fmt.Errorf("%s: [[derive]] %q: %w", manifest.Path, d.Name, terr)
		}
		reg.Register(strings.TrimSpace(d.Name), trait)
	}
	return reg, nil
}
