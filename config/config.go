// Package config loads egit's ambient repository settings: an optional
// EGIT_DIR environment override layered over an optional .egit/config INI
// file, scoped to the handful of settings this system needs.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/xerrors"
	"gopkg.in/ini.v1"

	"github.com/augustgit/egit/internal/egitpath"
)

// Config is the resolved set of ambient settings for one repository.
type Config struct {
	// DotEgitPath is the absolute path to the repository's .egit
	// directory, after applying the EGIT_DIR override.
	DotEgitPath string
	// DefaultBranch is the branch HEAD points to on a fresh Init.
	DefaultBranch string
	// IgnoreFile is the name of the ignore file, relative to the working
	// tree root.
	IgnoreFile string
}

// Load resolves a Config for a repository whose working tree root is
// workTreeRoot. EGIT_DIR, when set, overrides the default
// "<workTreeRoot>/.egit" location. When a .egit/config file exists, its
// [core] section overrides the defaultBranch and ignoreFile settings.
func Load(fs afero.Fs, workTreeRoot string) (*Config, error) {
	dotEgitPath := filepath.Join(workTreeRoot, egitpath.DotEgitPath)
	if v := os.Getenv("EGIT_DIR"); v != "" {
		dotEgitPath = v
	}

	cfg := &Config{
		DotEgitPath:   dotEgitPath,
		DefaultBranch: egitpath.DefaultBranch,
		IgnoreFile:    egitpath.DefaultIgnoreFile,
	}

	configPath := filepath.Join(dotEgitPath, egitpath.ConfigPath)
	raw, err := afero.ReadFile(fs, configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, xerrors.Errorf("could not read config file %s: %w", configPath, err)
	}

	file, err := ini.Load(raw)
	if err != nil {
		return nil, xerrors.Errorf("could not parse config file %s: %w", configPath, err)
	}
	core := file.Section("core")
	if core.HasKey("defaultBranch") {
		cfg.DefaultBranch = core.Key("defaultBranch").String()
	}
	if core.HasKey("ignoreFile") {
		cfg.IgnoreFile = core.Key("ignoreFile").String()
	}
	return cfg, nil
}
