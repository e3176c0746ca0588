package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// Loader handles loading the configuration.
type Loader struct {
	Version      string // Build version, used to determine dev mode
	OverridePath string // Set at compile time if needed
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Load attempts to load the configuration.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}
	return LoadFile(path)
}

// LoadFile parses the configuration stored at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath is where a new configuration is written.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "polypaint", "config.rc"), nil
}

// GetConfigPath returns the path to the configuration file, or empty string if not found.
func (l *Loader) GetConfigPath() string {
	if l.OverridePath != "" {
		if path, err := homedir.Expand(l.OverridePath); err == nil {
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	if l.Version == "dev" {
		wd, _ := os.Getwd()
		localPath := filepath.Join(wd, ".polypaintrc")
		if _, err := os.Stat(localPath); err == nil {
			return localPath
		}
	}

	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	for _, name := range []string{"config.rc", "polypaint.rc"} {
		p := filepath.Join(home, ".config", "polypaint", name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
