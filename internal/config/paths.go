package config

import (
	"os"
	"path/filepath"
)

// Paths holds all the file system paths used by the application
type Paths struct {
	Home       string // ~/.termsync
	ConfigPath string // ~/.termsync/config.json
	LogDir     string // ~/.termsync/logs
}

// DefaultPaths returns the default paths configuration. TERMSYNC_HOME
// replaces ~/.termsync when set.
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("TERMSYNC_HOME")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		root = filepath.Join(home, ".termsync")
	}
	return PathsAt(root), nil
}

// PathsAt lays out the standard files under root.
func PathsAt(root string) *Paths {
	return &Paths{
		Home:       root,
		ConfigPath: filepath.Join(root, "config.json"),
		LogDir:     filepath.Join(root, "logs"),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Home, p.LogDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
