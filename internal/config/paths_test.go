package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPathsHonoursHomeOverride(t *testing.T) {
	root := t.TempDir()
	t.Setenv("TERMSYNC_HOME", root)
	paths, err := DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths() error = %v", err)
	}
	if paths.Home != root {
		t.Fatalf("expected home %q, got %q", root, paths.Home)
	}
	if paths.ConfigPath != filepath.Join(root, "config.json") {
		t.Fatalf("unexpected config path %q", paths.ConfigPath)
	}
}

func TestDefaultPathsUnderUserHome(t *testing.T) {
	t.Setenv("TERMSYNC_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	paths, err := DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths() error = %v", err)
	}
	if paths.Home != filepath.Join(home, ".termsync") {
		t.Fatalf("unexpected home %q", paths.Home)
	}
}

func TestEnsureDirectories(t *testing.T) {
	paths := PathsAt(filepath.Join(t.TempDir(), "a", "b"))
	if err := paths.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() error = %v", err)
	}
	for _, dir := range []string{paths.Home, paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s to exist", dir)
		}
	}
}
