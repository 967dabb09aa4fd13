package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/stackbump/pkg/errors"
)

func writeFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), `
exclude = ["internal-*", "types-*"]
cache_ttl = "12h"
concurrency = 4

[registries]
pypi = "https://pypi.example.com/pypi"
`)

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{
		Exclude:     []string{"internal-*", "types-*"},
		CacheTTL:    Duration{12 * time.Hour},
		Concurrency: 4,
		Registries:  Registries{PyPI: "https://pypi.example.com/pypi"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.CacheTTL.Duration != DefaultCacheTTL || got.Concurrency != DefaultConcurrency {
		t.Errorf("Load defaults = %+v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "exclude = ["},
		{"bad duration", `cache_ttl = "soon"`},
		{"unknown key", `excludes = ["x"]`},
		{"bad url", "[registries]\nnpm = \"ftp://example.com\""},
		{"negative concurrency", "concurrency = -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.content)
			_, err := Load(path)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load error = %v, want invalid config", err)
			}
		})
	}
}

func TestWithDefaultsKeepsSetValues(t *testing.T) {
	c := Config{CacheTTL: Duration{time.Minute}, Concurrency: 2}.WithDefaults()
	if c.CacheTTL.Duration != time.Minute || c.Concurrency != 2 {
		t.Errorf("WithDefaults() = %+v", c)
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := writeFile(t, root, "")

	got := Find(nested)
	// TempDir may be reached through a symlink; compare resolved paths.
	gotReal, _ := filepath.EvalSymlinks(got)
	wantReal, _ := filepath.EvalSymlinks(want)
	if gotReal != wantReal {
		t.Errorf("Find(%q) = %q, want %q", nested, got, want)
	}
}
