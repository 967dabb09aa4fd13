// Package config loads stackbump settings from .stackbump.toml.
//
// The file is optional. Every field has a default, and command-line flags
// override what the file sets:
//
//	exclude = ["internal-*", "types-*"]
//	cache_ttl = "12h"
//	concurrency = 4
//
//	[registries]
//	pypi = "https://pypi.example.com/pypi"
//	npm = "https://npm.example.com"
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackbump/pkg/errors"
)

// FileName is the configuration file looked up by [Find].
const FileName = ".stackbump.toml"

const (
	DefaultCacheTTL    = 24 * time.Hour
	DefaultConcurrency = 8
)

// Config holds the settings of one run.
type Config struct {
	Exclude     []string   `toml:"exclude"`     // Glob patterns of declared names to ignore
	CacheTTL    Duration   `toml:"cache_ttl"`   // How long registry responses are reused
	Concurrency int        `toml:"concurrency"` // Parallel registry lookups
	Registries  Registries `toml:"registries"`
}

// Registries overrides registry base URLs. Empty means the public registry.
type Registries struct {
	PyPI string `toml:"pypi"`
	NPM  string `toml:"npm"`
}

// Duration is a time.Duration written as a Go duration string ("12h").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// WithDefaults returns a copy with unset fields filled in.
func (c Config) WithDefaults() Config {
	if c.CacheTTL.Duration <= 0 {
		c.CacheTTL.Duration = DefaultCacheTTL
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	return c
}

// Validate checks registry URLs and numeric limits.
func (c Config) Validate() error {
	if c.Concurrency < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "concurrency must not be negative")
	}
	for name, raw := range map[string]string{"pypi": c.Registries.PyPI, "npm": c.Registries.NPM} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "registries.%s: invalid URL %q", name, raw)
		}
	}
	return nil
}

// Load reads the file at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c.WithDefaults(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c.WithDefaults(), nil
}

// Find returns the path of the nearest FileName in dir or one of its
// parents, or "" when there is none.
func Find(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		p := filepath.Join(dir, FileName)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
