package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbump/pkg/buildinfo"
	"github.com/matzehuels/stackbump/pkg/cache"
	"github.com/matzehuels/stackbump/pkg/config"
	"github.com/matzehuels/stackbump/pkg/deps"
	"github.com/matzehuels/stackbump/pkg/deps/languages"
	"github.com/matzehuels/stackbump/pkg/errors"
)

// appName is the application name used for directories and display.
const appName = "stackbump"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	exclude    []string
	noCache    bool
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Stackbump finds outdated dependencies in project manifests",
		Long: `Stackbump reads dependency declarations from Python and npm manifests
(requirements files, pyproject.toml, setup.py, Pipfile, package.json), looks up
the published versions and suggests satisfying, patch, minor and major upgrades.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}
	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default: nearest "+config.FileName+")")
	flags.StringSliceVar(&c.exclude, "exclude", nil, "glob of declared names to ignore (repeatable)")
	flags.BoolVar(&c.noCache, "no-cache", false, "do not read or write the registry cache")

	root.AddCommand(c.parseCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file named by --config, or the nearest one
// above the working directory, and merges the --exclude flags into it.
func (c *CLI) loadConfig() (config.Config, error) {
	path := c.configPath
	if path == "" {
		path = config.Find(".")
	}

	cfg := config.Config{}.WithDefaults()
	if path != "" {
		if c.configPath != "" {
			if _, err := os.Stat(path); err != nil {
				return config.Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file")
			}
		}
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
		c.Logger.Debug("loaded config", "path", path)
	}
	cfg.Exclude = append(cfg.Exclude, c.exclude...)
	return cfg, nil
}

// newDispatcher builds the parser dispatcher for cfg.
func (c *CLI) newDispatcher(cfg config.Config) (*deps.Dispatcher, error) {
	ex, err := deps.NewExclusions(cfg.Exclude...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "exclude pattern")
	}
	return deps.NewDispatcher(languages.Parsers(), ex, c.Logger), nil
}

func (c *CLI) newCache() (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/stackbump/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	return cache.DefaultDir()
}
