package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbump/pkg/cache"
	"github.com/matzehuels/stackbump/pkg/config"
	"github.com/matzehuels/stackbump/pkg/deps"
	"github.com/matzehuels/stackbump/pkg/deps/languages"
	"github.com/matzehuels/stackbump/pkg/errors"
	"github.com/matzehuels/stackbump/pkg/integrations/npm"
	"github.com/matzehuels/stackbump/pkg/integrations/pypi"
	"github.com/matzehuels/stackbump/pkg/outdated"
	"github.com/matzehuels/stackbump/pkg/version"
)

// ErrOutdated is returned by check --fail-outdated when any declaration has
// a newer release. main maps it to exit status 1 without printing it.
var ErrOutdated = stderrors.New("outdated dependencies found")

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	refresh      bool // bypass cached registry responses
	concurrency  int  // parallel registry lookups (0 uses the config value)
	all          bool // list up-to-date declarations too
	jsonOut      bool // print reports as JSON
	failOutdated bool // exit non-zero when anything is outdated
}

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check [file|dir]...",
		Short: "Show available upgrades for declared dependencies",
		Long: `Look up every declared dependency in its registry (PyPI or npm) and
show the newest release plus the satisfying, patch, minor and major upgrades.

Registry responses are cached; use --refresh to fetch them again.

Examples:
  stackbump check
  stackbump check --all requirements.txt
  stackbump check --json --fail-outdated package.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the registry cache")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "j", 0, "parallel registry lookups (default from config)")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "also list up-to-date dependencies")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print reports as JSON")
	cmd.Flags().BoolVar(&opts.failOutdated, "fail-outdated", false, "exit with status 1 when any dependency is outdated")

	return cmd
}

func (c *CLI) runCheck(ctx context.Context, cmd *cobra.Command, args []string, opts checkOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if opts.concurrency > 0 {
		cfg.Concurrency = opts.concurrency
	}
	d, err := c.newDispatcher(cfg)
	if err != nil {
		return err
	}
	paths, err := resolveTargets(args, d)
	if err != nil {
		return err
	}

	backend, err := c.newCache()
	if err != nil {
		return err
	}
	defer backend.Close()

	runner := outdated.NewRunner(registrySources(backend, cfg), outdated.Options{
		Concurrency: cfg.Concurrency,
		Refresh:     opts.refresh,
		Logger:      logger,
	})

	var spin *Spinner
	if !opts.jsonOut && isTerminal(cmd.ErrOrStderr()) {
		spin = newSpinnerWithContext(ctx, cmd.ErrOrStderr(), "Checking registries...")
		spin.Start()
	}
	prog := newProgress(logger)
	reports, err := c.checkManifests(ctx, d, runner, paths)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	total := 0
	for _, r := range reports {
		total += len(r.Entries)
	}
	prog.done(fmt.Sprintf("Checked %d dependencies in %d manifests", total, len(reports)))

	out := cmd.OutOrStdout()
	if opts.jsonOut {
		if err := writeJSON(out, reports); err != nil {
			return err
		}
	} else {
		writeReports(out, reports, opts.all)
	}

	if opts.failOutdated {
		for _, r := range reports {
			if len(r.Outdated()) > 0 {
				return ErrOutdated
			}
		}
	}
	return nil
}

// registrySources builds the registry clients, honoring mirror URLs from cfg.
func registrySources(backend cache.Cache, cfg config.Config) map[string]outdated.VersionSource {
	ttl := cfg.CacheTTL.Duration
	return map[string]outdated.VersionSource{
		"pypi": pypi.NewClient(backend, ttl).WithBaseURL(cfg.Registries.PyPI),
		"npm":  npm.NewClient(backend, ttl).WithBaseURL(cfg.Registries.NPM),
	}
}

// checkManifests parses and checks each manifest in order.
func (c *CLI) checkManifests(ctx context.Context, d *deps.Dispatcher, runner *outdated.Runner, paths []string) ([]*outdated.Report, error) {
	reports := make([]*outdated.Report, 0, len(paths))
	for _, path := range paths {
		doc, err := readDocument(path)
		if err != nil {
			return nil, err
		}
		res := d.Parse(doc)
		ecosystem := languages.Ecosystem(res.Type)
		if ecosystem == "" {
			return nil, errors.New(errors.ErrCodeUnsupported, "unsupported manifest: %s", path)
		}

		report, err := runner.Check(ctx, ecosystem, res.Declarations)
		if err != nil {
			return nil, err
		}
		report.File = path
		reports = append(reports, report)
	}
	return reports, nil
}

// writeReports prints one table per manifest. Up-to-date entries are only
// listed when all is set; failed lookups are always reported below the table.
func writeReports(w io.Writer, reports []*outdated.Report, all bool) {
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printFile(w, r.File, r.Ecosystem)

		rows := reportRows(r, all)
		switch {
		case len(rows) > 0:
			fmt.Fprintln(w, renderTable(
				[]string{"Package", "Declared", "Latest", "Satisfies", "Patch", "Minor", "Major", "Line"},
				rows,
			))
		case len(r.Entries) == 0:
			printDetail(w, "no dependencies")
		default:
			printSuccess(w, "All %d dependencies are up to date", len(r.Entries))
		}

		for _, e := range r.Failed() {
			printWarning(w, "%s: %s", e.Name, e.Error)
		}
	}
}

func reportRows(r *outdated.Report, all bool) [][]string {
	var rows [][]string
	for _, e := range r.Entries {
		if e.Err != nil || (!e.Outdated && !all) {
			continue
		}
		picks := make(map[version.Label]string, 4)
		if !e.Candidates.Empty() {
			for _, o := range e.Options() {
				picks[o.Label] = o.Version
			}
		}
		rows = append(rows, []string{
			e.Name,
			orDash(e.Spec()),
			latestCell(e),
			orDash(picks[version.LabelSatisfies]),
			orDash(picks[version.LabelPatch]),
			orDash(picks[version.LabelMinor]),
			orDash(picks[version.LabelMajor]),
			strconv.Itoa(e.Line + 1),
		})
	}
	return rows
}

func latestCell(e outdated.Entry) string {
	if e.Latest == "" {
		return "-"
	}
	if e.Outdated {
		return StyleWarning.Render(e.Latest)
	}
	return StyleSuccess.Render(e.Latest)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
