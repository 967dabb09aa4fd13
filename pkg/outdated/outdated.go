// Package outdated looks up the release history of declared dependencies
// and computes their upgrade candidates.
//
// A [Runner] takes the declarations of one manifest, fetches each distinct
// base name once from the ecosystem's registry (several lookups in
// flight at a time) and returns a [Report] in declaration order. Registry
// failures are recorded on the affected entries; they never abort the
// whole check.
package outdated

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/stackbump/pkg/deps"
	"github.com/matzehuels/stackbump/pkg/errors"
	"github.com/matzehuels/stackbump/pkg/integrations"
	"github.com/matzehuels/stackbump/pkg/observability"
	"github.com/matzehuels/stackbump/pkg/version"
)

// DefaultConcurrency bounds registry lookups when Options.Concurrency is unset.
const DefaultConcurrency = 8

// VersionSource returns the published versions of a package. The pypi and
// npm registry clients implement it.
type VersionSource interface {
	FetchVersions(ctx context.Context, name string, refresh bool) (*integrations.Versions, error)
}

// Options configures a Runner.
type Options struct {
	Concurrency int         // Parallel registry lookups (default DefaultConcurrency)
	Refresh     bool        // Bypass cached registry responses
	Logger      *log.Logger // nil means log.Default()
}

// WithDefaults returns a copy with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// Entry is one declaration with its lookup outcome.
type Entry struct {
	deps.Declaration
	Latest     string             `json:"latest,omitempty"` // Newest stable release
	Candidates version.Candidates `json:"candidates"`       // Upgrade picks for the declared spec
	Outdated   bool               `json:"outdated"`         // Latest is newer than the declared version
	Error      string             `json:"error,omitempty"`  // Lookup failure, if any
	Err        error              `json:"-"`
}

// Options returns the deduplicated upgrade choices for this entry.
func (e Entry) Options() []version.Option {
	return e.Candidates.Options(e.Version)
}

// Report is the result of one check.
type Report struct {
	File      string  `json:"file,omitempty"` // Manifest path, set by callers
	Ecosystem string  `json:"ecosystem"`
	Entries   []Entry `json:"entries"`
}

// Outdated returns the entries whose latest release is newer than declared.
func (r *Report) Outdated() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Outdated {
			out = append(out, e)
		}
	}
	return out
}

// Failed returns the entries whose lookup failed.
func (r *Report) Failed() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Err != nil {
			out = append(out, e)
		}
	}
	return out
}

// Runner checks declarations against their registries.
type Runner struct {
	sources map[string]VersionSource
	opts    Options
}

// NewRunner creates a Runner. sources maps an ecosystem name ("pypi",
// "npm") to its registry client.
func NewRunner(sources map[string]VersionSource, opts Options) *Runner {
	return &Runner{sources: sources, opts: opts.WithDefaults()}
}

type lookup struct {
	known []string
	err   error
}

// Check looks up every declaration of one manifest in the ecosystem's
// registry. Only a canceled context or an unknown ecosystem fail the call.
func (r *Runner) Check(ctx context.Context, ecosystem string, decls []deps.Declaration) (report *Report, err error) {
	src, ok := r.sources[ecosystem]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupported, "no registry configured for %q", ecosystem)
	}

	hooks := observability.Check()
	hooks.OnCheckStart(ctx, ecosystem, len(decls))
	start := time.Now()
	defer func() {
		entries, stale := 0, 0
		if report != nil {
			entries, stale = len(report.Entries), len(report.Outdated())
		}
		hooks.OnCheckComplete(ctx, ecosystem, entries, stale, time.Since(start), err)
	}()

	var (
		mu      sync.Mutex
		results = make(map[string]lookup)
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Concurrency)
	for _, name := range uniqueNames(decls) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			l := r.fetch(gctx, src, ecosystem, name)
			mu.Lock()
			results[name] = l
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report = &Report{Ecosystem: ecosystem, Entries: make([]Entry, 0, len(decls))}
	for _, d := range decls {
		report.Entries = append(report.Entries, evaluate(d, results[d.BaseName]))
	}
	return report, nil
}

func (r *Runner) fetch(ctx context.Context, src VersionSource, ecosystem, name string) lookup {
	v, err := src.FetchVersions(ctx, name, r.opts.Refresh)
	if err != nil {
		r.opts.Logger.Warn("registry lookup failed", "registry", ecosystem, "package", name, "err", err)
		return lookup{err: errors.Wrap(classify(err), err, "%s: %s", ecosystem, name)}
	}
	r.opts.Logger.Debug("fetched versions", "registry", ecosystem, "package", name, "count", len(v.Versions))
	known := v.Versions
	if len(known) == 0 && v.Latest != "" {
		known = []string{v.Latest}
	}
	return lookup{known: known}
}

// classify maps registry errors to error codes.
func classify(err error) errors.Code {
	switch {
	case stderrors.Is(err, integrations.ErrNotFound):
		return errors.ErrCodePackageNotFound
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.ErrCodeTimeout
	default:
		return errors.ErrCodeNetwork
	}
}

func evaluate(d deps.Declaration, l lookup) Entry {
	e := Entry{Declaration: d}
	if l.err != nil {
		e.Err = l.err
		e.Error = errors.UserMessage(l.err)
		return e
	}
	e.Latest = version.Latest(l.known)
	if d.HasVersion() {
		e.Candidates = version.ComputeUpgradeOptions(d.Spec(), l.known)
		e.Outdated = e.Latest != "" && version.CompareStrings(e.Latest, d.Version) > 0
	}
	return e
}

// uniqueNames returns the distinct base names in first-seen order.
func uniqueNames(decls []deps.Declaration) []string {
	seen := make(map[string]bool, len(decls))
	var names []string
	for _, d := range decls {
		if !seen[d.BaseName] {
			seen[d.BaseName] = true
			names = append(names, d.BaseName)
		}
	}
	return names
}
