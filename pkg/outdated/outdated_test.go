package outdated

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/stackbump/pkg/deps"
	"github.com/matzehuels/stackbump/pkg/errors"
	"github.com/matzehuels/stackbump/pkg/integrations"
	"github.com/matzehuels/stackbump/pkg/observability"
	"github.com/matzehuels/stackbump/pkg/version"
)

type fakeSource struct {
	mu       sync.Mutex
	versions map[string][]string
	calls    map[string]int
	inFlight atomic.Int32
	peak     atomic.Int32
	delay    time.Duration
}

func (f *fakeSource) FetchVersions(ctx context.Context, name string, refresh bool) (*integrations.Versions, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[name]++
	known, ok := f.versions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", integrations.ErrNotFound, name)
	}
	return &integrations.Versions{Name: name, Versions: known}, nil
}

func quietOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}

func decl(name, op, ver string, line int) deps.Declaration {
	return deps.Declaration{Name: name, BaseName: name, Operator: version.Operator(op), Version: ver, Line: line}
}

func TestRunnerCheck(t *testing.T) {
	src := &fakeSource{versions: map[string][]string{
		"requests": {"1.2.0", "1.2.3", "1.3.0", "2.0.0"},
		"click":    {"1.2.0", "1.9.0", "2.0.0rc1"},
	}}
	r := NewRunner(map[string]VersionSource{"pypi": src}, quietOptions())

	decls := []deps.Declaration{
		decl("requests", "==", "1.2.0", 0),
		decl("click", "^", "1.9.0", 1),
		decl("httpx", "", "", 2),
		decl("nover", "", "", 3),
	}
	src.versions["nover"] = []string{"1.0.0"}

	report, err := r.Check(context.Background(), "pypi", decls)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(report.Entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(report.Entries))
	}

	req := report.Entries[0]
	wantCand := version.Candidates{Satisfies: "1.2.3", Patch: "1.2.3", Minor: "1.3.0", Major: "2.0.0"}
	if diff := cmp.Diff(wantCand, req.Candidates); diff != "" {
		t.Errorf("requests candidates (-want +got):\n%s", diff)
	}
	if req.Latest != "2.0.0" || !req.Outdated {
		t.Errorf("requests latest = %q outdated = %v, want 2.0.0 true", req.Latest, req.Outdated)
	}

	click := report.Entries[1]
	if click.Latest != "1.9.0" || click.Outdated || !click.Candidates.Empty() {
		t.Errorf("click = %+v, want up to date", click)
	}

	missing := report.Entries[2]
	if missing.Err == nil || !errors.Is(missing.Err, errors.ErrCodePackageNotFound) {
		t.Errorf("httpx error = %v, want package not found", missing.Err)
	}
	if missing.Error == "" {
		t.Error("httpx Error message is empty")
	}

	nover := report.Entries[3]
	if nover.Latest != "1.0.0" || nover.Outdated || !nover.Candidates.Empty() {
		t.Errorf("unversioned entry = %+v, want latest only", nover)
	}

	if got := len(report.Outdated()); got != 1 {
		t.Errorf("Outdated() has %d entries, want 1", got)
	}
	if got := len(report.Failed()); got != 1 {
		t.Errorf("Failed() has %d entries, want 1", got)
	}
}

func TestRunnerDeduplicatesLookups(t *testing.T) {
	src := &fakeSource{versions: map[string][]string{"requests": {"2.0.0"}}}
	r := NewRunner(map[string]VersionSource{"pypi": src}, quietOptions())

	decls := []deps.Declaration{
		decl("requests", ">=", "1.0", 0),
		{Name: "requests[security]", BaseName: "requests", Version: "1.0", Operator: version.OpGreaterEq, Line: 5},
	}
	report, err := r.Check(context.Background(), "pypi", decls)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if src.calls["requests"] != 1 {
		t.Errorf("requests fetched %d times, want 1", src.calls["requests"])
	}
	if report.Entries[1].Name != "requests[security]" || report.Entries[1].Latest != "2.0.0" {
		t.Errorf("second entry = %+v", report.Entries[1])
	}
}

func TestRunnerConcurrencyLimit(t *testing.T) {
	src := &fakeSource{versions: map[string][]string{}, delay: 5 * time.Millisecond}
	var decls []deps.Declaration
	for i := range 12 {
		name := fmt.Sprintf("pkg%d", i)
		src.versions[name] = []string{"1.0.0"}
		decls = append(decls, decl(name, "==", "1.0.0", i))
	}

	opts := quietOptions()
	opts.Concurrency = 3
	r := NewRunner(map[string]VersionSource{"npm": src}, opts)

	if _, err := r.Check(context.Background(), "npm", decls); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if peak := src.peak.Load(); peak > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", peak)
	}
}

func TestRunnerUnknownEcosystem(t *testing.T) {
	r := NewRunner(nil, quietOptions())

	_, err := r.Check(context.Background(), "cargo", nil)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("Check error = %v, want unsupported", err)
	}
}

func TestRunnerCanceledContext(t *testing.T) {
	src := &fakeSource{versions: map[string][]string{"a": {"1.0.0"}}}
	r := NewRunner(map[string]VersionSource{"pypi": src}, quietOptions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Check(ctx, "pypi", []deps.Declaration{decl("a", "", "1.0.0", 0)}); err == nil {
		t.Error("Check with canceled context succeeded, want error")
	}
}

func TestEntryOptions(t *testing.T) {
	e := Entry{
		Declaration: decl("x", "^", "1.2.0", 0),
		Candidates:  version.Candidates{Satisfies: "1.9.0", Minor: "1.9.0", Major: "2.0.0"},
	}
	want := []version.Option{
		{Label: version.LabelSatisfies, Version: "1.9.0"},
		{Label: version.LabelMajor, Version: "2.0.0"},
	}
	if diff := cmp.Diff(want, e.Options()); diff != "" {
		t.Errorf("Options() mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionsWithDefaults(t *testing.T) {
	o := Options{}.WithDefaults()
	if o.Concurrency != DefaultConcurrency || o.Logger == nil {
		t.Errorf("WithDefaults() = %+v", o)
	}
}

type recordingCheckHooks struct {
	observability.NoopCheckHooks
	started, entries, outdated int
	err                        error
}

func (h *recordingCheckHooks) OnCheckStart(_ context.Context, _ string, declarations int) {
	h.started = declarations
}

func (h *recordingCheckHooks) OnCheckComplete(_ context.Context, _ string, entries, outdated int, _ time.Duration, err error) {
	h.entries, h.outdated, h.err = entries, outdated, err
}

func TestRunnerCheckHooks(t *testing.T) {
	hooks := &recordingCheckHooks{}
	observability.SetCheckHooks(hooks)
	t.Cleanup(observability.Reset)

	src := &fakeSource{versions: map[string][]string{
		"requests": {"2.0.0", "2.1.0"},
		"click":    {"8.1.0"},
	}}
	r := NewRunner(map[string]VersionSource{"pypi": src}, quietOptions())

	_, err := r.Check(context.Background(), "pypi", []deps.Declaration{
		decl("requests", "==", "2.0.0", 0),
		decl("click", "==", "8.1.0", 1),
	})
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if hooks.started != 2 || hooks.entries != 2 || hooks.outdated != 1 || hooks.err != nil {
		t.Errorf("hooks = start %d, entries %d, outdated %d, err %v; want 2, 2, 1, nil",
			hooks.started, hooks.entries, hooks.outdated, hooks.err)
	}
}
