// Package pkg provides the core libraries for stackbump.
//
// # Overview
//
// Stackbump reads the dependency declarations of Python and npm manifests,
// looks up the published versions of each package and suggests upgrades.
// The pkg directory is organized into these areas:
//
//  1. [version] - Version parsing, constraint checks and upgrade candidates
//  2. [deps] - Manifest parsers, declaration positions and exclusions
//  3. [integrations] - Registry clients (PyPI, npm)
//  4. [outdated] - Concurrent registry lookups producing per-manifest reports
//  5. [cache], [config], [errors], [observability] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	Manifest file
//	     ↓
//	[deps] dispatcher (detect format, parse, drop excluded names)
//	     ↓
//	[outdated] runner (fetch versions from [integrations] clients, cached)
//	     ↓
//	[version] upgrade candidates (satisfies / patch / minor / major)
//	     ↓
//	Report (table or JSON)
//
// # Quick Start
//
// Parse a requirements file and check it against PyPI:
//
//	import (
//	    "time"
//
//	    "github.com/matzehuels/stackbump/pkg/cache"
//	    "github.com/matzehuels/stackbump/pkg/deps"
//	    "github.com/matzehuels/stackbump/pkg/deps/languages"
//	    "github.com/matzehuels/stackbump/pkg/integrations/pypi"
//	    "github.com/matzehuels/stackbump/pkg/outdated"
//	)
//
//	d := deps.NewDispatcher(languages.Parsers(), deps.Exclusions{}, nil)
//	decls := d.ParseDocument(text, "requirements.txt")
//
//	runner := outdated.NewRunner(map[string]outdated.VersionSource{
//	    "pypi": pypi.NewClient(cache.NewNullCache(), time.Hour),
//	}, outdated.Options{})
//	report, err := runner.Check(ctx, "pypi", decls)
//
// Or compute upgrade candidates directly:
//
//	c := version.ComputeUpgradeOptions(">=1.2.0", []string{"1.2.3", "1.3.0", "2.0.0"})
//	// c.Satisfies == "2.0.0", c.Patch == "1.2.3", c.Minor == "1.3.0", c.Major == "2.0.0"
//
// [version]: https://pkg.go.dev/github.com/matzehuels/stackbump/pkg/version
// [deps]: https://pkg.go.dev/github.com/matzehuels/stackbump/pkg/deps
// [integrations]: https://pkg.go.dev/github.com/matzehuels/stackbump/pkg/integrations
// [outdated]: https://pkg.go.dev/github.com/matzehuels/stackbump/pkg/outdated
// [cache]: https://pkg.go.dev/github.com/matzehuels/stackbump/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/stackbump/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/stackbump/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/stackbump/pkg/observability
package pkg
