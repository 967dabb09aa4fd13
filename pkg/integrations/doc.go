// Package integrations provides HTTP clients for package registry APIs.
//
// Each registry has its own subpackage:
//
//   - [pypi]: Python Package Index
//   - [npm]: npm registry
//
// # Client Pattern
//
// Registry clients embed [Client] and expose FetchVersions:
//
//	c := pypi.NewClient(backend, 24*time.Hour)
//	v, err := c.FetchVersions(ctx, "requests", false) // false = use cache
//
// [Client] handles JSON requests, retries of transient failures via
// [cache.RetryWithBackoff] and response caching under a per-registry key
// prefix. Missing packages return [ErrNotFound]; other HTTP failures return
// [ErrNetwork]. Both are wrapped, so test them with errors.Is. Cache and HTTP
// events are reported through the observability hooks.
//
// [pypi]: github.com/matzehuels/stackbump/pkg/integrations/pypi
// [npm]: github.com/matzehuels/stackbump/pkg/integrations/npm
// [cache.RetryWithBackoff]: github.com/matzehuels/stackbump/pkg/cache.RetryWithBackoff
package integrations
