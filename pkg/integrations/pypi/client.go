package pypi

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/stackbump/pkg/cache"
	"github.com/matzehuels/stackbump/pkg/integrations"
)

// DefaultBaseURL is the PyPI JSON API root.
const DefaultBaseURL = "https://pypi.org/pypi"

// Client provides access to the PyPI JSON API.
// It handles HTTP requests with caching and automatic retries.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a PyPI client. Responses are cached in backend under
// the "pypi:" prefix for cacheTTL.
func NewClient(backend cache.Cache, cacheTTL time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(backend, "pypi:", cacheTTL, nil),
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL points the client at a mirror or test server. An empty url
// keeps the current one.
func (c *Client) WithBaseURL(url string) *Client {
	if url != "" {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
	return c
}

// FetchVersions returns every release of pkg that has at least one
// non-yanked file (or no files at all). Versions are sorted as strings.
//
// The name is normalized following PEP 503 before the lookup. Missing
// packages return an error wrapping [integrations.ErrNotFound].
func (c *Client) FetchVersions(ctx context.Context, pkg string, refresh bool) (*integrations.Versions, error) {
	pkg = integrations.NormalizePkgName(pkg)

	var v integrations.Versions
	err := c.Cached(ctx, pkg, refresh, &v, func() error {
		return c.fetch(ctx, pkg, &v)
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) fetch(ctx context.Context, pkg string, v *integrations.Versions) error {
	var data apiResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/%s/json", c.baseURL, pkg), &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return fmt.Errorf("%w: pypi package %s", err, pkg)
		}
		return err
	}

	var releases []string
	for _, num := range slices.Sorted(maps.Keys(data.Releases)) {
		if !yanked(data.Releases[num]) {
			releases = append(releases, num)
		}
	}

	*v = integrations.Versions{
		Name:     data.Info.Name,
		Latest:   data.Info.Version,
		Versions: releases,
	}
	return nil
}

// yanked reports whether every file of a release was withdrawn.
func yanked(files []releaseFile) bool {
	if len(files) == 0 {
		return false
	}
	for _, f := range files {
		if !f.Yanked {
			return false
		}
	}
	return true
}

type apiResponse struct {
	Info     apiInfo                  `json:"info"`
	Releases map[string][]releaseFile `json:"releases"`
}

type apiInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type releaseFile struct {
	Filename string `json:"filename"`
	Yanked   bool   `json:"yanked"`
}
