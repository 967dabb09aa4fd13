package npm

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/stackbump/pkg/cache"
	"github.com/matzehuels/stackbump/pkg/integrations"
)

// DefaultBaseURL is the public npm registry.
const DefaultBaseURL = "https://registry.npmjs.org"

// Client provides access to the npm registry.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates an npm client. Responses are cached in backend under
// the "npm:" prefix for cacheTTL.
func NewClient(backend cache.Cache, cacheTTL time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(backend, "npm:", cacheTTL, nil),
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL points the client at a mirror or test server. An empty url
// keeps the current one.
func (c *Client) WithBaseURL(u string) *Client {
	if u != "" {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
	return c
}

// FetchVersions returns every non-deprecated version of pkg, sorted as
// strings, together with the "latest" dist-tag.
func (c *Client) FetchVersions(ctx context.Context, pkg string, refresh bool) (*integrations.Versions, error) {
	pkg = strings.ToLower(strings.TrimSpace(pkg))

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
	var data registryResponse
	if err := c.Get(ctx, c.baseURL+"/"+url.PathEscape(pkg), &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return fmt.Errorf("%w: npm package %s", err, pkg)
		}
		return err
	}

	var versions []string
	for _, num := range slices.Sorted(maps.Keys(data.Versions)) {
		if data.Versions[num].Deprecated == "" {
			versions = append(versions, num)
		}
	}

	*v = integrations.Versions{
		Name:     data.Name,
		Latest:   data.DistTags.Latest,
		Versions: versions,
	}
	return nil
}

type registryResponse struct {
	Name     string                    `json:"name"`
	DistTags distTags                  `json:"dist-tags"`
	Versions map[string]versionDetails `json:"versions"`
}

type distTags struct {
	Latest string `json:"latest"`
}

type versionDetails struct {
	Version    string `json:"version"`
	Deprecated string `json:"deprecated"`
}
