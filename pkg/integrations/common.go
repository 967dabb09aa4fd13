package integrations

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a package doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// Versions is the release history of one package as published by a
// registry.
type Versions struct {
	Name     string   `json:"name"`     // Package name as the registry reports it
	Latest   string   `json:"latest"`   // Version the registry marks as current (may be empty)
	Versions []string `json:"versions"` // Published, non-withdrawn version strings
}

// NewHTTPClient creates an HTTP client with a standard timeout for registry requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

var separatorRuns = regexp.MustCompile(`[-_.]+`)

// NormalizePkgName converts a package name to its PEP 503 canonical form:
// lowercase, with every run of "-", "_" and "." collapsed into one "-".
func NormalizePkgName(name string) string {
	return separatorRuns.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
