package deps

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/stackbump/pkg/errors"
)

// Parser reads dependency declarations from one manifest format.
//
// Parse never fails as a whole: malformed sections and invalid entries are
// reported in [Result.Issues] while everything else that could be read is
// returned. Parsers hold no state and are safe for concurrent use.
type Parser interface {
	// Type returns the manifest type identifier (e.g., "requirements.txt").
	Type() string
	// Supports reports whether this parser handles the given file name.
	// Matching is case-insensitive.
	Supports(filename string) bool
	// Parse extracts declarations from doc in document order.
	Parse(doc Document) Result
}

// Result holds the outcome of parsing one document.
type Result struct {
	Type         string        // Parser type that produced this result
	Declarations []Declaration // Declarations in document order
	Issues       []error       // Non-fatal problems encountered while parsing
}

// Add appends a declaration.
func (r *Result) Add(d Declaration) {
	r.Declarations = append(r.Declarations, d)
}

// Issue records a non-fatal problem.
func (r *Result) Issue(code errors.Code, format string, args ...any) {
	r.Issues = append(r.Issues, errors.New(code, format, args...))
}

// Fail records a malformed document; the declarations collected so far are
// kept.
func (r *Result) Fail(cause error, doc Document) {
	r.Issues = append(r.Issues, errors.Wrap(errors.ErrCodeInvalidManifest, cause, "parse %s", doc.Name()))
}

// DetectManifest finds the first parser that supports the base name of path.
func DetectManifest(path string, parsers ...Parser) (Parser, error) {
	name := filepath.Base(path)
	for _, p := range parsers {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported manifest: %s", name)
}

// HasSuffixFold reports whether name ends with suffix, ignoring case.
func HasSuffixFold(name, suffix string) bool {
	return len(name) >= len(suffix) && strings.EqualFold(name[len(name)-len(suffix):], suffix)
}
