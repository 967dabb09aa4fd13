package deps

import (
	"cmp"
	"slices"
	"strings"

	"github.com/matzehuels/stackbump/pkg/version"
)

// Declaration is one dependency mention found in a manifest.
//
// Declarations are produced fresh on every parse and never mutated by the
// parsers. Version and Operator are empty when the manifest has no version
// for the package or the version text could not be parsed.
type Declaration struct {
	Name     string           `json:"name"`               // Name as written, including any extras suffix
	BaseName string           `json:"base_name"`          // Registry lookup key (extras stripped)
	Version  string           `json:"version,omitempty"`  // Reference version literal
	Operator version.Operator `json:"operator,omitempty"` // Constraint operator ("" means exact)
	Line     int              `json:"line"`               // Zero-based line index
	Start    int              `json:"start"`              // Byte offset on Line where the declaration starts
	End      int              `json:"end"`                // Byte offset on Line where the declaration ends
	File     string           `json:"file"`               // Originating manifest path
}

// Spec returns the operator and version joined, e.g. ">=1.2.0".
func (d Declaration) Spec() string {
	return string(d.Operator) + d.Version
}

// HasVersion reports whether the declaration carries a usable version.
func (d Declaration) HasVersion() bool {
	return d.Version != ""
}

// NewDeclaration builds a Declaration for doc at pos. The spec is split into
// operator and version; only the first clause of a multi-clause spec
// (">=1.0,<2.0" or "^1.0 || ^2.0") is kept. When the version text does not
// parse, the declaration is still returned but without version fields.
func NewDeclaration(doc Document, name, baseName, spec string, pos Position) Declaration {
	d := Declaration{
		Name:     name,
		BaseName: baseName,
		Line:     max(0, pos.Line),
		Start:    max(0, pos.Start),
		File:     doc.Path,
	}
	d.End = max(d.Start, pos.End)

	op, text := version.SplitSpec(firstClause(spec))
	if fields := strings.Fields(text); len(fields) > 0 {
		text = fields[0]
	}
	if version.Valid(text) {
		d.Operator = op
		d.Version = text
	}
	return d
}

func firstClause(spec string) string {
	if i := strings.Index(spec, "||"); i >= 0 {
		spec = spec[:i]
	}
	if i := strings.IndexByte(spec, ','); i >= 0 {
		spec = spec[:i]
	}
	return strings.TrimSpace(spec)
}

// SortByPosition orders declarations by line and offset, then by name, so
// parsers built on unordered maps still yield document order.
func SortByPosition(decls []Declaration) {
	slices.SortStableFunc(decls, func(a, b Declaration) int {
		return cmp.Or(
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Start, b.Start),
			cmp.Compare(a.Name, b.Name),
		)
	})
}
