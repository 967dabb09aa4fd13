package deps

import (
	"strings"

	"github.com/gobwas/glob"
)

// Exclusions filters declarations by name using glob patterns. "*" matches
// any run of characters and "?" exactly one; every other character is
// literal. Patterns must match the whole declared name.
type Exclusions struct {
	patterns []string
	globs    []glob.Glob
}

// NewExclusions compiles patterns. Blank patterns are ignored.
func NewExclusions(patterns ...string) (Exclusions, error) {
	var e Exclusions
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(escapeGlob(p))
		if err != nil {
			return Exclusions{}, err
		}
		e.patterns = append(e.patterns, p)
		e.globs = append(e.globs, g)
	}
	return e, nil
}

// Patterns returns the compiled patterns in order.
func (e Exclusions) Patterns() []string {
	return e.patterns
}

// Match reports whether name matches any pattern.
func (e Exclusions) Match(name string) bool {
	for _, g := range e.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Filter returns the declarations whose declared name matches no pattern.
func (e Exclusions) Filter(decls []Declaration) []Declaration {
	if len(e.globs) == 0 {
		return decls
	}
	out := make([]Declaration, 0, len(decls))
	for _, d := range decls {
		if !e.Match(d.Name) {
			out = append(out, d)
		}
	}
	return out
}

// escapeGlob quotes everything except the two supported wildcards so that
// brackets and braces in names such as "requests[security]" stay literal.
func escapeGlob(pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		if r == '*' || r == '?' {
			b.WriteRune(r)
			continue
		}
		b.WriteString(glob.QuoteMeta(string(r)))
	}
	return b.String()
}
