package python

import (
	"strings"

	"github.com/matzehuels/stackbump/pkg/deps"
)

// Requirements parses pip requirement files (requirements.txt,
// requirements-dev.txt, requirements/base.in, ...). Each non-blank line
// that is not a comment or a pip option is one declaration.
type Requirements struct{}

func (r *Requirements) Type() string { return "requirements.txt" }

func (r *Requirements) Supports(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "requirements") &&
		(strings.HasSuffix(lower, ".txt") || strings.HasSuffix(lower, ".in"))
}

func (r *Requirements) Parse(doc deps.Document) deps.Result {
	var res deps.Result
	for i, line := range doc.Lines() {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == '#' || trimmed[0] == '-' {
			continue
		}
		if strings.Contains(trimmed, "://") || strings.HasPrefix(trimmed, "git+") {
			continue
		}

		req, ok := parseRequirement(trimmed)
		if !ok || !validName(req.base) {
			continue
		}

		start := len(line) - len(strings.TrimLeft(line, " \t"))
		pos := deps.Position{Line: i, Start: start, End: start + req.end}
		res.Add(deps.NewDeclaration(doc, req.name, req.base, req.spec, pos))
	}
	return res
}
