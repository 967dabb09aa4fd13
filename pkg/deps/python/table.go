package python

import (
	"fmt"
	"strings"

	"github.com/matzehuels/stackbump/pkg/deps"
)

// sourceKeys mark table entries that point at a non-registry source.
var sourceKeys = []string{"path", "git", "url", "file", "hg", "svn"}

// tableSpec extracts the version spec from a dependency table value. The
// value is either a plain string, a table with a "version" field, or an
// array of such tables (Poetry's multiple constraints form). Entries that
// only reference a local path or VCS source are skipped.
func tableSpec(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case map[string]any:
		if s, ok := v["version"].(string); ok {
			return s, true
		}
		for _, k := range sourceKeys {
			if _, ok := v[k]; ok {
				return "", false
			}
		}
		return "", true
	case []any:
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				if s, ok := m["version"].(string); ok {
					return s, true
				}
			}
		}
		return "", true
	default:
		return "", false
	}
}

// addTable emits one declaration per key of a key/value dependency table
// such as [tool.poetry.dependencies] or [packages].
func addTable(doc deps.Document, res *deps.Result, table string, entries map[string]any) {
	section, hasSection := doc.Section("[" + table + "]")
	for name, value := range entries {
		if strings.EqualFold(name, "python") {
			continue
		}
		spec, ok := tableSpec(value)
		if !ok || !validName(name) {
			continue
		}
		pos, found := deps.Position{}, false
		if hasSection {
			pos, found = doc.FindKey(section, name)
		}
		if !found {
			pos = doc.Locate(fmt.Sprintf("[%s.%s]", table, name), name)
		}
		res.Add(deps.NewDeclaration(doc, name, name, spec, pos))
	}
}

// addList emits one declaration per requirement string of a dependency
// list such as project.dependencies. key is looked up inside table to find
// where the list starts, so identical strings in other lists are not
// mistaken for this one.
func addList(doc deps.Document, res *deps.Result, table, key string, entries []string) {
	cursor := 0
	if section, ok := doc.Section("[" + table + "]"); ok {
		line := section.From
		if pos, ok := doc.FindKey(section, key); ok {
			line = pos.Line
		}
		cursor = doc.Offset(line)
	}

	for _, entry := range entries {
		req, ok := parseRequirement(strings.TrimSpace(entry))
		if !ok || !validName(req.base) {
			continue
		}
		pos, next := locateString(doc, entry, cursor)
		if next > 0 {
			cursor = next
			pos.End = pos.Start + req.end
		} else {
			pos = doc.Locate(req.base)
		}
		res.Add(deps.NewDeclaration(doc, req.name, req.base, req.spec, pos))
	}
}

// locateString finds the quoted literal s at or after byte offset from and
// returns the position of its first character plus the offset just past
// the closing quote. next is 0 when s was not found.
func locateString(doc deps.Document, s string, from int) (pos deps.Position, next int) {
	lead := len(s) - len(strings.TrimLeft(s, " \t"))
	for _, q := range []string{`"`, `'`} {
		quoted := q + s + q
		if i := strings.Index(doc.Text[from:], quoted); i >= 0 {
			at := from + i + 1 + lead
			return doc.PositionAt(at), from + i + len(quoted)
		}
	}
	return deps.Position{}, 0
}
