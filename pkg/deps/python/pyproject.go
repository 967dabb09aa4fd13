package python

import (
	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackbump/pkg/deps"
)

// Pyproject parses pyproject.toml. Two dialects are read from the same
// file:
//
//   - string lists of PEP 508 requirements: project.dependencies,
//     project.optional-dependencies.*, dependency-groups.* and the
//     tool.uv dev, override and constraint lists
//   - Poetry key/value tables: tool.poetry.dependencies,
//     tool.poetry.dev-dependencies and tool.poetry.group.*.dependencies
type Pyproject struct{}

func (p *Pyproject) Type() string              { return "pyproject.toml" }
func (p *Pyproject) Supports(name string) bool { return deps.HasSuffixFold(name, "pyproject.toml") }

func (p *Pyproject) Parse(doc deps.Document) deps.Result {
	var res deps.Result
	var file pyprojectFile
	if _, err := toml.Decode(doc.Text, &file); err != nil {
		res.Fail(err, doc)
		return res
	}

	addList(doc, &res, "project", "dependencies", file.Project.Dependencies)
	for extra, list := range file.Project.OptionalDependencies {
		addList(doc, &res, "project.optional-dependencies", extra, list)
	}
	for group, list := range file.DependencyGroups {
		addList(doc, &res, "dependency-groups", group, stringsOnly(list))
	}
	uv := file.Tool.UV
	addList(doc, &res, "tool.uv", "dev-dependencies", uv.DevDependencies)
	addList(doc, &res, "tool.uv", "override-dependencies", uv.OverrideDependencies)
	addList(doc, &res, "tool.uv", "constraint-dependencies", uv.ConstraintDependencies)

	poetry := file.Tool.Poetry
	addTable(doc, &res, "tool.poetry.dependencies", poetry.Dependencies)
	addTable(doc, &res, "tool.poetry.dev-dependencies", poetry.DevDependencies)
	for name, group := range poetry.Group {
		addTable(doc, &res, "tool.poetry.group."+name+".dependencies", group.Dependencies)
	}

	deps.SortByPosition(res.Declarations)
	return res
}

// stringsOnly drops non-string list items such as {include-group = "..."}.
func stringsOnly(items []any) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

type pyprojectFile struct {
	Project struct {
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
	DependencyGroups map[string][]any `toml:"dependency-groups"`
	Tool             struct {
		UV struct {
			DevDependencies        []string `toml:"dev-dependencies"`
			OverrideDependencies   []string `toml:"override-dependencies"`
			ConstraintDependencies []string `toml:"constraint-dependencies"`
		} `toml:"uv"`
		Poetry struct {
			Dependencies    map[string]any `toml:"dependencies"`
			DevDependencies map[string]any `toml:"dev-dependencies"`
			Group           map[string]struct {
				Dependencies map[string]any `toml:"dependencies"`
			} `toml:"group"`
		} `toml:"poetry"`
	} `toml:"tool"`
}
