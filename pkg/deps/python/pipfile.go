package python

import (
	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackbump/pkg/deps"
)

// Pipfile parses pipenv's Pipfile. Runtime packages live in [packages] and
// development packages in [dev-packages]; a value of "*" means any version.
type Pipfile struct{}

func (p *Pipfile) Type() string              { return "Pipfile" }
func (p *Pipfile) Supports(name string) bool { return deps.HasSuffixFold(name, "pipfile") }

func (p *Pipfile) Parse(doc deps.Document) deps.Result {
	var res deps.Result
	var file pipfileFile
	if _, err := toml.Decode(doc.Text, &file); err != nil {
		res.Fail(err, doc)
		return res
	}

	addTable(doc, &res, "packages", file.Packages)
	addTable(doc, &res, "dev-packages", file.DevPackages)

	deps.SortByPosition(res.Declarations)
	return res
}

type pipfileFile struct {
	Packages    map[string]any `toml:"packages"`
	DevPackages map[string]any `toml:"dev-packages"`
}
