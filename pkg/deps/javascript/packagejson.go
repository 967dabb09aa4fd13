package javascript

import (
	"encoding/json"
	"strings"

	"github.com/matzehuels/stackbump/pkg/deps"
)

// bom is the UTF-8 byte-order mark some editors write at the start of the file.
const bom = "\ufeff"

// sections are the package.json objects that hold dependencies.
var sections = []string{"dependencies", "devDependencies", "peerDependencies"}

// PackageJSON parses package.json files.
type PackageJSON struct{}

func (p *PackageJSON) Type() string              { return "package.json" }
func (p *PackageJSON) Supports(name string) bool { return strings.EqualFold(name, "package.json") }

func (p *PackageJSON) Parse(doc deps.Document) deps.Result {
	var res deps.Result
	var pkg map[string]json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimPrefix(doc.Text, bom)), &pkg); err != nil {
		res.Fail(err, doc)
		return res
	}

	root := rootObject(doc.Text)
	for _, section := range sections {
		raw, ok := pkg[section]
		if !ok {
			continue
		}
		var entries map[string]any
		if err := json.Unmarshal(raw, &entries); err != nil {
			res.Fail(err, doc)
			continue
		}

		body := -1
		if m, ok := findMember(doc.Text, root, section); ok && m.value < len(doc.Text) && doc.Text[m.value] == '{' {
			body = m.value + 1
		}
		for name, value := range entries {
			spec, ok := value.(string)
			if !ok || !validName(name) || !registrySpec(spec) {
				continue
			}
			res.Add(deps.NewDeclaration(doc, name, name, spec, entryPosition(doc, body, name)))
		}
	}

	deps.SortByPosition(res.Declarations)
	return res
}

// registrySpec reports whether spec is a version range resolved against the
// registry rather than a path, URL, alias or repository reference.
func registrySpec(spec string) bool {
	return !strings.ContainsAny(spec, ":/")
}

// entryPosition returns the span of the member name inside the object
// whose body starts at offset body. Members that cannot be found (body < 0)
// get the zero Position.
func entryPosition(doc deps.Document, body int, name string) deps.Position {
	if body < 0 {
		return deps.Position{}
	}
	m, ok := findMember(doc.Text, body, name)
	if !ok {
		return deps.Position{}
	}
	pos := doc.PositionAt(m.key)
	if end := doc.PositionAt(m.end); end.Line == pos.Line {
		pos.End = end.Start
	}
	return pos
}
