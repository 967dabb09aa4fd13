package javascript

import (
	"github.com/matzehuels/stackbump/pkg/deps"
	"github.com/matzehuels/stackbump/pkg/errors"
)

// Language lists the JavaScript manifest parsers. Packages are looked up on
// the npm registry.
var Language = &deps.Language{
	Name:     "javascript",
	Registry: "npm",
	Parsers:  []deps.Parser{&PackageJSON{}},
}

// validName reports whether name is an acceptable npm package name.
func validName(name string) bool {
	return errors.ValidateNpmPackageName(name) == nil
}
