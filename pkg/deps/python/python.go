package python

import (
	"github.com/matzehuels/stackbump/pkg/deps"
	"github.com/matzehuels/stackbump/pkg/errors"
)

// Language lists the Python manifest parsers in detection priority order.
// Packages are looked up on PyPI.
var Language = &deps.Language{
	Name:     "python",
	Registry: "pypi",
	Parsers: []deps.Parser{
		&Requirements{},
		&Pyproject{},
		&SetupPy{},
		&Pipfile{},
	},
}

// validName reports whether name is an acceptable PyPI project name.
func validName(name string) bool {
	return errors.ValidatePythonPackageName(name) == nil
}
