// Package languages provides the complete list of supported ecosystems.
//
// This package exists to break import cycles: the individual language
// packages (python, javascript) import pkg/deps, so pkg/deps cannot import
// them back. Consumers that need the full parser list import this package.
//
// Usage:
//
//	import "github.com/matzehuels/stackbump/pkg/deps/languages"
//
//	d := deps.NewDispatcher(languages.Parsers(), exclusions, logger)
package languages

import (
	"github.com/matzehuels/stackbump/pkg/deps"
	"github.com/matzehuels/stackbump/pkg/deps/javascript"
	"github.com/matzehuels/stackbump/pkg/deps/python"
)

// All is the canonical list of supported ecosystems, in detection priority
// order.
var All = []*deps.Language{
	python.Language,
	javascript.Language,
}

// Parsers returns every manifest parser in detection priority order.
func Parsers() []deps.Parser {
	var out []deps.Parser
	for _, lang := range All {
		out = append(out, lang.Parsers...)
	}
	return out
}

// Find returns the Language owning the parser of the given type, or nil.
func Find(parserType string) *deps.Language {
	return deps.FindLanguage(parserType, All)
}

// Ecosystem returns the registry for a parser type ("pypi", "npm"), or ""
// when the type is unknown.
func Ecosystem(parserType string) string {
	if lang := Find(parserType); lang != nil {
		return lang.Registry
	}
	return ""
}
