// Package deps finds dependency declarations in project manifests.
//
// # Overview
//
// A manifest is parsed into an ordered list of [Declaration] values, each
// carrying the declared name, the registry lookup name, the constraint
// operator and version, and the exact source span of the entry. The
// version engine in [version] then turns each declaration's spec into
// upgrade candidates.
//
// # Parsers
//
// Each manifest format implements [Parser]. Language subpackages provide
// the concrete parsers:
//
//   - [python]: requirements*.txt, pyproject.toml (PEP 621, uv and Poetry
//     tables), setup.py (heuristic scan), Pipfile
//   - [javascript]: package.json
//
// Parsers never fail a whole document. Malformed TOML or JSON is reported
// in [Result.Issues]. Entries whose name fails the ecosystem's naming rules
// are skipped, and unreadable versions leave the version fields empty.
//
// # Positions
//
// Every declaration records a zero-based line and byte offsets on that
// line. Parsers locate the line by searching for the most specific anchor
// they have (the full entry text, a "name =" key inside its table, then
// the bare name). A declaration whose anchor cannot be found is reported
// at line 0, offset 0 instead of being dropped.
//
// # Dispatching
//
// [Dispatcher] picks the first parser whose [Parser.Supports] accepts the
// file name and drops declarations matching an [Exclusions] pattern:
//
//	ex, _ := deps.NewExclusions("test-*")
//	d := deps.NewDispatcher(languages.Parsers(), ex, logger)
//	decls := d.ParseDocument(text, "requirements.txt")
//
// [python]: github.com/matzehuels/stackbump/pkg/deps/python
// [javascript]: github.com/matzehuels/stackbump/pkg/deps/javascript
// [version]: github.com/matzehuels/stackbump/pkg/version
package deps
