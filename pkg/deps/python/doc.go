// Package python parses Python dependency manifests.
//
// # Supported manifests
//
//   - requirements files: any name containing "requirements" with a .txt or
//     .in extension, one PEP 508 requirement per line
//   - pyproject.toml: PEP 621 project tables, PEP 735 dependency groups,
//     uv's extra lists and Poetry dependency tables
//   - setup.py: literal install_requires and tests_require lists only
//   - Pipfile: [packages] and [dev-packages]
//
// # Names
//
// The declared name keeps its extras ("requests[security]"); the base name
// used for registry lookups drops them. Names that are not valid PEP 508
// identifiers are skipped, as are editable installs, URLs, VCS references
// and local path dependencies.
//
// Environment markers (after ";") and trailing comments are ignored.
package python
