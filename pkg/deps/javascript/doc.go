// Package javascript parses npm package.json manifests.
//
// Declarations are read from the dependencies, devDependencies and
// peerDependencies objects. The declared name is also the registry lookup
// name, scope included ("@types/node").
//
// Entries whose name fails npm's naming rules are skipped, as are
// dependencies that point away from the registry (file:, link:,
// workspace:, git and tarball URLs, GitHub shorthands).
//
// Positions come from a scan of the raw JSON text: the span runs from the
// opening quote of the entry's key to the end of its value.
package javascript
