// Package npm fetches release histories from the npm registry
// (https://registry.npmjs.org).
//
//	client := npm.NewClient(backend, 24*time.Hour)
//	v, err := client.FetchVersions(ctx, "@types/node", false)
//
// Scoped names are path-escaped ("@types%2Fnode"). Versions carrying a
// deprecation notice are left out.
package npm
