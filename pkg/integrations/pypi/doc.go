// Package pypi fetches release histories from the Python Package Index
// JSON API (https://pypi.org/pypi/<name>/json).
//
// # Usage
//
//	client := pypi.NewClient(backend, 24*time.Hour)
//	v, err := client.FetchVersions(ctx, "requests", false) // false = use cache
//	if err != nil {
//	    return err
//	}
//	fmt.Println(v.Latest, len(v.Versions))
//
// Releases whose files were all yanked are left out. Package names are
// normalized following PEP 503.
package pypi
