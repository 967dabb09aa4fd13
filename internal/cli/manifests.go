package cli

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/stackbump/pkg/deps"
	"github.com/matzehuels/stackbump/pkg/errors"
)

// resolveTargets expands the command arguments into manifest paths.
// Directories (and no arguments, meaning ".") are searched one level deep
// for files some parser supports; files are passed through as given.
func resolveTargets(args []string, d *deps.Dispatcher) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	var out []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s", arg)
		}
		if !info.IsDir() {
			out = append(out, arg)
			continue
		}
		found, err := discoverManifests(arg, d)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, errors.New(errors.ErrCodeFileNotFound, "no supported manifests in %s", arg)
		}
		out = append(out, found...)
	}
	return out, nil
}

// discoverManifests lists the files in dir that a parser supports, sorted
// by name.
func discoverManifests(dir string, d *deps.Dispatcher) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := d.Detect(e.Name()); ok {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out, nil
}

// readDocument loads a manifest from disk.
func readDocument(path string) (deps.Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return deps.Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s", path)
	}
	if err != nil {
		return deps.Document{}, err
	}
	return deps.NewDocument(path, string(data)), nil
}
