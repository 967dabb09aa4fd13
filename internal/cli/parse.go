package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbump/pkg/deps"
	"github.com/matzehuels/stackbump/pkg/errors"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	format string // "json" or "text"
}

// manifestResult is the JSON shape of one parsed manifest.
type manifestResult struct {
	File         string             `json:"file"`
	Type         string             `json:"type"`
	Declarations []deps.Declaration `json:"declarations"`
	Issues       []string           `json:"issues,omitempty"`
}

// parseCommand creates the parse command.
func (c *CLI) parseCommand() *cobra.Command {
	opts := parseOpts{format: "json"}

	cmd := &cobra.Command{
		Use:   "parse [file|dir]...",
		Short: "List the dependency declarations of manifest files",
		Long: `Parse manifest files and print every dependency declaration with its
position in the file. Directories are searched for supported manifests.

Examples:
  stackbump parse requirements.txt
  stackbump parse --format text pyproject.toml package.json
  stackbump parse --exclude 'types-*' .`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "json" && opts.format != "text" {
				return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want json or text)", opts.format)
			}
			results, err := c.parseManifests(args)
			if err != nil {
				return err
			}
			if opts.format == "text" {
				writeParseText(cmd.OutOrStdout(), results)
				return nil
			}
			return writeJSON(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json or text")
	return cmd
}

// parseManifests loads the config, resolves the targets and parses each of
// them in order.
func (c *CLI) parseManifests(args []string) ([]manifestResult, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	d, err := c.newDispatcher(cfg)
	if err != nil {
		return nil, err
	}
	paths, err := resolveTargets(args, d)
	if err != nil {
		return nil, err
	}

	results := make([]manifestResult, 0, len(paths))
	for _, path := range paths {
		doc, err := readDocument(path)
		if err != nil {
			return nil, err
		}
		if _, ok := d.Detect(path); !ok {
			return nil, errors.New(errors.ErrCodeUnsupported, "unsupported manifest: %s", path)
		}
		res := d.Parse(doc)
		results = append(results, newManifestResult(path, res))
	}
	return results, nil
}

func newManifestResult(path string, res deps.Result) manifestResult {
	out := manifestResult{
		File:         path,
		Type:         res.Type,
		Declarations: res.Declarations,
	}
	if out.Declarations == nil {
		out.Declarations = []deps.Declaration{}
	}
	for _, issue := range res.Issues {
		out.Issues = append(out.Issues, errors.UserMessage(issue))
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeParseText prints one line per declaration as
// "line:start-end  name  spec".
func writeParseText(w io.Writer, results []manifestResult) {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printFile(w, r.File, r.Type)
		if len(r.Declarations) == 0 {
			printDetail(w, "no dependencies")
		}
		for _, d := range r.Declarations {
			spec := d.Spec()
			if spec == "" {
				spec = "*"
			}
			fmt.Fprintf(w, "  %s  %s  %s\n",
				StyleDim.Render(fmt.Sprintf("%d:%d-%d", d.Line+1, d.Start, d.End)),
				StyleValue.Render(d.Name),
				spec,
			)
		}
		for _, issue := range r.Issues {
			printWarning(w, "%s", issue)
		}
	}
}
