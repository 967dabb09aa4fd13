package deps

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackbump/pkg/errors"
)

// Dispatcher selects the parser for a document and filters its output
// through the configured exclusions. It has no mutable state; create one at
// startup and share it.
type Dispatcher struct {
	parsers []Parser
	exclude Exclusions
	logger  *log.Logger
}

// NewDispatcher creates a Dispatcher that tries parsers in the given order.
// A nil logger falls back to log.Default().
func NewDispatcher(parsers []Parser, exclude Exclusions, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{parsers: parsers, exclude: exclude, logger: logger}
}

// Parsers returns the parsers in priority order.
func (d *Dispatcher) Parsers() []Parser {
	return d.parsers
}

// Detect returns the first parser supporting the document's file name.
func (d *Dispatcher) Detect(path string) (Parser, bool) {
	p, err := DetectManifest(path, d.parsers...)
	return p, err == nil
}

// Parse runs the matching parser over doc. Issues are logged at warn level
// and returned alongside the declarations; an unsupported document yields
// an empty Result.
func (d *Dispatcher) Parse(doc Document) Result {
	p, ok := d.Detect(doc.Path)
	if !ok {
		d.logger.Debug("no parser for document", "file", doc.Path)
		return Result{}
	}

	res := safeParse(p, doc)
	res.Type = p.Type()
	for _, issue := range res.Issues {
		d.logger.Warn("manifest issue", "file", doc.Path, "parser", p.Type(), "err", errors.UserMessage(issue))
	}

	before := len(res.Declarations)
	res.Declarations = d.exclude.Filter(res.Declarations)
	d.logger.Debug("parsed manifest",
		"file", doc.Path,
		"parser", p.Type(),
		"declarations", len(res.Declarations),
		"excluded", before-len(res.Declarations),
	)
	return res
}

// ParseDocument parses text as the manifest named fileName and returns its
// declarations.
func (d *Dispatcher) ParseDocument(text, fileName string) []Declaration {
	return d.Parse(NewDocument(fileName, text)).Declarations
}

// safeParse keeps a misbehaving parser from taking down the caller.
func safeParse(p Parser, doc Document) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Issues: []error{
				errors.Wrap(errors.ErrCodeInternal, fmt.Errorf("%v", r), "%s parser panicked on %s", p.Type(), doc.Name()),
			}}
		}
	}()
	return p.Parse(doc)
}
