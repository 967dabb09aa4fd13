package python

import (
	"regexp"
	"strings"

	"github.com/matzehuels/stackbump/pkg/deps"
)

// setupListRE finds `install_requires=[...]` and `tests_require=[...]`
// arguments. Quoted strings and comments inside the list may contain "]".
var setupListRE = regexp.MustCompile(`\b(?:install_requires|tests_require)\s*=\s*\[((?:"[^"\n]*"|'[^'\n]*'|#[^\n]*|[^\]"'#])*)\]`)

// SetupPy scans setup.py for literal requirement lists. The file is not
// interpreted: lists built dynamically (variables, comprehensions, reading
// requirements.txt) are not seen.
type SetupPy struct{}

func (s *SetupPy) Type() string              { return "setup.py" }
func (s *SetupPy) Supports(name string) bool { return deps.HasSuffixFold(name, "setup.py") }

func (s *SetupPy) Parse(doc deps.Document) deps.Result {
	var res deps.Result
	for _, m := range setupListRE.FindAllStringSubmatchIndex(doc.Text, -1) {
		body := doc.Text[m[2]:m[3]]
		for _, tok := range quotedTokens(body) {
			entry := strings.TrimSpace(tok.text)
			req, ok := parseRequirement(entry)
			if !ok || !validName(req.base) {
				continue
			}
			lead := len(tok.text) - len(strings.TrimLeft(tok.text, " \t"))
			pos := doc.PositionAt(m[2] + tok.offset + lead)
			pos.End = pos.Start + req.end
			res.Add(deps.NewDeclaration(doc, req.name, req.base, req.spec, pos))
		}
	}
	return res
}

type token struct {
	text   string
	offset int // Byte offset of the first character after the opening quote
}

// quotedTokens returns the contents of every quoted string in s, skipping
// "#" comments.
func quotedTokens(s string) []token {
	var out []token
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '#':
			if j := strings.IndexByte(s[i:], '\n'); j >= 0 {
				i += j
			} else {
				i = len(s)
			}
		case '"', '\'':
			j := strings.IndexByte(s[i+1:], c)
			if j < 0 {
				return out
			}
			out = append(out, token{text: s[i+1 : i+1+j], offset: i + 1})
			i += j + 1
		}
	}
	return out
}
