package deps

import (
	"path/filepath"
	"strings"
)

// Document is the text of one manifest together with its path.
type Document struct {
	Path string // File path as given by the caller; only the base name selects a parser
	Text string // Full file contents
}

// NewDocument creates a Document.
func NewDocument(path, text string) Document {
	return Document{Path: path, Text: text}
}

// Name returns the base file name.
func (d Document) Name() string {
	return filepath.Base(d.Path)
}

// Lines splits the text into lines without their terminators.
func (d Document) Lines() []string {
	lines := strings.Split(d.Text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Position is a span on a single line. Offsets are byte offsets into the
// line; the zero Position (line 0, offset 0, empty span) marks an anchor
// that could not be found.
type Position struct {
	Line  int
	Start int
	End   int
}

// Find returns the first occurrence of anchor at or after line from.
func (d Document) Find(anchor string, from int) (Position, bool) {
	if anchor == "" {
		return Position{}, false
	}
	lines := d.Lines()
	for i := max(0, from); i < len(lines); i++ {
		if idx := strings.Index(lines[i], anchor); idx >= 0 {
			return Position{Line: i, Start: idx, End: idx + len(anchor)}, true
		}
	}
	return Position{}, false
}

// Locate tries each anchor in order and returns the first match. When none
// of them occurs, the zero Position is returned so the declaration is still
// reported at the top of the file.
func (d Document) Locate(anchors ...string) Position {
	for _, a := range anchors {
		if pos, ok := d.Find(a, 0); ok {
			return pos
		}
	}
	return Position{}
}

// PositionAt converts a byte offset into the whole text to a Position with
// an empty span.
func (d Document) PositionAt(offset int) Position {
	offset = min(max(0, offset), len(d.Text))
	line := strings.Count(d.Text[:offset], "\n")
	start := offset - (strings.LastIndexByte(d.Text[:offset], '\n') + 1)
	return Position{Line: line, Start: start, End: start}
}

// Offset returns the byte offset in the text at which line begins. Lines
// past the end map to len(Text).
func (d Document) Offset(line int) int {
	off := 0
	for i := 0; i < line; i++ {
		j := strings.IndexByte(d.Text[off:], '\n')
		if j < 0 {
			return len(d.Text)
		}
		off += j + 1
	}
	return off
}

// LineRange is a half-open range of line indexes.
type LineRange struct {
	From int
	To   int
}

// Contains reports whether line lies inside r.
func (r LineRange) Contains(line int) bool {
	return line >= r.From && line < r.To
}

// Section returns the lines belonging to an INI/TOML style table such as
// "[tool.poetry.dependencies]": from the line after the header up to the
// next table header. The header match ignores surrounding whitespace.
func (d Document) Section(header string) (LineRange, bool) {
	lines := d.Lines()
	for i, l := range lines {
		if strings.TrimSpace(stripComment(l)) != header {
			continue
		}
		end := len(lines)
		for j := i + 1; j < len(lines); j++ {
			if strings.HasPrefix(strings.TrimSpace(lines[j]), "[") {
				end = j
				break
			}
		}
		return LineRange{From: i + 1, To: end}, true
	}
	return LineRange{}, false
}

// FindKey looks for a `key = ...` assignment within r. The key may be bare
// or quoted. The returned span runs from the key to the end of the line's
// content, excluding trailing comments.
func (d Document) FindKey(r LineRange, key string) (Position, bool) {
	lines := d.Lines()
	for i := max(0, r.From); i < min(r.To, len(lines)); i++ {
		rest := strings.TrimLeft(lines[i], " \t")
		if !assignsKey(rest, key) {
			continue
		}
		start := len(lines[i]) - len(rest)
		end := len(strings.TrimRight(stripComment(lines[i]), " \t"))
		return Position{Line: i, Start: start, End: max(start, end)}, true
	}
	return Position{}, false
}

// assignsKey reports whether s starts with key, optionally wrapped in one
// pair of quotes, followed by "=".
func assignsKey(s, key string) bool {
	s = trimQuote(s)
	rest, ok := strings.CutPrefix(s, key)
	if !ok {
		return false
	}
	return strings.HasPrefix(strings.TrimLeft(trimQuote(rest), " \t"), "=")
}

func trimQuote(s string) string {
	if s != "" && (s[0] == '"' || s[0] == '\'') {
		return s[1:]
	}
	return s
}

// stripComment removes a trailing "#" comment that is not inside quotes.
func stripComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '#':
			return line[:i]
		}
	}
	return line
}
