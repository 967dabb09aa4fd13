package python

import (
	"regexp"
	"strings"
)

// requirementRE splits a PEP 508 style requirement into name, optional
// extras and the remainder.
var requirementRE = regexp.MustCompile(`^([^\s\[\]~^<>=!;#,@]+)\s*(\[[^\]]*\])?\s*(.*)$`)

// requirement is one parsed requirement string.
type requirement struct {
	name string // Name with extras, as written
	base string // Name without extras
	spec string // Operator and version, with markers and comments removed
	end  int    // Length of the requirement text that was consumed
}

// parseRequirement splits s ("name[extras] >= 1.0 ; marker # comment").
// Leading whitespace must already be trimmed.
func parseRequirement(s string) (requirement, bool) {
	text := s
	if i := strings.IndexAny(text, ";#"); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimRight(text, " \t")

	m := requirementRE.FindStringSubmatch(text)
	if m == nil {
		return requirement{}, false
	}
	return requirement{
		name: m[1] + m[2],
		base: m[1],
		spec: strings.TrimSpace(m[3]),
		end:  len(text),
	}, true
}
