package version

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/stackbump/pkg/errors"
)

// operatorChars are the characters that may form a constraint operator prefix.
const operatorChars = "~^>=<!"

var stableRE = regexp.MustCompile(`^\d+\.\d+(\.\d+)?$`)

// Version is a dotted-numeric version such as 1.2.3. It may have any number
// of components.
type Version []int

// Parse converts text into a Version. Leading operator characters,
// surrounding whitespace and a single leading "v" are ignored. Every
// dot-separated segment must be a non-negative integer.
func Parse(text string) (Version, error) {
	s := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(text), operatorChars))
	s = strings.TrimPrefix(strings.TrimPrefix(s, "v"), "V")
	if s == "" {
		return nil, errors.New(errors.ErrCodeInvalidVersion, "empty version")
	}

	parts := strings.Split(s, ".")
	v := make(Version, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || p[0] == '+' {
			return nil, errors.New(errors.ErrCodeInvalidVersion, "invalid version %q", text)
		}
		v[i] = n
	}
	return v, nil
}

// IsStable reports whether text is a plain major.minor or major.minor.patch
// release without any qualifier.
func IsStable(text string) bool {
	return stableRE.MatchString(text)
}

// Valid reports whether text parses as a Version.
func Valid(text string) bool {
	_, err := Parse(text)
	return err == nil
}

// Component returns the i-th component, or 0 if v is shorter.
func (v Version) Component(i int) int {
	if i < len(v) {
		return v[i]
	}
	return 0
}

func (v Version) Major() int { return v.Component(0) }
func (v Version) Minor() int { return v.Component(1) }
func (v Version) Patch() int { return v.Component(2) }

// String formats v with dots.
func (v Version) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// Compare returns -1, 0 or 1 depending on whether v is older than, equal to,
// or newer than other.
func (v Version) Compare(other Version) int {
	return Compare(v, other)
}

// Compare orders a and b component-wise. The shorter version is padded with
// zeros, so the first differing component decides.
func Compare(a, b Version) int {
	n := max(len(a), len(b))
	for i := range n {
		x, y := a.Component(i), b.Component(i)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}

// CompareStrings parses and compares two version strings. Unparsable input
// compares as the empty version.
func CompareStrings(a, b string) int {
	va, _ := Parse(a)
	vb, _ := Parse(b)
	return Compare(va, vb)
}
