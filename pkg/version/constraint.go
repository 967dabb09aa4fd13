package version

import "strings"

// Operator is a constraint operator prefix such as ">=" or "^".
type Operator string

const (
	OpNone       Operator = ""   // No operator authored; exact match
	OpEqual      Operator = "==" // Exact match
	OpGreaterEq  Operator = ">=" // Greater than or equal
	OpGreater    Operator = ">"  // Strictly greater
	OpLessEq     Operator = "<=" // Less than or equal
	OpLess       Operator = "<"  // Strictly less
	OpNotEqual   Operator = "!=" // Anything but the reference
	OpCompatible Operator = "~=" // Compatible release: same major.minor, not older
	OpCaret      Operator = "^"  // Same major, not older
	OpTilde      Operator = "~"  // Same major.minor, not older
)

// IsExact reports whether op pins a single version.
func (op Operator) IsExact() bool {
	return op == OpNone || op == OpEqual
}

// Constraint pairs an operator with its reference version.
type Constraint struct {
	Op  Operator
	Ref Version
}

// SplitSpec separates a constraint string into its operator and version
// text. The operator is the longest leading run of "~^>=<!" characters;
// without one, the whole (trimmed) input is the version text.
func SplitSpec(spec string) (Operator, string) {
	s := strings.TrimSpace(spec)
	i := 0
	for i < len(s) && strings.IndexByte(operatorChars, s[i]) >= 0 {
		i++
	}
	return Operator(s[:i]), strings.TrimSpace(s[i:])
}

// ParseConstraint splits spec and parses its reference version.
func ParseConstraint(spec string) (Constraint, error) {
	op, text := SplitSpec(spec)
	ref, err := Parse(text)
	if err != nil {
		return Constraint{}, err
	}
	return Constraint{Op: op, Ref: ref}, nil
}

// Check reports whether v satisfies c.
func (c Constraint) Check(v Version) bool {
	return Satisfies(v, c.Op, c.Ref)
}

// Satisfies reports whether candidate matches op relative to ref.
// Unrecognized operators are treated as ">=".
func Satisfies(candidate Version, op Operator, ref Version) bool {
	cmp := Compare(candidate, ref)
	switch op {
	case OpNone, OpEqual:
		return cmp == 0
	case OpGreaterEq:
		return cmp >= 0
	case OpGreater:
		return cmp > 0
	case OpLessEq:
		return cmp <= 0
	case OpLess:
		return cmp < 0
	case OpNotEqual:
		return cmp != 0
	case OpCompatible, OpTilde:
		return candidate.Major() == ref.Major() && candidate.Minor() == ref.Minor() && cmp >= 0
	case OpCaret:
		return candidate.Major() == ref.Major() && cmp >= 0
	default:
		return cmp >= 0
	}
}
