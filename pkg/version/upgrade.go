package version

import "slices"

// Candidates holds the four upgrade picks for one constraint. An empty
// string means no version qualifies for that slot.
type Candidates struct {
	Satisfies string `json:"satisfies,omitempty"` // Newest version matching the constraint
	Major     string `json:"major,omitempty"`     // Newest version with a greater major
	Minor     string `json:"minor,omitempty"`     // Newest version with same major, greater minor
	Patch     string `json:"patch,omitempty"`     // Newest version with same major.minor, greater patch
}

// Empty reports whether no slot was filled.
func (c Candidates) Empty() bool {
	return c == Candidates{}
}

// Label names an upgrade slot.
type Label string

const (
	LabelSatisfies Label = "satisfies"
	LabelPatch     Label = "patch"
	LabelMinor     Label = "minor"
	LabelMajor     Label = "major"
)

// Option is one labelled upgrade suggestion.
type Option struct {
	Label   Label  `json:"label"`
	Version string `json:"version"`
}

type release struct {
	text string
	v    Version
}

// stableReleases filters known down to stable releases and sorts them newest
// first. The sort is stable so equal versions keep their input order.
func stableReleases(known []string) []release {
	out := make([]release, 0, len(known))
	for _, s := range known {
		if !IsStable(s) {
			continue
		}
		v, err := Parse(s)
		if err != nil {
			continue
		}
		out = append(out, release{text: s, v: v})
	}
	slices.SortStableFunc(out, func(a, b release) int {
		return Compare(b.v, a.v)
	})
	return out
}

// ComputeUpgradeOptions derives the upgrade candidates for spec (an operator
// followed by a reference version, or a bare version) from the published
// versions in known. Pre-releases and other non-numeric tags are ignored.
//
// Each slot holds the highest qualifying version. Satisfies is computed first
// and may coincide with one of the other slots. When spec is an exact pin
// and nothing newer matches it, Satisfies falls back to the newest patch
// release of the pinned major.minor.
func ComputeUpgradeOptions(spec string, known []string) Candidates {
	c, err := ParseConstraint(spec)
	if err != nil {
		return Candidates{}
	}
	releases := stableReleases(known)

	var out Candidates
	for _, r := range releases {
		if c.Check(r.v) && Compare(r.v, c.Ref) > 0 {
			out.Satisfies = r.text
			break
		}
	}
	if out.Satisfies == "" && c.Op.IsExact() {
		for _, r := range releases {
			if r.v.Major() == c.Ref.Major() && r.v.Minor() == c.Ref.Minor() && r.v.Patch() > c.Ref.Patch() {
				out.Satisfies = r.text
				break
			}
		}
	}

	for _, r := range releases {
		if Compare(r.v, c.Ref) <= 0 {
			continue
		}
		switch {
		case r.v.Major() > c.Ref.Major():
			if out.Major == "" {
				out.Major = r.text
			}
		case r.v.Major() == c.Ref.Major() && r.v.Minor() > c.Ref.Minor():
			if out.Minor == "" {
				out.Minor = r.text
			}
		case r.v.Major() == c.Ref.Major() && r.v.Minor() == c.Ref.Minor() && r.v.Patch() > c.Ref.Patch():
			if out.Patch == "" {
				out.Patch = r.text
			}
		}
	}
	return out
}

// Latest returns the newest stable version in known, or "" if there is none.
func Latest(known []string) string {
	releases := stableReleases(known)
	if len(releases) == 0 {
		return ""
	}
	return releases[0].text
}

// Options lists the filled slots for presentation, in priority order
// satisfies, patch, minor, major. A version already shown under a higher
// priority label is not repeated. Satisfies is always listed; other slots
// equal to current are dropped.
func (c Candidates) Options(current string) []Option {
	var opts []Option
	seen := make(map[string]bool, 4)

	if c.Satisfies != "" {
		opts = append(opts, Option{Label: LabelSatisfies, Version: c.Satisfies})
		seen[c.Satisfies] = true
	}
	for _, o := range []Option{
		{LabelPatch, c.Patch},
		{LabelMinor, c.Minor},
		{LabelMajor, c.Major},
	} {
		if o.Version == "" || seen[o.Version] || o.Version == current {
			continue
		}
		seen[o.Version] = true
		opts = append(opts, o)
	}
	return opts
}
