// Package version implements dotted-numeric versions, constraint operators
// and upgrade candidate selection.
//
// # Versions
//
// A [Version] is a sequence of non-negative integers. [Compare] orders two
// versions component-wise, treating missing trailing components as zero, so
// "1.2" and "1.2.0" compare equal. Pre-release or build suffixes are not
// understood: [Parse] rejects them, and the resolver filters them out with
// [IsStable] before any comparison happens.
//
// # Constraints
//
// [SplitSpec] separates the operator prefix from a constraint string:
//
//	op, ref := version.SplitSpec("~=4.0.0") // "~=", "4.0.0"
//
// [Satisfies] decides whether a candidate matches an operator and reference
// version. Supported operators are "", "==", ">=", ">", "<=", "<", "!=",
// "~=", "^" and "~". Unknown operators behave like ">=".
//
// # Upgrades
//
// [ComputeUpgradeOptions] derives four upgrade candidates from a constraint
// and the full list of published versions:
//
//	c := version.ComputeUpgradeOptions("==1.2.0", []string{"1.2.0", "1.2.3", "1.3.0", "2.0.0"})
//	// c.Satisfies == "1.2.3", c.Patch == "1.2.3", c.Minor == "1.3.0", c.Major == "2.0.0"
//
// All functions are pure and safe for concurrent use.
package version
