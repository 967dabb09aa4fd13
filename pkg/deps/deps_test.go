package deps

import (
	"testing"

	"github.com/matzehuels/stackbump/pkg/version"
)

func TestNewDeclaration(t *testing.T) {
	doc := NewDocument("requirements.txt", "")

	tests := []struct {
		spec    string
		wantOp  version.Operator
		wantVer string
	}{
		{"==1.2.0", version.OpEqual, "1.2.0"},
		{">= 2.0", version.OpGreaterEq, "2.0"},
		{"1.0.0", version.OpNone, "1.0.0"},
		{">=1.0,<2.0", version.OpGreaterEq, "1.0"},
		{"^1.0.0 || ^2.0.0", version.OpCaret, "1.0.0"},
		{"==1.0.0rc1", version.OpNone, ""},
		{"*", version.OpNone, ""},
		{"", version.OpNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			d := NewDeclaration(doc, "pkg", "pkg", tt.spec, Position{Line: 1, Start: 2, End: 5})
			if d.Operator != tt.wantOp || d.Version != tt.wantVer {
				t.Errorf("NewDeclaration(%q) = %q %q, want %q %q", tt.spec, d.Operator, d.Version, tt.wantOp, tt.wantVer)
			}
			if d.HasVersion() != (tt.wantVer != "") {
				t.Errorf("HasVersion() = %v", d.HasVersion())
			}
			if d.Line != 1 || d.Start != 2 || d.End != 5 || d.File != "requirements.txt" {
				t.Errorf("position = %d:%d-%d in %s", d.Line, d.Start, d.End, d.File)
			}
		})
	}
}

func TestNewDeclarationClampsPosition(t *testing.T) {
	d := NewDeclaration(NewDocument("f", ""), "a", "a", "", Position{Line: -1, Start: 4, End: 2})
	if d.Line != 0 || d.Start != 4 || d.End != 4 {
		t.Errorf("position = %d:%d-%d, want 0:4-4", d.Line, d.Start, d.End)
	}
}

func TestDeclarationSpec(t *testing.T) {
	d := Declaration{Version: "1.2.0", Operator: version.OpCaret}
	if got := d.Spec(); got != "^1.2.0" {
		t.Errorf("Spec() = %q, want %q", got, "^1.2.0")
	}
}

func TestSortByPosition(t *testing.T) {
	decls := []Declaration{
		{Name: "c", Line: 2},
		{Name: "b", Line: 0, Start: 4},
		{Name: "a", Line: 0, Start: 4},
		{Name: "d", Line: 0, Start: 0},
	}
	SortByPosition(decls)

	var got string
	for _, d := range decls {
		got += d.Name
	}
	if got != "dabc" {
		t.Errorf("order = %s, want dabc", got)
	}
}
