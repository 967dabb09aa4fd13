package version

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"1.2.3", "1.2.3", false},
		{"1.2", "1.2", false},
		{"10", "10", false},
		{"==2.28.0", "2.28.0", false},
		{"^1.0.0", "1.0.0", false},
		{">= 1.21", "1.21", false},
		{"v2.0.1", "2.0.1", false},
		{"1.2.3.4", "1.2.3.4", false},

		{"", "", true},
		{"^", "", true},
		{"1.2.x", "", true},
		{"1.0.0-beta", "", true},
		{"1..2", "", true},
		{"latest", "", true},
		{"+1.0", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && v.String() != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, v, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.2", "1.2.0", 0},
		{"1.2.0.0", "1.2", 0},
		{"1.2.3", "1.2.4", -1},
		{"1.10.0", "1.9.0", 1},
		{"2.0", "1.99.99", 1},
		{"1.2.0.1", "1.2", 1},
		{"0.0.1", "0.1", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			if got := CompareStrings(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompareProperties(t *testing.T) {
	versions := []string{"0", "0.1", "1.0", "1.0.0", "1.0.1", "1.2", "1.10", "2.0.0", "2.0.0.1", "10.0"}

	for _, a := range versions {
		if got := CompareStrings(a, a); got != 0 {
			t.Errorf("Compare(%s, %s) = %d, want 0", a, a, got)
		}
		for _, b := range versions {
			if CompareStrings(a, b) != -CompareStrings(b, a) {
				t.Errorf("Compare not antisymmetric for %s, %s", a, b)
			}
		}
	}
}

func TestIsStable(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1.2", true},
		{"1.2.3", true},
		{"1", false},
		{"1.2.3.4", false},
		{"1.2.3rc1", false},
		{"1.2.3-beta.1", false},
		{"1.2.3+build", false},
		{"v1.2.3", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsStable(tt.input); got != tt.want {
				t.Errorf("IsStable(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestComponents(t *testing.T) {
	v, _ := Parse("3")
	if v.Major() != 3 || v.Minor() != 0 || v.Patch() != 0 {
		t.Errorf("components of %s = %d.%d.%d, want 3.0.0", v, v.Major(), v.Minor(), v.Patch())
	}
}
