package python

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/stackbump/pkg/deps"
	"github.com/matzehuels/stackbump/pkg/version"
)

func TestSetupPy_Parse(t *testing.T) {
	content := `from setuptools import setup

setup(
    name="demo",
    install_requires=[
        "requests>=2.28.0",  # http
        'click',
        # "commented>=1.0",
    ],
    tests_require=["pytest==7.4.0"],
)
`
	doc := deps.NewDocument("setup.py", content)

	result := (&SetupPy{}).Parse(doc)

	want := []brief{
		{"requests", "requests", "2.28.0", version.OpGreaterEq, 5, 9},
		{"click", "click", "", version.OpNone, 6, 9},
		{"pytest", "pytest", "7.4.0", version.OpEqual, 9, 20},
	}
	if diff := cmp.Diff(want, briefs(result.Declarations)); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
	if end := result.Declarations[0].End; end != 25 {
		t.Errorf("End = %d, want 25", end)
	}
}

func TestSetupPy_ParseIgnoresDynamicLists(t *testing.T) {
	content := `reqs = open("requirements.txt").read().splitlines()
setup(install_requires=reqs, extras_require={"dev": ["pytest"]})
`
	result := (&SetupPy{}).Parse(deps.NewDocument("setup.py", content))
	if len(result.Declarations) != 0 {
		t.Errorf("got %d declarations, want 0", len(result.Declarations))
	}
}

func TestQuotedTokens(t *testing.T) {
	got := quotedTokens(`"a", 'b' # "c"
 "d"`)
	var texts []string
	for _, tok := range got {
		texts = append(texts, tok.text)
	}
	if diff := cmp.Diff([]string{"a", "b", "d"}, texts); diff != "" {
		t.Errorf("quotedTokens mismatch (-want +got):\n%s", diff)
	}
}
