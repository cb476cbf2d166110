package tangle

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// assertEqualOutput fails t with a unified diff when got != want, rather
// than dumping both full strings — useful once expanded output grows past
// a couple of lines.
func assertEqualOutput(t *testing.T, want, got, name string) {
	t.Helper()
	if want == got {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		diff = err.Error()
	}
	t.Errorf("%s: output mismatch:\n%s", name, strings.TrimRight(diff, "\n"))
}
