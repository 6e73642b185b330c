package asserts

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"

	"digital.vasic.asserts/pkg/kind"
)

var spewConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	SpewKeys:                true,
}

// Detail renders a multi-line explanation of the failure with
// typed operands. Equals failures on multi-line values also get
// a unified diff. Detail never alters Message.
func (e *AssertionError) Detail() string {
	var b strings.Builder

	switch e.Check {
	case CheckEquals:
		expected := spewConfig.Sdump(e.Expected)
		actual := spewConfig.Sdump(e.Actual)
		fmt.Fprintf(&b, "expected: %s", expected)
		fmt.Fprintf(&b, "actual:   %s", actual)

		if expected == actual {
			b.WriteString("operands render identically but are distinct instances\n")
			break
		}
		if strings.Count(expected, "\n") > 1 || strings.Count(actual, "\n") > 1 {
			diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(expected),
				B:        difflib.SplitLines(actual),
				FromFile: "Expected",
				ToFile:   "Actual",
				Context:  1,
			})
			if diff != "" {
				b.WriteString("diff:\n")
				b.WriteString(diff)
			}
		}

	case CheckInstanceOf:
		fmt.Fprintf(&b, "value:    %s", spewConfig.Sdump(e.Actual))
		fmt.Fprintf(&b, "kind:     %s\n", kindString(e.Expected))

	case CheckThrows:
		fmt.Fprintf(&b, "expected: %s\n", kindString(e.Expected))
		if e.Cause == nil {
			b.WriteString("raised:   nothing\n")
		} else {
			fmt.Fprintf(&b, "raised:   %T: %v\n", e.Cause, e.Cause)
		}
	}

	return b.String()
}

func kindString(v any) string {
	if k, ok := v.(kind.Kind); ok {
		return k.String()
	}
	return fmt.Sprint(v)
}
