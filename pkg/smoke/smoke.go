// Package smoke exercises the math library end to end and reports whether
// it produced the expected results.
package smoke

import (
	"fmt"
	"io"

	"github.com/sunfmin/mymath/pkg/logger"
	"github.com/sunfmin/mymath/pkg/mymath"
)

const (
	SuccessMessage = "✅ Math library works correctly!"
	FailureMessage = "❌ Math library calculation error!"

	ExitSuccess = 0
	ExitFailure = 1
)

// Ops holds the operations checked by Run.
type Ops struct {
	Add      func(a, b int) int
	Multiply func(a, b int) int
}

// DefaultOps binds Ops to the mymath package.
func DefaultOps() Ops {
	return Ops{
		Add:      mymath.Add,
		Multiply: mymath.Multiply,
	}
}

// Run computes 10 + 20 and 5 * 6, writes one line per computation and a
// verdict line to w, and returns the process exit code.
func Run(w io.Writer, ops Ops) int {
	sum := ops.Add(10, 20)
	prod := ops.Multiply(5, 6)

	logger.Debug("Computed smoke test values", "sum", sum, "product", prod)

	fmt.Fprintf(w, "10 + 20 = %d\n", sum)
	fmt.Fprintf(w, "5 * 6 = %d\n", prod)

	if sum == 30 && prod == 30 {
		fmt.Fprintln(w, SuccessMessage)
		return ExitSuccess
	}

	logger.Debug("Smoke test mismatch", "wantSum", 30, "wantProduct", 30)
	fmt.Fprintln(w, FailureMessage)
	return ExitFailure
}
