package selection_test

import (
	"fmt"

	"github.com/katalvlaran/lvlearn/selection"
)

// ExampleLinearRange shows the default regression grid: one τ and the
// degrees 5 through 15.
func ExampleLinearRange() {
	taus, _ := selection.LinearRange(1e-8, 1e-6, 1e-6)
	degrees, _ := selection.IntRange(5, 15, 5)
	fmt.Println(taus, degrees)
	fmt.Println(selection.Params{Tau: taus[0], Degree: degrees[0]})
	// Output:
	// [1e-08] [5 10 15]
	// KernelRidge(tau=1e-08)
	//   Polynomial(degree=5, normalizer=SqrtDiag)
}
