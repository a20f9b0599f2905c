package harness_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlalign/affine"
	"github.com/katalvlaran/lvlalign/harness"
)

// ExampleRunner_Run aligns one pair with two engines and prints the
// statistics of each record.
func ExampleRunner_Run() {
	pairs, err := harness.ReadPairs(strings.NewReader("ACGT\tACCTG\n"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	engines, err := harness.Select([]string{harness.Quadratic, harness.Diagonal}, affine.DefaultParams())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	records, err := harness.Runner{Engines: engines}.Run(context.Background(), pairs)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, rec := range records {
		fmt.Println(rec.ID, rec.Engine, rec.Dist, rec.Gaps)
	}
	// Output:
	// 0 quadratic 2 1
	// 0 diagonal 2 1
}
