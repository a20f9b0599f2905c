// Command lvlalign aligns DNA-like sequence pairs with every lvlalign engine,
// simulates benchmark reads and renders single alignments.
//
//	lvlalign simulate -n 100 -l 500 -e 0.1 > reads.tsv
//	lvlalign align reads.tsv --engines quadratic,diagonal
//	lvlalign show ACGT ACCTG --engine diagonal-packed
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "lvlalign:", err)
		stop()
		os.Exit(1)
	}
}
