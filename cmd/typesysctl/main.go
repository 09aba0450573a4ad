// Command typesysctl drives the type system core against an in-memory
// fixture program, for manual inspection and smoke-testing outside the
// test suite.
package main

import (
	"fmt"
	"os"

	"github.com/typecore/corelang/cmd/typesysctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
