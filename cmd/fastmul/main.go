// SPDX-License-Identifier: MIT

// Command fastmul demonstrates and benchmarks the multiplication
// algorithms of package multiply.
package main

import (
	"os"

	"github.com/katalvlaran/fastmul/cmd/fastmul/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
