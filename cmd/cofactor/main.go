// SPDX-License-Identifier: MIT

// Command cofactor prints the determinant of an integer matrix file.
package main

import (
	"os"

	"github.com/katalvlaran/cofactor/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
