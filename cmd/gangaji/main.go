// Package main implements the gangaji CLI, a thin consumer of the
// mathx, textx and numfmt library packages.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gangaji/cmd/gangaji/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
