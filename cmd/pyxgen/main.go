// Package main provides the pyxgen command-line tool.
package main

import (
	"os"

	"github.com/pyxgen/pyxgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
