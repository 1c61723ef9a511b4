// Package main is the entry point for the validate-examples CLI.
package main

import (
	"os"

	"github.com/coursekit/validate-examples/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
