// Package main is the entry point for the golox CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/golox/internal/cli"
)

func main() {
	err := cli.Execute()
	os.Exit(cli.ExitCode(err))
}
