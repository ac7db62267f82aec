// Package main is the entry point for the titanic CLI binary.
package main

import (
	"os"

	cli "titanic-dash/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
