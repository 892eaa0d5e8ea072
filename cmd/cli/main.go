// Package main is the entry point for the insertkit CLI binary.
package main

import (
	"os"

	cli "insertkit/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
