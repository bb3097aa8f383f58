// Package main is the entry point for the studentctl binary.
package main

import (
	"os"

	"github.com/yigit/studentrecords/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], cli.StdIO()))
}
