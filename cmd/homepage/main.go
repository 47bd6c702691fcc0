// Command homepage serves the site and exposes the toolbox on the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := execute(newRootCmd(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
