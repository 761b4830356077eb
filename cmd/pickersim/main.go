// Command pickersim drives the date picker from a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/picker/cmd/pickersim/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
