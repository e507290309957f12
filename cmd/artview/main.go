// Command artview browses the Met and Art Institute of Chicago collections one
// page at a time.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := execute(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
