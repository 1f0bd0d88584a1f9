// Command etymodb extracts etymology relationships from a Wiktionary XML
// dump's Etymology sections and writes them as a CSV edge list.
package main

import (
	"os"

	"github.com/wiktio/etymodb/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
