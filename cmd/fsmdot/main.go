// fsmdot renders a declarative machine definition (YAML or JSON) as
// Graphviz DOT source on stdout.
//
// Usage:
//
//	fsmdot [-anywhere] machine.yaml | dot -Tsvg -o machine.svg
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fsmx/fsmx/def"
)

func main() {
	anywhere := flag.Bool("anywhere", false, "draw wildcard transitions from a single \"anywhere\" node instead of expanding them per state")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-anywhere] <definition.yaml|definition.json>\n", os.Args[0])
		os.Exit(2)
	}

	cfg, err := def.LoadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	m, err := cfg.Build(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Print(m.ExportDOT(*anywhere))
}
