// Command gentables writes the evaluator's rank/flush lookup tables to a
// binary blob on disk. This is pure offline codegen: the evaluator builds
// its own tables in-process via tables.Default and never reads this blob at
// runtime, so gentables exists purely to produce an artifact for callers
// that want to skip table construction at process startup.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerequity/internal/tables"
)

func main() {
	out := flag.String("out", "tables.bin", "output path for the encoded table blob")
	flag.Parse()

	tb := tables.Default()
	blob := tb.Marshal()

	if err := os.WriteFile(*out, blob, 0o644); err != nil {
		log.Fatal("write table blob", "path", *out, "err", err)
	}

	fmt.Printf("wrote %d bytes to %s\n", len(blob), *out)
}
