// Command rbtypegraph is a small manual-inspection driver: it runs the
// visitor over a hand-built asttest fixture and dumps the resulting
// vertex graph. No real parser is wired into this module, so it
// cannot take a .rb file on the command line — only a fixture name.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/riseshia/rbtypegraph/internal/asttest"
	"github.com/riseshia/rbtypegraph/internal/config"
	"github.com/riseshia/rbtypegraph/internal/host"
	"github.com/riseshia/rbtypegraph/internal/vertex"
)

func usage() {
	fmt.Fprintf(os.Stderr, "rbtypegraph %s\n", config.Version)
	fmt.Fprintf(os.Stderr, "Usage: %s <fixture-name>\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Available fixtures:")
	names := asttest.Names()
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(os.Stderr, "  %s\n", n)
	}
}

func main() {
	if len(os.Args) != 2 {
		usage()
		os.Exit(1)
	}

	name := os.Args[1]
	prog, ok := asttest.Fixtures[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown fixture %q\n\n", name)
		usage()
		os.Exit(1)
	}

	if config.IsTestMode {
		fmt.Fprintln(os.Stderr, "(fixture-driven: no real parser is wired into this build)")
	}

	result := host.Walk(name, prog)
	color := isatty.IsTerminal(os.Stdout.Fd())
	for _, err := range result.Diagnostics {
		printDiagnostic(err.Error(), color)
	}
	fmt.Print(renderDump(result.Vertices.All()))
	fmt.Printf("\n%s vertices, run %s\n", humanize.Comma(int64(len(result.Vertices.All()))), result.RunID)
}

func printDiagnostic(msg string, color bool) {
	if color {
		fmt.Fprintf(os.Stderr, "\x1b[31m%s\x1b[0m\n", msg)
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}

// renderDump renders vertices one per line in the plain (uncolored)
// form the recorded dump tests pin against. The trailing
// vertex-count/run-id summary line is built separately by the caller,
// since the run id is fresh every call and so cannot appear in a
// recorded archive.
func renderDump(vertices []*vertex.TypeVertex) string {
	var b strings.Builder
	for _, v := range vertices {
		b.WriteString(formatVertex(v))
		b.WriteByte('\n')
	}
	return b.String()
}

func formatVertex(v *vertex.TypeVertex) string {
	deps := make([]int, len(v.Dependencies))
	for i, d := range v.Dependencies {
		deps[i] = d.ID
	}
	return fmt.Sprintf("#%d %s(%q) scope=%q deps=%v -> %s", v.ID, v.Kind, v.Name, v.Scope, deps, v.Infer())
}
