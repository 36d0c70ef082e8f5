package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/riseshia/rbtypegraph/internal/asttest"
	"github.com/riseshia/rbtypegraph/internal/host"
)

var update = flag.Bool("update", false, "rewrite recorded dump archives")

// dumpFixtures lists the fixtures with a checked-in recorded archive, a
// subset of asttest.Names() kept small because each entry's dump text
// (vertex ids, scopes, dependency edges) has to be hand verified
// against the walker whenever the fixture changes.
var dumpFixtures = []string{
	"bare_attr_reader",
	"const_ref_before_decl",
	"const_decl_after_ref",
}

// TestDump pins renderDump's output for dumpFixtures against a recorded
// txtar archive under testdata/dumps, one archive per fixture holding a
// single "dump" file. Run with -update to (re)write them after an
// intentional output-format change.
func TestDump(t *testing.T) {
	for _, name := range dumpFixtures {
		t.Run(name, func(t *testing.T) {
			prog := asttest.Fixtures[name]
			result := host.Walk(name, prog)
			actual := renderDump(result.Vertices.All())

			archivePath := filepath.Join("testdata", "dumps", name+".txtar")

			if *update {
				arc := &txtar.Archive{Files: []txtar.File{{Name: "dump", Data: []byte(actual)}}}
				if err := os.WriteFile(archivePath, txtar.Format(arc), 0o644); err != nil {
					t.Fatalf("writing dump archive: %v", err)
				}
				return
			}

			arc, err := txtar.ParseFile(archivePath)
			if err != nil {
				t.Fatalf("reading dump archive: %v. Run with -update to create it.", err)
			}
			if len(arc.Files) != 1 || arc.Files[0].Name != "dump" {
				t.Fatalf("dump archive %s malformed: want exactly one file named dump", archivePath)
			}

			expected := string(arc.Files[0].Data)
			if expected != actual {
				t.Errorf("dump mismatch for fixture %q:\n--- expected\n%s\n--- actual\n%s", name, expected, actual)
			}
		})
	}
}
