// Command arbordot renders a tree, given in its JSON wire format, either as
// Graphviz DOT (the default) or as a colored console outline.
//
// Usage:
//
//	arbordot [-outline] [-o outfile] [treefile.json]
//
// Without a file argument the tree is read from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/treejson"
	"golang.org/x/term"
)

func main() {
	outline := flag.Bool("outline", false, "render a console outline instead of DOT")
	outfile := flag.String("o", "", "write output to file instead of stdout")
	check := flag.Bool("check", false, "validate structural invariants after decoding")
	flag.Parse()

	input, err := readInput(flag.Arg(0))
	if err != nil {
		fail("cannot read input: %v", err)
	}
	tree, err := treejson.Decode(input)
	if err != nil {
		fail("cannot decode tree: %v", err)
	}
	if *check {
		if err := tree.Check(); err != nil {
			fail("tree is inconsistent: %v", err)
		}
	}

	out := os.Stdout
	if *outfile != "" {
		f, err := os.Create(*outfile)
		if err != nil {
			fail("cannot create output file: %v", err)
		}
		defer f.Close()
		out = f
	}
	if *outline {
		printOutline(tree, out)
	} else {
		arbor.Tree2Dot(tree, out)
	}
}

// printOutline writes an indented tree listing. Branch nodes are colored when
// writing to an interactive terminal.
func printOutline(tree *arbor.Tree, out *os.File) {
	if !term.IsTerminal(int(out.Fd())) {
		color.NoColor = true
	}
	branch := color.New(color.FgCyan, color.Bold)
	leaf := color.New(color.FgWhite)
	faint := color.New(color.Faint)

	_ = tree.EachNode(arbor.Root, arbor.DFS, func(id arbor.NodeID, depth int) error {
		for i := 0; i < depth; i++ {
			fmt.Fprint(out, "  ")
		}
		if id.IsRoot() {
			branch.Fprintln(out, "#root")
			return nil
		}
		kids, _ := tree.ChildCount(id)
		pen := leaf
		if kids > 0 {
			pen = branch
		}
		pen.Fprint(out, id.Name())
		if data, err := tree.Data(id); err == nil && len(data) > 0 {
			faint.Fprintf(out, "  {%s}", dataKeys(data))
		}
		fmt.Fprintln(out)
		return nil
	})
}

func dataKeys(data map[string]any) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	s := ""
	for i, k := range keys {
		if i > 0 {
			s += ","
		}
		s += k
	}
	return s
}

func readInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "arbordot: "+format+"\n", args...)
	os.Exit(1)
}
