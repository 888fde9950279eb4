// This binary reads a TDF document from stdin or a file and re-emits it,
// letting the caller reformat (compact <-> formatted), convert between the
// general and properties-only media types, or just validate the input.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/globalmentor/go-urf"
)

func main() {
	formatted := flag.Bool("formatted", false, "emit indented, newline-separated output")
	indent := flag.Int("indent", 2, "spaces per indent level in formatted mode")
	shortForm := flag.Bool("short-property-form", false, "use the \"propertyRef:...;\" short description form where possible")
	autoNS := flag.Bool("auto-namespace", false, "auto-discover and alias property/type namespaces")
	excludeDup := flag.Bool("exclude-duplicate-roots", false, "skip re-emitting a root resource already emitted earlier in the sequence")
	properties := flag.Bool("properties", false, "treat the input/output as a properties-only document")
	flag.Parse()

	var input io.Reader = os.Stdin
	if args := flag.Args(); len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "tdf:", err)
			os.Exit(1)
		}
		defer f.Close()
		input = f
	} else if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "tdf: only one input file is supported")
		os.Exit(1)
	}

	src, err := io.ReadAll(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tdf:", err)
		os.Exit(1)
	}

	expected := tdf.GeneralMediaType
	if *properties {
		expected = tdf.PropertiesMediaType
	}
	ns := tdf.NewNamespace()
	roots, err := tdf.ParseGraph(string(src), tdf.WithExpectedMediaType(expected), tdf.WithNamespaceRegistry(ns))
	if err != nil {
		fmt.Fprintln(os.Stderr, "tdf:", err)
		os.Exit(1)
	}

	serializeMediaType := tdf.GeneralMediaType
	if *properties {
		serializeMediaType = tdf.PropertiesMediaType
	}
	err = tdf.Write(os.Stdout, roots,
		tdf.WithFormatted(*formatted),
		tdf.WithIndentWidth(*indent),
		tdf.WithShortPropertyForm(*shortForm),
		tdf.WithAutoNamespaceDiscovery(*autoNS),
		tdf.WithExcludeDuplicateRoots(*excludeDup),
		tdf.WithSerializeMediaType(serializeMediaType),
		tdf.WithSerializeNamespaceRegistry(ns),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tdf:", err)
		os.Exit(1)
	}
}
