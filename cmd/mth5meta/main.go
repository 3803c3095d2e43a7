// Package main provides the CLI entrypoint for mth5meta.
//
// mth5meta converts MTH5 metadata between nested documents, flat dotted keys
// and XML, and fills FGDC templates from a YAML config:
//   - flatten / structure move between nested and flat documents
//   - to-xml / from-xml render and parse the XML form
//   - validate checks a document against an attribute table
//   - fgdc writes a filled-in FGDC record
//   - serve runs the HTTP API
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Version is set during build.
var Version = "dev"

var errUsage = errors.New("usage")

type command struct {
	name    string
	summary string
	run     func(args []string, stdin io.Reader, stdout io.Writer) error
}

var commands = []command{
	{"flatten", "flatten a nested document into dotted keys", runFlatten},
	{"structure", "nest a flat document", runStructure},
	{"to-xml", "render a document as XML", runToXML},
	{"from-xml", "parse XML into a document", runFromXML},
	{"validate", "check a document against an attribute table", runValidate},
	{"fgdc", "fill an FGDC template from a config", runFGDC},
	{"serve", "run the HTTP API", runServe},
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "help" {
		usage(os.Stderr)
		return errUsage
	}

	for _, c := range commands {
		if c.name == args[0] {
			return c.run(args[1:], stdin, stdout)
		}
	}

	usage(os.Stderr)

	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: mth5meta <command> [options] [file]\n\n")
	fmt.Fprintf(w, "Commands:\n")

	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.summary)
	}

	fmt.Fprintf(w, "\nRun 'mth5meta <command> -h' for command options.\n")
}
