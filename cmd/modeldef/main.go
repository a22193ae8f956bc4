// Command modeldef derives model definition files from Go structs and
// checks definition files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"modelbind/internal/analyze"
	"modelbind/internal/diagnostic"
	"modelbind/internal/logging"
	"modelbind/schema"
)

const usage = `usage: modeldef <command> [<args>]

Commands
   gen [-dir=<path>] [-o=<file>] <patterns...>
               Write model definitions for the exported structs of the Go
               packages matching patterns. The output is TOML when the file
               ends in .toml and YAML otherwise. Without -o, YAML is written
               to stdout.

   check <file>
               Load a YAML or TOML definition file and print its diagnostics.
               Exits with status 1 when the file has errors.

   help        Display this message

Set MODELBIND_LOG_LEVEL to trace, debug, info, warn or error for logging.
`

var errInvalid = errors.New("definitions have errors")

func main() {
	logging.ConfigureRuntime()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintf(stderr, "missing command\n\n%s", usage)
		return 2
	}

	var err error

	switch cmd := args[0]; cmd {
	case "gen":
		err = gen(args[1:], stdout, stderr)
	case "check":
		err = check(args[1:], stdout)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n\n%s", cmd, usage)
		return 2
	}

	if err != nil {
		fmt.Fprintf(stderr, "%s error: %v\n", args[0], err)
		return 1
	}

	return 0
}

func gen(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dir := fs.String("dir", "", "directory the package patterns are resolved in")
	out := fs.String("o", "", "output file, stdout when empty")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		return errors.New("missing package patterns")
	}

	graph, err := analyze.NewAnalyzer(analyze.WithDir(*dir)).LoadPackages(fs.Args()...)
	if err != nil {
		return err
	}

	f, diags := graph.File()
	diags.Merge(*schema.Validate(f))
	report(stderr, diags)

	if diags.HasErrors() {
		return errInvalid
	}

	log.Info().Int("models", len(f.Models)).Str("output", *out).Msg("generated definitions")

	if *out != "" {
		return schema.WriteFile(f, *out)
	}

	data, err := schema.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal definitions: %w", err)
	}

	_, err = stdout.Write(data)

	return err
}

func check(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errors.New("expected exactly one definition file")
	}

	f, err := schema.LoadFile(args[0])
	if err != nil {
		return err
	}

	diags := schema.Validate(f)
	report(stdout, diags)

	if diags.HasErrors() {
		return errInvalid
	}

	if _, err := f.Registry(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s: %d models ok\n", args[0], len(f.Models))

	return nil
}

func report(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, group := range [][]diagnostic.Diagnostic{diags.Errors, diags.Warnings, diags.Infos} {
		for _, d := range group {
			fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
		}
	}
}
