package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/jsonmatch"
	"github.com/erraggy/jsonmatch/cmd/jsonmatch/commands"
	"github.com/erraggy/jsonmatch/internal/cliutil"
	"github.com/erraggy/jsonmatch/matcherrors"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches a command and returns the process exit status.
func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 2
	}

	switch command := args[0]; command {
	case "version", "-v", "--version":
		cliutil.Writef(os.Stdout, "jsonmatch %s\n", jsonmatch.Version())
		return 0
	case "buildinfo":
		cliutil.Writef(os.Stdout, "%s", jsonmatch.BuildInfo())
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	case "diff":
		return exitStatus(commands.HandleDiff(args[1:]))
	default:
		cliutil.Writef(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		return 2
	}
}

// exitStatus maps a command error to an exit status: 0 on success, 1 when
// the documents differ and 2 for everything else.
func exitStatus(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, matcherrors.ErrMismatch):
		return 1
	default:
		cliutil.Writef(os.Stderr, "Error: %v\n", err)
		return 2
	}
}

func printUsage() {
	usage := `jsonmatch - compare JSON and YAML documents against a spec

Usage:
  jsonmatch <command> [flags] [args]

Commands:
  diff       Compare a candidate document against a spec document
  version    Show version information
  buildinfo  Show detailed build information
  help       Show this help message

Run 'jsonmatch <command> --help' for more information on a command.
`
	fmt.Fprint(os.Stderr, usage)
}
