package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"

	"github.com/erraggy/jsonmatch"
	"github.com/erraggy/jsonmatch/internal/cliutil"
	"github.com/erraggy/jsonmatch/matcher"
	"github.com/erraggy/jsonmatch/matcherrors"
)

// DiffFlags contains flags for the diff command
type DiffFlags struct {
	Unordered  bool
	Exhaustive bool
	Format     string
	NoColor    bool
	Verbose    bool
}

// DiffResult is the structured output of the diff command.
type DiffResult struct {
	Spec      string            `json:"spec" yaml:"spec"`
	Candidate string            `json:"candidate" yaml:"candidate"`
	Matches   bool              `json:"matches" yaml:"matches"`
	Count     int               `json:"count" yaml:"count"`
	Breaks    []matcher.Summary `json:"breaks" yaml:"breaks"`
}

// SetupDiffFlags creates and configures a FlagSet for the diff command.
// Returns the FlagSet and a DiffFlags struct with bound flag variables.
func SetupDiffFlags() (*flag.FlagSet, *DiffFlags) {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	flags := &DiffFlags{}

	fs.BoolVar(&flags.Unordered, "unordered", false, "compare sequences regardless of element order")
	fs.BoolVar(&flags.Unordered, "u", false, "compare sequences regardless of element order")
	fs.BoolVar(&flags.Exhaustive, "exhaustive", false, "keep comparing values of common keys after a key-set mismatch")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml, or table")
	fs.BoolVar(&flags.NoColor, "no-color", false, "disable colored text output")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log match diagnostics to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: jsonmatch diff [flags] <spec> <candidate>\n\n")
		cliutil.Writef(fs.Output(), "Compare a candidate JSON or YAML document against a spec document.\n")
		cliutil.Writef(fs.Output(), "Use '-' for either path to read that document from stdin.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nOutput Formats:\n")
		cliutil.Writef(fs.Output(), "  text (default)  Human-readable text output\n")
		cliutil.Writef(fs.Output(), "  table           One table row per break\n")
		cliutil.Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
		cliutil.Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  jsonmatch diff expected.json actual.json\n")
		cliutil.Writef(fs.Output(), "  jsonmatch diff --unordered expected.yaml actual.json\n")
		cliutil.Writef(fs.Output(), "  curl -s https://api.example.com/user | jsonmatch diff --format json expected.json - | jq '.count'\n")
		cliutil.Writef(fs.Output(), "\nExit Status:\n")
		cliutil.Writef(fs.Output(), "  0    Candidate matches the spec\n")
		cliutil.Writef(fs.Output(), "  1    Candidate does not match the spec\n")
		cliutil.Writef(fs.Output(), "  2    Invalid arguments or unreadable documents\n")
	}

	return fs, flags
}

// HandleDiff executes the diff command
func HandleDiff(args []string) error {
	return runDiff(args, os.Stdin, os.Stdout)
}

func runDiff(args []string, stdin io.Reader, stdout io.Writer) error {
	fs, flags := SetupDiffFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("%w: diff command requires exactly two documents", ErrUsage)
	}

	specPath := fs.Arg(0)
	candidatePath := fs.Arg(1)
	if specPath == StdinFilePath && candidatePath == StdinFilePath {
		return fmt.Errorf("%w: only one document can be read from stdin", ErrUsage)
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	spec, err := LoadDocument(specPath, stdin)
	if err != nil {
		return err
	}
	candidate, err := LoadDocument(candidatePath, stdin)
	if err != nil {
		return err
	}

	opts := []matcher.Option{
		matcher.WithOrdered(!flags.Unordered),
		matcher.WithExhaustive(flags.Exhaustive),
	}
	if flags.Verbose {
		zl, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer func() { _ = zl.Sync() }()
		opts = append(opts, matcher.WithLogger(matcher.NewZapAdapter(zl)))
	}

	startTime := time.Now()
	m := matcher.Compile(spec, opts...)
	bs := m.Breaks(candidate)
	totalTime := time.Since(startTime)

	result := DiffResult{
		Spec:      FormatDocumentPath(specPath),
		Candidate: FormatDocumentPath(candidatePath),
		Matches:   bs.Empty(),
		Count:     bs.Len(),
		Breaks:    bs.Summaries(),
	}

	switch flags.Format {
	case FormatJSON, FormatYAML:
		if err := OutputStructured(stdout, result, flags.Format); err != nil {
			return err
		}
	case FormatTable:
		if err := writeTable(stdout, result); err != nil {
			return err
		}
	default:
		writeText(stdout, result, totalTime, flags.NoColor)
	}

	if bs.Empty() {
		return nil
	}
	return &matcherrors.MismatchError{
		Message: matcher.DefaultMessage,
		Count:   bs.Len(),
		Details: bs.Details(),
	}
}

func writeText(w io.Writer, result DiffResult, totalTime time.Duration, noColor bool) {
	// color.NoColor is set when stdout is not a terminal.
	palette := cliutil.NewPalette(!noColor && !color.NoColor)

	cliutil.Writef(w, "jsonmatch version: %s\n", jsonmatch.Version())
	cliutil.Writef(w, "Spec: %s\n", result.Spec)
	cliutil.Writef(w, "Candidate: %s\n", result.Candidate)
	cliutil.Writef(w, "Total Time: %v\n\n", totalTime)

	if result.Matches {
		cliutil.Writef(w, "%s\n", palette.OK("✓ Candidate matches spec"))
		return
	}

	cliutil.Writef(w, "%s\n", palette.Bad(fmt.Sprintf("✗ Candidate doesn't match spec (%d)", result.Count)))
	for _, s := range result.Breaks {
		cliutil.Writef(w, "  %s [%s]: expected %s, got %s\n", palette.Path(s.Path), s.Kind, s.Expected, s.Actual)
	}
}

func writeTable(w io.Writer, result DiffResult) error {
	if result.Matches {
		cliutil.Writef(w, "Candidate matches spec\n")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Path", "Kind", "Expected", "Actual")
	for _, s := range result.Breaks {
		if err := table.Append([]string{s.Path, string(s.Kind), s.Expected, s.Actual}); err != nil {
			return fmt.Errorf("writing table row %s: %w", s.Path, err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	return nil
}
