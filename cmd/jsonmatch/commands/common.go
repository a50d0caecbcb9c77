// Package commands provides CLI command handlers for jsonmatch.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/jsonmatch/internal/cliutil"
)

// Output format constants
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

var validFormats = []string{FormatText, FormatJSON, FormatYAML, FormatTable}

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ErrUsage marks errors caused by invalid command-line arguments.
var ErrUsage = errors.New("usage error")

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("%w: invalid format '%s'. Valid formats: %s", ErrUsage, format, strings.Join(validFormats, ", "))
}

// OutputStructured writes data in the specified format (json or yaml) to w.
// Returns an error if marshaling fails.
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	cliutil.Writef(w, "%s\n", strings.TrimRight(string(bytes), "\n"))
	return nil
}

// LoadDocument reads a JSON or YAML document from path, or from stdin when
// path is StdinFilePath. JSON is decoded as YAML, of which it is a subset.
func LoadDocument(path string, stdin io.Reader) (any, error) {
	var data []byte
	var err error
	if path == StdinFilePath {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // G304 - reading user-supplied documents is the point
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", FormatDocumentPath(path), err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", FormatDocumentPath(path), err)
	}
	return doc, nil
}

// FormatDocumentPath returns a display-friendly path for a document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatDocumentPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}
