package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/jsonmatch/internal/testutil"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{FormatText, FormatJSON, FormatYAML, FormatTable} {
		assert.NoError(t, ValidateOutputFormat(f), f)
	}

	err := ValidateOutputFormat("xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUsage))
	assert.Contains(t, err.Error(), "text, json, yaml, table")
}

func TestOutputStructured(t *testing.T) {
	data := map[string]any{"count": 1}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, data, FormatJSON))
		assert.Equal(t, "{\n  \"count\": 1\n}\n", buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, data, FormatYAML))
		assert.Equal(t, "count: 1\n", buf.String())
	})

	t.Run("invalid", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, OutputStructured(&buf, data, FormatText))
		assert.Empty(t, buf.String())
	})
}

func TestLoadDocument(t *testing.T) {
	t.Run("yaml file", func(t *testing.T) {
		path := testutil.WriteTempYAML(t, testutil.NewAccountDocument())
		doc, err := LoadDocument(path, nil)
		require.NoError(t, err)
		m, ok := doc.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "ada", m["name"])
	})

	t.Run("json file", func(t *testing.T) {
		path := testutil.WriteTempJSON(t, testutil.NewAccountDocument())
		doc, err := LoadDocument(path, nil)
		require.NoError(t, err)
		assert.Equal(t, []any{"admin", "dev"}, doc.(map[string]any)["roles"])
	})

	t.Run("stdin", func(t *testing.T) {
		doc, err := LoadDocument(StdinFilePath, strings.NewReader(`[1, 2]`))
		require.NoError(t, err)
		assert.Equal(t, []any{1, 2}, doc)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDocument("does-not-exist.yaml", nil)
		assert.ErrorContains(t, err, "reading does-not-exist.yaml")
	})

	t.Run("invalid document", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "bad.yaml", []byte("a: [1, 2"))
		_, err := LoadDocument(path, nil)
		assert.ErrorContains(t, err, "decoding")
	})
}

func TestFormatDocumentPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatDocumentPath(StdinFilePath))
	assert.Equal(t, "a.json", FormatDocumentPath("a.json"))
}
