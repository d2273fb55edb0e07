package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"asset-pipeline/core/apperror"
	"asset-pipeline/core/output"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]output.Format{
		"":      output.FormatTable,
		"TABLE": output.FormatTable,
		"json":  output.FormatJSON,
		"yml":   output.FormatYAML,
		"yaml":  output.FormatYAML,
	} {
		got, err := output.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := output.ParseFormat("xml")
	require.Error(t, err)
	assert.True(t, apperror.IsConfiguration(err))
}

var table = output.Table{
	Headers: []string{"KEY", "FILE"},
	Rows: [][]string{
		{"resources/js/app.js", "assets/app-4ed993c7.js"},
		{"resources/css/app.css", "assets/app-9f8e.css"},
	},
}

func TestPrintTable_Table(t *testing.T) {
	var buf bytes.Buffer
	f := &output.Formatter{Format: output.FormatTable, Writer: &buf}

	require.NoError(t, f.PrintTable(table))

	out := buf.String()
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "assets/app-4ed993c7.js")
	assert.Contains(t, out, "resources/css/app.css")
}

func TestPrintTable_NoHeaders(t *testing.T) {
	var buf bytes.Buffer
	f := &output.Formatter{Format: output.FormatTable, NoHeaders: true, Writer: &buf}

	require.NoError(t, f.PrintTable(table))
	assert.NotContains(t, buf.String(), "FILE")
}

func TestPrintTable_JSON(t *testing.T) {
	var buf bytes.Buffer
	f := &output.Formatter{Format: output.FormatJSON, Writer: &buf}

	require.NoError(t, f.PrintTable(table))

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "assets/app-9f8e.css", rows[1]["FILE"])
}

func TestPrint_YAML(t *testing.T) {
	var buf bytes.Buffer
	f := &output.Formatter{Format: output.FormatYAML, Writer: &buf}

	require.NoError(t, f.Print(map[string]any{"base": "/build/", "publicDir": false}))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "/build/", got["base"])
	assert.Equal(t, false, got["publicDir"])
}

func TestPrintKeyValue(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatTable)
	f.Writer = &buf

	require.NoError(t, f.PrintKeyValue("url", "http://localhost:5173"))
	assert.Equal(t, "url: http://localhost:5173\n", buf.String())
}
