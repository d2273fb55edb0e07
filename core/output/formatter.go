package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"asset-pipeline/core/apperror"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Format selects how results are rendered.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat parses the --output flag.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", apperror.Configuration("invalid output format: %s (valid: table, json, yaml)", s)
	}
}

// Formatter writes results in one format.
type Formatter struct {
	Format    Format
	NoHeaders bool
	Writer    io.Writer
}

// NewFormatter returns a formatter writing to stdout.
func NewFormatter(format Format) *Formatter {
	return &Formatter{Format: format, Writer: os.Stdout}
}

// Print writes data as JSON or YAML. Table mode falls back to JSON since arbitrary
// values have no columns.
func (f *Formatter) Print(data any) error {
	if f.Format == FormatYAML {
		return f.printYAML(data)
	}
	return f.printJSON(data)
}

func (f *Formatter) printJSON(data any) error {
	encoder := json.NewEncoder(f.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func (f *Formatter) printYAML(data any) error {
	encoder := yaml.NewEncoder(f.Writer)
	encoder.SetIndent(2)
	defer func() { _ = encoder.Close() }()
	return encoder.Encode(data)
}

// Table is tabular data. Rows shorter than Headers leave the trailing cells empty.
type Table struct {
	Headers []string
	Rows    [][]string
}

// PrintTable renders t. In JSON and YAML mode each row becomes a header-keyed map.
func (f *Formatter) PrintTable(t Table) error {
	if f.Format != FormatTable {
		rows := make([]map[string]string, len(t.Rows))
		for i, row := range t.Rows {
			rows[i] = make(map[string]string, len(t.Headers))
			for j, cell := range row {
				if j < len(t.Headers) {
					rows[i][t.Headers[j]] = cell
				}
			}
		}
		return f.Print(rows)
	}

	table := tablewriter.NewWriter(f.Writer)
	if !f.NoHeaders && len(t.Headers) > 0 {
		table.SetHeader(t.Headers)
	}

	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	table.AppendBulk(t.Rows)
	table.Render()
	return nil
}

// PrintKeyValue writes a single labelled value.
func (f *Formatter) PrintKeyValue(key, value string) error {
	switch f.Format {
	case FormatJSON:
		return f.printJSON(map[string]string{key: value})
	case FormatYAML:
		return f.printYAML(map[string]string{key: value})
	default:
		_, err := fmt.Fprintf(f.Writer, "%s: %s\n", key, value)
		return err
	}
}
