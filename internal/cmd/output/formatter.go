// Package output provides formatters for command output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	md "github.com/nao1215/markdown"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Format types for output.
type Format string

const (
	// FormatTable represents table output format.
	FormatTable Format = "table"
	// FormatJSON represents JSON output format.
	FormatJSON Format = "json"
	// FormatYAML represents YAML output format.
	FormatYAML Format = "yaml"
	// FormatMarkdown represents a markdown table.
	FormatMarkdown Format = "markdown"
)

// Formatter interface for all output types.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// FormatterFunc allows functions to implement Formatter.
type FormatterFunc func(io.Writer, any) error

// Format implements the Formatter interface.
func (f FormatterFunc) Format(w io.Writer, data any) error {
	return f(w, data)
}

// NewFormatter creates appropriate formatter based on format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &TableFormatter{}
	}
}

// IsTabular reports whether format renders Data rather than raw values.
func IsTabular(format Format) bool {
	switch format {
	case FormatTable, FormatMarkdown, "":
		return true
	default:
		return false
	}
}

// JSONFormatter outputs JSON format.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(data)
}

// YAMLFormatter outputs YAML format.
type YAMLFormatter struct{}

// Format outputs data in YAML format.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	yamlData, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(yamlData)
	return err
}

// TableFormatter outputs table format.
type TableFormatter struct{}

// Format outputs Data as a table. Anything else falls back to JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	d, ok := data.(Data)
	if !ok {
		return (&JSONFormatter{Indent: "  "}).Format(w, data)
	}

	config := tablewriter.Config{}
	if len(d.ColumnAlignment) > 0 {
		config.Header.Alignment = tw.CellAlignment{PerColumn: d.ColumnAlignment}
		config.Row.Alignment = tw.CellAlignment{PerColumn: d.ColumnAlignment}
	}
	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))

	if len(d.Headers) > 0 {
		table.Header(toAny(d.Headers)...)
	}
	for _, row := range d.Rows {
		if err := table.Append(toAny(row)...); err != nil {
			return err
		}
	}
	return table.Render()
}

func toAny(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}

// MarkdownFormatter outputs Data as a markdown table.
type MarkdownFormatter struct{}

// Format implements the Formatter interface for markdown output.
func (f *MarkdownFormatter) Format(w io.Writer, data any) error {
	d, ok := data.(Data)
	if !ok {
		return (&JSONFormatter{Indent: "  "}).Format(w, data)
	}
	rows := d.Rows
	if rows == nil {
		rows = [][]string{}
	}
	return md.NewMarkdown(w).
		Table(md.TableSet{Header: d.Headers, Rows: rows}).
		Build()
}

// Data represents data formatted for table output.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []tw.Align // Optional, one entry per column
}

// DetectFormat auto-detects format based on terminal and environment.
func DetectFormat(explicitFormat string) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	// Default to JSON for pipes/redirects
	return FormatJSON
}

// ParseFormat converts string to Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, FormatMarkdown, "":
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, json, yaml, markdown", s)
	}
}

// Write renders raw for json/yaml, or table for the tabular formats.
func Write(w io.Writer, format Format, raw any, table Data) error {
	formatter := NewFormatter(format)
	if IsTabular(format) {
		return formatter.Format(w, table)
	}
	return formatter.Format(w, raw)
}
