package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatHuman = "human"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ErrInvalidFormat is returned for an unknown --format value.
var ErrInvalidFormat = errors.New("invalid output format (want human, json or yaml)")

func validateFormat(f string) error {
	switch f {
	case FormatHuman, FormatJSON, FormatYAML:
		return nil
	}
	return &ContextError{Op: "--format", Arg: f, Err: ErrInvalidFormat}
}

// writeJSON encodes v as JSON to w, handling I/O errors at the boundary.
func writeJSON(w io.Writer, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintf(w, "{\"error\":%q}\n", err.Error())
	}
}

// writeYAML encodes v as YAML to w, handling I/O errors at the boundary.
func writeYAML(w io.Writer, v interface{}) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(w, "error: %q\n", err.Error())
		return
	}
	_ = enc.Close()
}

// renderGrid writes a bordered table with a header row and a rule after
// every record. Cells are never wrapped.
func renderGrid(w io.Writer, headers []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetRowLine(true)
	table.AppendBulk(rows)
	table.Render()
}
