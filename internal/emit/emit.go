// Package emit renders generated tables as constant data in a target
// language. It only sees a table's name, shape, values and per-entry text.
package emit

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"

	"github.com/hailam/bbtables/internal/tables"
)

// Format selects the target syntax.
type Format int

const (
	CPP Format = iota
	Go
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("emit: unknown format")

// ParseFormat parses "cpp" or "go".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "cpp", "c++", "h", "hpp":
		return CPP, nil
	case "go":
		return Go, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) String() string {
	if f == Go {
		return "go"
	}
	return "cpp"
}

// Options control emission.
type Options struct {
	// Package is the Go package name, or the C++ namespace.
	Package string
	// Comments adds each entry's description as a trailing comment.
	Comments bool
	// Source is written into the header comment.
	Source string
}

// Table is the view of a generated table the emitter consumes.
type Table interface {
	Values() []uint64
	Describe(i int) string
}

// Write renders every table to w.
func Write(w io.Writer, f Format, named []*tables.Named, opts Options) error {
	data := fileData{Package: opts.Package, Source: opts.Source}
	if data.Package == "" {
		data.Package = "tables"
	}
	if data.Source == "" {
		data.Source = "bbtables"
	}
	for _, n := range named {
		data.Tables = append(data.Tables, newTableData(n.Name, n.Doc, n.Shape, n, opts.Comments))
	}

	var buf bytes.Buffer
	tmpl := cppTemplate
	if f == Go {
		tmpl = goTemplate
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("emit %s: %w", f, err)
	}

	out := buf.Bytes()
	if f == Go {
		formatted, err := format.Source(out)
		if err != nil {
			return fmt.Errorf("format go source: %w", err)
		}
		out = formatted
	}
	_, err := w.Write(out)
	return err
}

type fileData struct {
	Package string
	Source  string
	Tables  []tableData
}

type tableData struct {
	Name   string
	Doc    string
	Nested bool
	Rows   [][]entryData
}

type entryData struct {
	Value   string
	Comment string
}

func newTableData(name, doc string, shape tables.Shape, t Table, comments bool) tableData {
	td := tableData{Name: name, Doc: doc, Nested: shape == tables.Nested}
	vals := t.Values()
	rowLen := len(vals)
	if td.Nested {
		rowLen = 64
	}
	for start := 0; start < len(vals); start += rowLen {
		row := make([]entryData, 0, rowLen)
		for i := start; i < start+rowLen; i++ {
			e := entryData{Value: fmt.Sprintf("0x%016x", vals[i])}
			if comments {
				e.Comment = t.Describe(i)
			}
			row = append(row, e)
		}
		td.Rows = append(td.Rows, row)
	}
	return td
}

var cppTemplate = template.Must(template.New("cpp").Parse(`// Code generated by {{.Source}}. DO NOT EDIT.
#pragma once

#include <array>
#include <cstdint>

namespace {{.Package}} {
{{range .Tables}}
// {{.Doc}}
{{- if .Nested}}
constexpr std::array<std::array<uint64_t, 64>, 64> s{{.Name}} = {{"{{"}}
{{- range .Rows}}
  {{"{{"}}
{{- range .}}
    {{.Value}},{{if .Comment}} // {{.Comment}}{{end}}
{{- end}}
  }},
{{- end}}
}};
{{- else}}
constexpr std::array<uint64_t, 64> s{{.Name}} = {{"{{"}}
{{- range .Rows}}{{range .}}
  {{.Value}},{{if .Comment}} // {{.Comment}}{{end}}
{{- end}}{{end}}
}};
{{- end}}
{{end}}
}  // namespace {{.Package}}
`))

var goTemplate = template.Must(template.New("go").Parse(`// Code generated by {{.Source}}. DO NOT EDIT.

package {{.Package}}
{{range .Tables}}
// {{.Name}}: {{.Doc}}
{{- if .Nested}}
var {{.Name}} = [64][64]uint64{
{{- range .Rows}}
	{
{{- range .}}
		{{.Value}},{{if .Comment}} // {{.Comment}}{{end}}
{{- end}}
	},
{{- end}}
}
{{- else}}
var {{.Name}} = [64]uint64{
{{- range .Rows}}{{range .}}
	{{.Value}},{{if .Comment}} // {{.Comment}}{{end}}
{{- end}}{{end}}
}
{{- end}}
{{end}}`))
