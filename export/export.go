package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/signadot/tabtext/doc"
	"github.com/signadot/tabtext/format"
)

var (
	ErrNotNumber = errors.New("not a number")
	ErrShape     = errors.New("shape mismatch")
	ErrMode      = errors.New("document is not structured")
)

// Element is the exported form of a doc.Element.
type Element struct {
	Kind    doc.Kind   `json:"kind" yaml:"kind"`
	Name    string     `json:"name,omitempty" yaml:"name,omitempty"`
	Text    string     `json:"text,omitempty" yaml:"text,omitempty"`
	Labels  []string   `json:"labels,omitempty" yaml:"labels,omitempty"`
	Values  []Number   `json:"values,omitempty" yaml:"values,omitempty"`
	Columns []string   `json:"columns,omitempty" yaml:"columns,omitempty"`
	Rows    []string   `json:"rows,omitempty" yaml:"rows,omitempty"`
	Cells   [][]Number `json:"cells,omitempty" yaml:"cells,omitempty"`
}

// Export reads every element of d through r.
func Export(d *doc.Document, r doc.ValueReader) ([]Element, error) {
	if d.Mode != doc.Structured {
		return nil, ErrMode
	}
	res := make([]Element, 0, len(d.Elements))
	for _, e := range d.Elements {
		x := Element{Kind: e.Kind, Name: e.Name, Text: e.Text}
		switch {
		case e.Kind.IsScalar():
			for _, h := range e.Fields {
				f, ok := r.Field(h)
				if !ok {
					return nil, fmt.Errorf("%w: field %d of element %d", doc.ErrNoStorage, h, e.Serial)
				}
				x.Labels = append(x.Labels, f.Label)
				x.Values = append(x.Values, Number(f.Value))
			}
		case e.Kind.IsTable():
			t, ok := r.Table(e.Table)
			if !ok {
				return nil, fmt.Errorf("%w: table %d of element %d", doc.ErrNoStorage, e.Table, e.Serial)
			}
			x.Columns, x.Rows = t.Columns, t.Rows
			x.Cells = make([][]Number, len(t.Cells))
			for i, row := range t.Cells {
				x.Cells[i] = make([]Number, len(row))
				for j, c := range row {
					x.Cells[i][j] = Number(c)
				}
			}
		}
		res = append(res, x)
	}
	return res, nil
}

// Marshal exports d in YAML or JSON.
func Marshal(d *doc.Document, r doc.ValueReader, f format.Format) ([]byte, error) {
	es, err := Export(d, r)
	if err != nil {
		return nil, err
	}
	switch f {
	case format.JSONFormat:
		res, err := json.MarshalIndent(es, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(res, '\n'), nil
	case format.YAMLFormat:
		return yaml.Marshal(es)
	}
	return nil, fmt.Errorf("%w: cannot export as %s", format.ErrBadFormat, f)
}

// Unmarshal reads elements exported in YAML or JSON.
func Unmarshal(data []byte, f format.Format) ([]Element, error) {
	var es []Element
	switch f {
	case format.JSONFormat:
		if err := json.Unmarshal(data, &es); err != nil {
			return nil, err
		}
	case format.YAMLFormat:
		if err := yaml.Unmarshal(data, &es); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: cannot import %s", format.ErrBadFormat, f)
	}
	return es, nil
}

// Import writes the values of es into the storage behind d. The elements
// must match d in number, kind, names, labels and dimensions.
func Import(d *doc.Document, ed doc.Editor, es []Element) error {
	if d.Mode != doc.Structured {
		return ErrMode
	}
	if len(es) != len(d.Elements) {
		return fmt.Errorf("%w: %d elements, document has %d", ErrShape, len(es), len(d.Elements))
	}
	for i, e := range d.Elements {
		if err := importElement(e, ed, &es[i]); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

func importElement(e *doc.Element, ed doc.Editor, x *Element) error {
	if x.Kind != e.Kind || x.Name != e.Name || x.Text != e.Text {
		return fmt.Errorf("%w: %s %q changed", ErrShape, e.Kind, e.Name+e.Text)
	}
	switch {
	case e.Kind.IsScalar():
		if len(x.Values) != len(e.Fields) || len(x.Labels) != len(e.Fields) {
			return fmt.Errorf("%w: %d values for %d fields", ErrShape, len(x.Values), len(e.Fields))
		}
		for i, h := range e.Fields {
			f, ok := ed.Field(h)
			if !ok {
				return fmt.Errorf("%w: field %d", doc.ErrNoStorage, h)
			}
			if f.Label != x.Labels[i] {
				return fmt.Errorf("%w: label %q changed", ErrShape, f.Label)
			}
			if f.Value == string(x.Values[i]) {
				continue
			}
			if err := ed.SetField(h, string(x.Values[i])); err != nil {
				return err
			}
		}
	case e.Kind.IsTable():
		t, ok := ed.Table(e.Table)
		if !ok {
			return fmt.Errorf("%w: table %d", doc.ErrNoStorage, e.Table)
		}
		if !slices.Equal(t.Columns, x.Columns) || !slices.Equal(t.Rows, x.Rows) || len(x.Cells) != len(t.Cells) {
			return fmt.Errorf("%w: table headers or dimensions changed", ErrShape)
		}
		for r, row := range t.Cells {
			if len(x.Cells[r]) != len(row) {
				return fmt.Errorf("%w: row %d has %d cells, want %d", ErrShape, r, len(x.Cells[r]), len(row))
			}
			for c, v := range row {
				if v == string(x.Cells[r][c]) {
					continue
				}
				if err := ed.SetCell(e.Table, r, c, string(x.Cells[r][c])); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
