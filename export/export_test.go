package export

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tabtext/doc"
	"github.com/signadot/tabtext/format"
	"github.com/signadot/tabtext/parse"
)

func load(t *testing.T, in string) (*doc.Document, *doc.Arena) {
	t.Helper()
	a := doc.NewArena()
	d, err := parse.Parse([]byte(in), a)
	if err != nil {
		t.Fatal(err)
	}
	return d, a
}

const sample = "# run\n#scalar a b\n1 +2\n\n#matrixname m\n#matrix x y\n.5 5.\n"

func TestExport(t *testing.T) {
	d, a := load(t, sample)
	got, err := Export(d, a)
	if err != nil {
		t.Fatal(err)
	}
	want := []Element{
		{Kind: doc.CommentKind, Text: "# run"},
		{Kind: doc.ScalarGroupKind, Labels: []string{"a", "b"}, Values: []Number{"1", "+2"}},
		{Kind: doc.CommentKind},
		{
			Kind:    doc.MatrixKind,
			Name:    "m",
			Columns: []string{"x", "y"},
			Rows:    []string{"1"},
			Cells:   [][]Number{{".5", "5."}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("export (-want +got):\n%s", diff)
	}
}

func TestMarshalJSON(t *testing.T) {
	d, a := load(t, sample)
	data, err := Marshal(d, a, format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	var v []map[string]any
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("invalid json %s: %v", data, err)
	}
	if v[1]["kind"] != "scalars" {
		t.Errorf("kind = %v", v[1]["kind"])
	}
	if !strings.Contains(string(data), `"values": [`) || !strings.Contains(string(data), "0.5") {
		t.Errorf("unexpected json:\n%s", data)
	}
}

func TestJSONImport(t *testing.T) {
	d, a := load(t, sample)
	data, err := Marshal(d, a, format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	data = []byte(strings.Replace(string(data), "0.5", "7.25", 1))
	es, err := Unmarshal(data, format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	if err := Import(d, a, es); err != nil {
		t.Fatal(err)
	}
	tab, _ := a.Table(d.Elements[3].Table)
	if diff := cmp.Diff([][]string{{"7.25", "5"}}, tab.Cells); diff != "" {
		t.Errorf("cells (-want +got):\n%s", diff)
	}
	f, _ := a.Field(d.Elements[1].Fields[1])
	if f.Value != "2" {
		t.Errorf("value = %q, want the JSON form", f.Value)
	}
}

func TestYAMLImport(t *testing.T) {
	d, a := load(t, "#scalar a\n3\n#vector v\n1 2\n")
	data, err := Marshal(d, a, format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	es, err := Unmarshal(data, format.YAMLFormat)
	if err != nil {
		t.Fatalf("unmarshal %s: %v", data, err)
	}
	es[0].Values[0] = "4.5"
	if err := Import(d, a, es); err != nil {
		t.Fatal(err)
	}
	if f, _ := a.Field(d.Elements[0].Fields[0]); f.Value != "4.5" {
		t.Errorf("value = %q", f.Value)
	}
}

func TestImportShape(t *testing.T) {
	d, a := load(t, sample)
	tests := []struct {
		name string
		edit func([]Element) []Element
		err  error
	}{
		{"dropped element", func(es []Element) []Element { return es[1:] }, ErrShape},
		{"renamed", func(es []Element) []Element { es[3].Name = "n"; return es }, ErrShape},
		{"relabelled", func(es []Element) []Element { es[1].Labels[0] = "z"; return es }, ErrShape},
		{"extra row", func(es []Element) []Element {
			es[3].Cells = append(es[3].Cells, []Number{"1", "2"})
			return es
		}, ErrShape},
		{"not a number", func(es []Element) []Element { es[1].Values[0] = "x"; return es }, doc.ErrNotNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			es, err := Export(d, a)
			if err != nil {
				t.Fatal(err)
			}
			err = Import(d, a, tt.edit(es))
			if !errors.Is(err, tt.err) {
				t.Errorf("got %v, want %v", err, tt.err)
			}
		})
	}
}

func TestNumberJSON(t *testing.T) {
	for in, want := range map[Number]string{
		"1":    "1",
		"+1":   "1",
		".5":   "0.5",
		"5.":   "5",
		"-2e3": "-2e3",
		"1E+2": "1E+2",
	} {
		if got := in.JSON(); got != want {
			t.Errorf("%q.JSON() = %q, want %q", in, got, want)
		}
	}
	var n Number
	if err := json.Unmarshal([]byte(`"x"`), &n); !errors.Is(err, ErrNotNumber) {
		t.Errorf("got %v", err)
	}
}
