package doc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArenaField(t *testing.T) {
	a := NewArena()
	h := a.RenderField("x", "1")
	f, ok := a.Field(h)
	if !ok || f.Label != "x" || f.Value != "1" {
		t.Fatalf("Field = %v, %t", f, ok)
	}
	if err := a.SetField(h, "2.5"); err != nil {
		t.Fatal(err)
	}
	if f, _ := a.Field(h); f.Value != "2.5" {
		t.Errorf("after SetField: %q", f.Value)
	}
	if err := a.SetField(h, "abc"); !errors.Is(err, ErrNotNumber) {
		t.Errorf("SetField(abc) = %v", err)
	}
	if _, ok := a.Table(h); ok {
		t.Errorf("field handle read as table")
	}
}

func TestArenaTable(t *testing.T) {
	a := NewArena()
	src := &Table{
		Columns: []string{"A", "B"},
		Rows:    NumberedHeaders(2),
		Cells:   [][]string{{"1", "2"}, {"3", "4"}},
	}
	h := a.RenderTable(src)
	src.Cells[0][0] = "99"
	got, ok := a.Table(h)
	if !ok {
		t.Fatal("no table")
	}
	want := &Table{
		Columns: []string{"A", "B"},
		Rows:    []string{"1", "2"},
		Cells:   [][]string{{"1", "2"}, {"3", "4"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table (-want +got):\n%s", diff)
	}
	if err := a.SetCell(h, 1, 0, "-7"); err != nil {
		t.Fatal(err)
	}
	if err := a.SetCell(h, 2, 0, "1"); !errors.Is(err, ErrRange) {
		t.Errorf("SetCell out of range = %v", err)
	}
	v, err := got.Float(1, 1)
	if err != nil || v != 4 {
		t.Errorf("Float = %v, %v", v, err)
	}
	got, _ = a.Table(h)
	if got.Cells[1][0] != "-7" {
		t.Errorf("cell = %q", got.Cells[1][0])
	}
}

func TestArenaRelease(t *testing.T) {
	a := NewArena()
	h1 := a.RenderText("one")
	h2 := a.RenderText("two")
	a.Release(h1)
	a.Release(h1)
	if a.Len() != 1 {
		t.Errorf("Len = %d", a.Len())
	}
	if _, ok := a.Text(h1); ok {
		t.Errorf("released handle still readable")
	}
	h3 := a.RenderText("three")
	if h3 != h1 {
		t.Errorf("free slot not reused: %d", h3)
	}
	if s, _ := a.Text(h2); s != "two" {
		t.Errorf("Text(h2) = %q", s)
	}
	if err := a.SetText(0, "x"); !errors.Is(err, ErrNoStorage) {
		t.Errorf("SetText(0) = %v", err)
	}
}
