package doc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAppendSerials(t *testing.T) {
	d := New(nil)
	a := d.Append(NewComment("# a"))
	b := d.Append(NewBlank())
	if a.Serial >= b.Serial {
		t.Errorf("serials not increasing: %d, %d", a.Serial, b.Serial)
	}
	other := New(nil)
	if c := other.Append(NewBlank()); c.Serial != 1 {
		t.Errorf("fresh document serial = %d", c.Serial)
	}
	if got := d.DropLast(); got != b {
		t.Errorf("DropLast returned %v", got)
	}
	if len(d.Elements) != 1 {
		t.Errorf("len = %d", len(d.Elements))
	}
}

func TestSharedSequence(t *testing.T) {
	seq := &Sequence{}
	d1 := New(seq)
	d2 := New(seq)
	d1.Append(NewBlank())
	e := d2.Append(NewBlank())
	if e.Serial != 2 || seq.Last() != 2 {
		t.Errorf("shared sequence serial = %d, last = %d", e.Serial, seq.Last())
	}
}

func TestTabs(t *testing.T) {
	d := New(nil)
	d.Append(NewScalars(1))
	d.Append(NewTable(MatrixKind, "", 2))
	d.Append(NewTable(VectorGroupKind, "speeds", 3))
	d.Append(NewTable(SingleVectorKind, "v", 4))
	d.Append(NewTable(MatrixKind, "", 5))
	var got []string
	for _, tab := range d.Tabs() {
		got = append(got, tab.Name)
	}
	want := []string{"1", "speeds", "v", "4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tab names (-want +got):\n%s", diff)
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Kind
		if err := got.UnmarshalText(d); err != nil || got != k {
			t.Errorf("%s: got %s, %v", k, got, err)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("table")); err == nil {
		t.Errorf("expected error")
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("plain")
	if err != nil || m != PlainText {
		t.Errorf("ParseMode(plain) = %s, %v", m, err)
	}
	if _, err := ParseMode("rich"); err == nil {
		t.Errorf("expected error")
	}
}
