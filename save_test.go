package tabtext

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/tabtext/doc"
)

func TestSaveRoundTrip(t *testing.T) {
	in := "# h\n#scalar a b\n1 2\n\n#matrixname m\n#matrix x y\n1\t2\n"
	p := writeFile(t, "rt.tab", in)
	a := doc.NewArena()
	d, err := Load(p, a)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.SetField(d.Elements[1].Fields[1], "3"); err != nil {
		t.Fatal(err)
	}
	if err := Save(p, d, a); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	want := "# h\n#scalar a b\n1 3\n\n#matrixname m\n#matrix x y\n1\t2\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSavePlainText(t *testing.T) {
	p := writeFile(t, "plain.tab", "free text\n\n\n")
	a := doc.NewArena()
	d, err := Load(p, a)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.SetText(d.Text, "edited\n\n"); err != nil {
		t.Fatal(err)
	}
	if err := Save(p, d, a); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(p)
	if string(got) != "edited\n" {
		t.Errorf("got %q", got)
	}
}

func TestSaveMissingStorage(t *testing.T) {
	p := writeFile(t, "keep.tab", "#scalar a\n1\n")
	a := doc.NewArena()
	d, err := Load(p, a)
	if err != nil {
		t.Fatal(err)
	}
	d.Release(a)
	err = Save(p, d, a)
	if !errors.Is(err, doc.ErrInternal) {
		t.Errorf("got %v", err)
	}
	got, _ := os.ReadFile(p)
	if string(got) != "#scalar a\n1\n" {
		t.Errorf("file changed to %q", got)
	}
}

func TestSaveUnwritable(t *testing.T) {
	p := filepath.Join(t.TempDir(), "no", "such", "dir.tab")
	a := doc.NewArena()
	d, err := LoadBytes([]byte("#scalar a\n1\n"), a)
	if err != nil {
		t.Fatal(err)
	}
	log, buf := bufLogger()
	if err := Save(p, d, a, SaveLogger(log)); !errors.Is(err, doc.ErrIO) {
		t.Errorf("got %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "dir.tab") {
		t.Errorf("log %q", out)
	}
}

func TestTouch(t *testing.T) {
	p := filepath.Join(t.TempDir(), "new.tab")
	if err := Touch(p); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(p); err != nil || fi.Size() != 0 {
		t.Fatalf("stat: %v", err)
	}
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Touch(p); err != nil {
		t.Fatal(err)
	}
	if got, _ := os.ReadFile(p); string(got) != "x" {
		t.Errorf("Touch truncated the file: %q", got)
	}
}
