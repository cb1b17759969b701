package tabtext

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/tabtext/doc"
	"github.com/signadot/tabtext/encode"
	"github.com/signadot/tabtext/parse"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

// bufLogger logs everything at DEBUG and above into the returned buffer.
func bufLogger() (*slog.Logger, *bytes.Buffer) {
	buf := bytes.NewBuffer(nil)
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestLoadStructured(t *testing.T) {
	p := writeFile(t, "ok.tab", "#scalar A\n1\n")
	a := doc.NewArena()
	d, err := Load(p, a)
	if err != nil {
		t.Fatal(err)
	}
	if d.Mode != doc.Structured || !d.Valid || d.Fallback != nil {
		t.Fatalf("mode %s valid %t fallback %v", d.Mode, d.Valid, d.Fallback)
	}
	if len(d.Elements) != 1 || d.Elements[0].Kind != doc.ScalarKind {
		t.Errorf("elements %v", d.Elements)
	}
}

func TestLoadFallback(t *testing.T) {
	in := "#vectors A B\n1 2 3\n\n"
	p := writeFile(t, "bad.tab", in)
	a := doc.NewArena()
	d, err := Load(p, a)
	if err != nil {
		t.Fatal(err)
	}
	if d.Mode != doc.PlainText || d.Valid {
		t.Fatalf("mode %s valid %t", d.Mode, d.Valid)
	}
	if !errors.Is(d.Fallback, parse.ErrNotDivisible) {
		t.Errorf("fallback = %v", d.Fallback)
	}
	if text, _ := a.Text(d.Text); text != in {
		t.Errorf("text = %q", text)
	}
	if got := encode.MustString(d, a); got != "#vectors A B\n1 2 3\n" {
		t.Errorf("encoded = %q", got)
	}
}

func TestLoadPlainRequested(t *testing.T) {
	a := doc.NewArena()
	d, err := LoadBytes([]byte("#scalar A\n1\n"), a, WithMode(doc.PlainText))
	if err != nil {
		t.Fatal(err)
	}
	if d.Mode != doc.PlainText || !d.Valid || d.Fallback != nil {
		t.Errorf("mode %s valid %t fallback %v", d.Mode, d.Valid, d.Fallback)
	}
}

func TestLoadMissing(t *testing.T) {
	log, buf := bufLogger()
	_, err := Load(filepath.Join(t.TempDir(), "nope.tab"), doc.NewArena(), WithLogger(log))
	if !errors.Is(err, doc.ErrIO) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "nope.tab") {
		t.Errorf("log %q", out)
	}
}

func TestIsStructurallyValid(t *testing.T) {
	ok, err := IsStructurallyValid(writeFile(t, "a.tab", "#matrix A\n1\n"))
	if err != nil || !ok {
		t.Errorf("valid file: %t, %v", ok, err)
	}
	ok, err = IsStructurallyValid(writeFile(t, "b.tab", "hello\n"))
	if err != nil || ok {
		t.Errorf("invalid file: %t, %v", ok, err)
	}
}

func TestLoadIdempotent(t *testing.T) {
	p := writeFile(t, "x.tab", "# h\n#scalar a b\n1 2\n\n#vectors v w\n1 2 3 4\n")
	a := doc.NewArena()
	d1, err := Load(p, a)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := Load(p, a)
	if err != nil {
		t.Fatal(err)
	}
	if s1, s2 := encode.MustString(d1, a), encode.MustString(d2, a); s1 != s2 {
		t.Errorf("loads differ:\n%q\n%q", s1, s2)
	}
}
