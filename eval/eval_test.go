package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tabtext/doc"
	"github.com/signadot/tabtext/parse"
)

const sample = "#scalar a b\n2 3\n#matrixname g\n#matrix x y\n1 2\n3 4\n#vector v\n5 6\n#matrix z\n9\n"

func load(t *testing.T, in string) (*doc.Document, *doc.Arena) {
	t.Helper()
	a := doc.NewArena()
	d, err := parse.Parse([]byte(in), a)
	if err != nil {
		t.Fatal(err)
	}
	return d, a
}

func TestEval(t *testing.T) {
	d, a := load(t, sample)
	tests := []struct {
		expr string
		want string
	}{
		{"a * b", "6"},
		{"g[1][0] + g[0][1]", "5"},
		{"sum(g[1])", "7"},
		{"sum(col(g, 0))", "4"},
		{`tab("v")[0][1]`, "6"},
		{"v[0][0] / 2", "2.5"},
		{`tab("3")[0][0]`, "9"},
		{"sum(cells(g))", "10"},
	}
	for _, tt := range tests {
		res, err := Eval(d, a, tt.expr)
		if err != nil {
			t.Errorf("%s: %v", tt.expr, err)
			continue
		}
		got, err := NumberText(res)
		if err != nil || got != tt.want {
			t.Errorf("%s = %v (%v), want %s", tt.expr, got, err, tt.want)
		}
	}
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		in   string
		want *Assignment
	}{
		{"a = 1", &Assignment{Target: Target{Name: "a"}, Expr: "1"}},
		{"g[1][0]=a+b", &Assignment{Target: Target{Name: "g", Cell: true, Row: 1, Col: 0}, Expr: "a+b"}},
		{"My Tab [0] [2] = 3", &Assignment{Target: Target{Name: "My Tab", Cell: true, Col: 2}, Expr: "3"}},
	}
	for _, tt := range tests {
		got, err := ParseAssignment(tt.in)
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.in, diff)
		}
	}
	for _, in := range []string{"a", "= 1", "a =", "a == b", "a b = 1", "g[x][1] = 2"} {
		if _, err := ParseAssignment(in); !errors.Is(err, ErrTarget) {
			t.Errorf("%q: got %v", in, err)
		}
	}
}

func TestApply(t *testing.T) {
	d, a := load(t, sample)
	for _, s := range []string{"a = a + b + 0.5", "g[1][0] = g[0][0] * 10"} {
		asg, err := ParseAssignment(s)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := Apply(d, a, asg); err != nil {
			t.Fatalf("%s: %v", s, err)
		}
	}
	if f, _ := a.Field(d.Elements[0].Fields[0]); f.Value != "5.5" {
		t.Errorf("a = %q", f.Value)
	}
	tab, _ := a.Table(d.Elements[1].Table)
	if tab.Cells[1][0] != "10" {
		t.Errorf("g[1][0] = %q", tab.Cells[1][0])
	}
}

func TestApplyErrors(t *testing.T) {
	d, a := load(t, "#scalar a a\n1 2\n#matrix x\n1\n")
	tests := []struct {
		in  string
		err error
	}{
		{"a = 1", ErrAmbiguous},
		{"b = 1", ErrTarget},
		{"nope[0][0] = 1", ErrTarget},
		{"1[3][0] = 1", doc.ErrRange},
		{"1[0][0] = 1 > 0", ErrNotNumeric},
	}
	for _, tt := range tests {
		asg, err := ParseAssignment(tt.in)
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if _, err := Apply(d, a, asg); !errors.Is(err, tt.err) {
			t.Errorf("%q: got %v, want %v", tt.in, err, tt.err)
		}
	}
}
