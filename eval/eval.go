package eval

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/signadot/tabtext/debug"
	"github.com/signadot/tabtext/doc"
	"github.com/signadot/tabtext/token"
)

var (
	ErrTarget     = errors.New("bad target")
	ErrAmbiguous  = errors.New("ambiguous target")
	ErrNotNumeric = errors.New("result is not a number")
)

// Target is the left hand side of an assignment: a scalar label, or a cell
// of a tab addressed from 0.
type Target struct {
	Name     string
	Cell     bool
	Row, Col int
}

func (t Target) String() string {
	if t.Cell {
		return fmt.Sprintf("%s[%d][%d]", t.Name, t.Row, t.Col)
	}
	return t.Name
}

type Assignment struct {
	Target Target
	Expr   string
}

var cellRE = regexp.MustCompile(`^(.+?)\s*\[\s*(\d+)\s*\]\s*\[\s*(\d+)\s*\]$`)

// ParseAssignment parses "TARGET = EXPR".
func ParseAssignment(s string) (*Assignment, error) {
	lhs, rhs, ok := strings.Cut(s, "=")
	if !ok {
		return nil, fmt.Errorf("%w: expected TARGET = EXPR, got %q", ErrTarget, s)
	}
	lhs, rhs = strings.TrimSpace(lhs), strings.TrimSpace(rhs)
	if lhs == "" || rhs == "" || strings.HasPrefix(rhs, "=") {
		return nil, fmt.Errorf("%w: expected TARGET = EXPR, got %q", ErrTarget, s)
	}
	a := &Assignment{Expr: rhs, Target: Target{Name: lhs}}
	if m := cellRE.FindStringSubmatch(lhs); m != nil {
		r, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: row %q", ErrTarget, m[2])
		}
		c, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, fmt.Errorf("%w: column %q", ErrTarget, m[3])
		}
		a.Target = Target{Name: m[1], Cell: true, Row: r, Col: c}
	} else if strings.ContainsAny(lhs, " \t[]") {
		return nil, fmt.Errorf("%w: %q", ErrTarget, lhs)
	}
	return a, nil
}

// Eval evaluates expression over the values of d.
func Eval(d *doc.Document, r doc.ValueReader, expression string) (any, error) {
	env, err := NewEnv(d, r)
	if err != nil {
		return nil, err
	}
	prg, err := expr.Compile(expression, env.options()...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, env.Vars)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q -> %v\n", expression, res)
	}
	return res, nil
}

// Apply evaluates a's expression and stores the result in its target. It
// returns the stored text.
func Apply(d *doc.Document, ed doc.Editor, a *Assignment) (string, error) {
	res, err := Eval(d, ed, a.Expr)
	if err != nil {
		return "", err
	}
	v, err := NumberText(res)
	if err != nil {
		return "", err
	}
	if a.Target.Cell {
		return v, setCell(d, ed, a.Target, v)
	}
	return v, setScalar(d, ed, a.Target.Name, v)
}

func setScalar(d *doc.Document, ed doc.Editor, label, v string) error {
	var hs []doc.Handle
	for _, e := range d.Scalars() {
		for _, h := range e.Fields {
			f, ok := ed.Field(h)
			if ok && f.Label == label {
				hs = append(hs, h)
			}
		}
	}
	switch len(hs) {
	case 0:
		return fmt.Errorf("%w: no scalar %q", ErrTarget, label)
	case 1:
		return ed.SetField(hs[0], v)
	}
	return fmt.Errorf("%w: %d scalars labelled %q", ErrAmbiguous, len(hs), label)
}

func setCell(d *doc.Document, ed doc.Editor, t Target, v string) error {
	var found []doc.Tab
	for _, tab := range d.Tabs() {
		if tab.Name == t.Name {
			found = append(found, tab)
		}
	}
	switch len(found) {
	case 0:
		return fmt.Errorf("%w: no tab %q", ErrTarget, t.Name)
	case 1:
		return ed.SetCell(found[0].Element.Table, t.Row, t.Col, v)
	}
	return fmt.Errorf("%w: %d tabs named %q", ErrAmbiguous, len(found), t.Name)
}

// NumberText formats a numeric expression result as a value.
func NumberText(v any) (string, error) {
	var s string
	switch x := v.(type) {
	case int:
		s = strconv.Itoa(x)
	case int64:
		s = strconv.FormatInt(x, 10)
	case int32:
		s = strconv.FormatInt(int64(x), 10)
	case uint:
		s = strconv.FormatUint(uint64(x), 10)
	case uint64:
		s = strconv.FormatUint(x, 10)
	case float32:
		s = strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return "", fmt.Errorf("%w: %v", ErrNotNumeric, x)
		}
		s = strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return "", fmt.Errorf("%w: %T %v", ErrNotNumeric, v, v)
	}
	if !token.IsNumber(s) {
		return "", fmt.Errorf("%w: %s", ErrNotNumeric, s)
	}
	return s, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
