package eval

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/signadot/tabtext/doc"
)

var identRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Env is the evaluation environment of a document.
type Env struct {
	Vars   map[string]any
	Tables map[string][][]float64
}

// NewEnv reads the scalars and tables of d through r. A label used by more
// than one scalar refers to the first.
func NewEnv(d *doc.Document, r doc.ValueReader) (*Env, error) {
	env := &Env{
		Vars:   map[string]any{},
		Tables: map[string][][]float64{},
	}
	for _, e := range d.Scalars() {
		for _, h := range e.Fields {
			f, ok := r.Field(h)
			if !ok {
				return nil, fmt.Errorf("%w: field %d", doc.ErrNoStorage, h)
			}
			if _, dup := env.Vars[f.Label]; dup || !identRE.MatchString(f.Label) {
				continue
			}
			v, err := parseFloat(f.Value)
			if err != nil {
				return nil, fmt.Errorf("scalar %s: %w", f.Label, err)
			}
			env.Vars[f.Label] = v
		}
	}
	for _, tab := range d.Tabs() {
		t, ok := r.Table(tab.Element.Table)
		if !ok {
			return nil, fmt.Errorf("%w: table %q", doc.ErrNoStorage, tab.Name)
		}
		grid, err := floats(t)
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", tab.Name, err)
		}
		if _, dup := env.Tables[tab.Name]; dup {
			continue
		}
		env.Tables[tab.Name] = grid
		if _, taken := env.Vars[tab.Name]; !taken && identRE.MatchString(tab.Name) {
			env.Vars[tab.Name] = grid
		}
	}
	return env, nil
}

func floats(t *doc.Table) ([][]float64, error) {
	res := make([][]float64, len(t.Cells))
	for i, row := range t.Cells {
		res[i] = make([]float64, len(row))
		for j := range row {
			v, err := t.Float(i, j)
			if err != nil {
				return nil, err
			}
			res[i][j] = v
		}
	}
	return res, nil
}

func (env *Env) options() []expr.Option {
	return []expr.Option{
		expr.Env(env.Vars),
		expr.Function("tab", func(params ...any) (any, error) {
			name := params[0].(string)
			t, ok := env.Tables[name]
			if !ok {
				return nil, fmt.Errorf("%w: no tab %q", ErrTarget, name)
			}
			return t, nil
		},
			new(func(string) [][]float64)),
		expr.Function("col", func(params ...any) (any, error) {
			t := params[0].([][]float64)
			c := params[1].(int)
			res := make([]float64, 0, len(t))
			for _, row := range t {
				if c < 0 || c >= len(row) {
					return nil, fmt.Errorf("%w: column %d", doc.ErrRange, c)
				}
				res = append(res, row[c])
			}
			return res, nil
		},
			new(func([][]float64, int) []float64)),
		expr.Function("cells", func(params ...any) (any, error) {
			t := params[0].([][]float64)
			return slices.Concat(t...), nil
		},
			new(func([][]float64) []float64)),
	}
}
