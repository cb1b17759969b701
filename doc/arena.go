package doc

import (
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/signadot/tabtext/token"
)

// Handle refers to storage owned by a Renderer. The zero Handle refers to
// nothing.
type Handle uint32

// Field is a labelled scalar value.
type Field struct {
	Label string
	Value string
}

// Table is a grid of values with a header per column and per row.
type Table struct {
	Columns []string
	Rows    []string
	Cells   [][]string
}

func (t *Table) Dims() (rows, cols int) {
	return len(t.Rows), len(t.Columns)
}

// Float returns cell (r, c) as a float64.
func (t *Table) Float(r, c int) (float64, error) {
	if r < 0 || r >= len(t.Cells) || c < 0 || c >= len(t.Cells[r]) {
		return 0, fmt.Errorf("%w: cell (%d, %d)", ErrRange, r, c)
	}
	return strconv.ParseFloat(t.Cells[r][c], 64)
}

func (t *Table) Clone() *Table {
	res := &Table{
		Columns: slices.Clone(t.Columns),
		Rows:    slices.Clone(t.Rows),
	}
	if t.Cells != nil {
		res.Cells = make([][]string, len(t.Cells))
		for i, row := range t.Cells {
			res.Cells[i] = slices.Clone(row)
		}
	}
	return res
}

// NumberedHeaders returns "1", "2", ... "n".
func NumberedHeaders(n int) []string {
	res := make([]string, n)
	for i := range res {
		res[i] = strconv.Itoa(i + 1)
	}
	return res
}

// Renderer creates the storage behind document elements.
type Renderer interface {
	RenderField(label, value string) Handle
	RenderTable(t *Table) Handle
	RenderText(text string) Handle
}

// ValueReader reads storage back. The boolean result is false when the
// handle does not refer to storage of the requested shape.
type ValueReader interface {
	Field(h Handle) (*Field, bool)
	Table(h Handle) (*Table, bool)
	Text(h Handle) (string, bool)
}

// Editor changes values in place. Values must be numbers.
type Editor interface {
	ValueReader
	SetField(h Handle, value string) error
	SetCell(h Handle, r, c int, value string) error
}

type Releaser interface {
	Release(h Handle)
}

// Store is the full set of storage operations.
type Store interface {
	Renderer
	Editor
	Releaser
	SetText(h Handle, text string) error
}

type slotKind int

const (
	freeSlot slotKind = iota
	fieldSlot
	tableSlot
	textSlot
)

type slot struct {
	kind  slotKind
	field Field
	table *Table
	text  string
}

// Arena is an in-memory Store. It is safe for concurrent use.
type Arena struct {
	mu    sync.RWMutex
	slots []slot
	free  []Handle
}

func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) alloc(s slot) Handle {
	a.mu.Lock()
	defer a.mu.Unlock()
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[h-1] = s
		return h
	}
	a.slots = append(a.slots, s)
	return Handle(len(a.slots))
}

func (a *Arena) get(h Handle, k slotKind) (*slot, bool) {
	if h == 0 || int(h) > len(a.slots) {
		return nil, false
	}
	s := &a.slots[h-1]
	if s.kind != k {
		return nil, false
	}
	return s, true
}

func (a *Arena) RenderField(label, value string) Handle {
	return a.alloc(slot{kind: fieldSlot, field: Field{Label: label, Value: value}})
}

// RenderTable stores a copy of t.
func (a *Arena) RenderTable(t *Table) Handle {
	return a.alloc(slot{kind: tableSlot, table: t.Clone()})
}

func (a *Arena) RenderText(text string) Handle {
	return a.alloc(slot{kind: textSlot, text: text})
}

func (a *Arena) Field(h Handle) (*Field, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s, ok := a.get(h, fieldSlot)
	if !ok {
		return nil, false
	}
	f := s.field
	return &f, true
}

// Table returns a copy of the stored table.
func (a *Arena) Table(h Handle) (*Table, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s, ok := a.get(h, tableSlot)
	if !ok {
		return nil, false
	}
	return s.table.Clone(), true
}

func (a *Arena) Text(h Handle) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s, ok := a.get(h, textSlot)
	if !ok {
		return "", false
	}
	return s.text, true
}

func (a *Arena) SetField(h Handle, value string) error {
	if !token.IsNumber(value) {
		return fmt.Errorf("%w: %q", ErrNotNumber, value)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	s, ok := a.get(h, fieldSlot)
	if !ok {
		return fmt.Errorf("%w: field %d", ErrNoStorage, h)
	}
	s.field.Value = value
	return nil
}

func (a *Arena) SetCell(h Handle, r, c int, value string) error {
	if !token.IsNumber(value) {
		return fmt.Errorf("%w: %q", ErrNotNumber, value)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	s, ok := a.get(h, tableSlot)
	if !ok {
		return fmt.Errorf("%w: table %d", ErrNoStorage, h)
	}
	t := s.table
	if r < 0 || r >= len(t.Cells) || c < 0 || c >= len(t.Cells[r]) {
		return fmt.Errorf("%w: cell (%d, %d) of %dx%d table", ErrRange, r, c, len(t.Rows), len(t.Columns))
	}
	t.Cells[r][c] = value
	return nil
}

func (a *Arena) SetText(h Handle, text string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	s, ok := a.get(h, textSlot)
	if !ok {
		return fmt.Errorf("%w: text %d", ErrNoStorage, h)
	}
	s.text = text
	return nil
}

// Release frees the storage behind h. Releasing an unknown handle is a
// no-op.
func (a *Arena) Release(h Handle) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if h == 0 || int(h) > len(a.slots) || a.slots[h-1].kind == freeSlot {
		return
	}
	a.slots[h-1] = slot{}
	a.free = append(a.free, h)
}

// Len returns the number of live handles.
func (a *Arena) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.slots) - len(a.free)
}
