package parse

import (
	"strings"

	"github.com/signadot/tabtext/doc"
)

// readScalars reads one value per label and appends a Scalar element, or a
// ScalarGroup when there are several labels. It returns the number of
// labels.
func (p *parser) readScalars(line string) (int, error) {
	labels := strings.Fields(line)
	if len(labels) == 0 {
		return 0, internalf(p.tok.Pos, "scalar without labels")
	}
	values := make([]string, len(labels))
	for i, l := range labels {
		v := p.s.Next()
		if v == nil || !v.IsNumber() {
			return 0, internalf(p.s.Pos(), "missing value for %q", l)
		}
		values[i] = v.String()
	}
	fields := make([]doc.Handle, len(labels))
	for i, l := range labels {
		fields[i] = p.r.RenderField(l, values[i])
	}
	p.add(doc.NewScalars(fields...))
	return len(labels), nil
}

// readMatrix reads rows of len(labels) numbers while the next token is a
// number and appends a Matrix element. It returns the number of blank
// lines which follow the block.
func (p *parser) readMatrix(labels []string) (int, error) {
	if len(labels) == 0 {
		return 0, internalf(p.tok.Pos, "matrix without labels")
	}
	var cells [][]string
	for {
		tok := p.s.Peek()
		if tok == nil || !tok.IsNumber() {
			break
		}
		row := make([]string, len(labels))
		for c := range row {
			v := p.s.Next()
			if v == nil || !v.IsNumber() {
				return 0, internalf(p.s.Pos(), "incomplete row %d", len(cells)+1)
			}
			row[c] = v.String()
		}
		cells = append(cells, row)
	}
	t := &doc.Table{
		Columns: labels,
		Rows:    doc.NumberedHeaders(len(cells)),
		Cells:   cells,
	}
	p.add(doc.NewTable(doc.MatrixKind, p.name, p.r.RenderTable(t)))
	if len(cells) == 0 {
		// the label line's break was taken with the line
		return p.s.CountNewlines(), nil
	}
	return p.dataBlanks(), nil
}

// readVectorBlock reads the numbers following a #vectors or #vector line
// and appends a VectorGroup or SingleVector element with one row per
// label. Values fill the rows in order. It returns the number of blank
// lines which follow the block.
func (p *parser) readVectorBlock(kind doc.Kind, labels []string) (int, error) {
	if len(labels) == 0 || (kind == doc.SingleVectorKind && len(labels) != 1) {
		return 0, internalf(p.tok.Pos, "%s with %d labels", kind, len(labels))
	}
	var data []string
	for {
		tok := p.s.Peek()
		if tok == nil || !tok.IsNumber() {
			break
		}
		p.s.Next()
		data = append(data, tok.String())
	}
	if len(data) == 0 || len(data)%len(labels) != 0 {
		return 0, internalf(p.s.Pos(), "%d values for %d labels", len(data), len(labels))
	}
	ncol := len(data) / len(labels)
	cells := make([][]string, len(labels))
	for r := range cells {
		cells[r] = data[r*ncol : (r+1)*ncol]
	}
	t := &doc.Table{
		Columns: doc.NumberedHeaders(ncol),
		Rows:    labels,
		Cells:   cells,
	}
	name := p.name
	if kind == doc.SingleVectorKind {
		name = labels[0]
	}
	p.add(doc.NewTable(kind, name, p.r.RenderTable(t)))
	return p.dataBlanks(), nil
}

// dataBlanks counts the line breaks after a data token. The first one ends
// the data line itself.
func (p *parser) dataBlanks() int {
	n := p.s.CountNewlines()
	if n > 0 {
		n--
	}
	return n
}

func (p *parser) appendBlanks(n int) {
	for range n {
		p.res.Append(doc.NewBlank())
	}
}

func (p *parser) add(e *doc.Element) {
	p.res.Append(e)
	if p.opts.positions != nil {
		p.opts.positions[e] = p.tok.Pos
	}
}
