package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/tabtext/debug"
	"github.com/signadot/tabtext/doc"
	"github.com/signadot/tabtext/token"
)

type EncState struct {
	colors   *Colors
	noBlanks bool
}

// Encode writes d to w, reading values through r.
func Encode(d *doc.Document, r doc.ValueReader, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	buf := bytes.NewBuffer(nil)
	switch d.Mode {
	case doc.PlainText:
		text, ok := r.Text(d.Text)
		if !ok {
			return fmt.Errorf("%w: %w: document text %d", doc.ErrInternal, doc.ErrNoStorage, d.Text)
		}
		buf.WriteString(TrimTrailingNewlines(text))
	case doc.Structured:
		for _, e := range d.Elements {
			if es.noBlanks && e.IsBlank() {
				continue
			}
			if err := EncodeElement(e, r, buf); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("cannot encode %s document", d.Mode)
	}
	if debug.Encode() {
		debug.Logf("encode %s document: %d elements, %d bytes\n", d.Mode, len(d.Elements), buf.Len())
	}
	if es.colors != nil {
		return writeString(w, Highlight(buf.String(), es.colors))
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// EncodeElement writes the canonical lines of one element, each ending in a
// line break.
func EncodeElement(e *doc.Element, r doc.ValueReader, w io.Writer) error {
	switch e.Kind {
	case doc.CommentKind:
		return writeString(w, e.Text+"\n")
	case doc.ScalarKind, doc.ScalarGroupKind:
		labels := make([]string, len(e.Fields))
		values := make([]string, len(e.Fields))
		for i, h := range e.Fields {
			f, ok := r.Field(h)
			if !ok {
				return missing(e, h)
			}
			labels[i], values[i] = f.Label, f.Value
		}
		return writeLines(w,
			keyword(token.Scalar, labels),
			strings.Join(values, " "))
	case doc.MatrixKind, doc.VectorGroupKind, doc.SingleVectorKind:
		t, ok := r.Table(e.Table)
		if !ok {
			return missing(e, e.Table)
		}
		return encodeTable(e, t, w)
	}
	return fmt.Errorf("cannot encode element of kind %s", e.Kind)
}

func encodeTable(e *doc.Element, t *doc.Table, w io.Writer) error {
	var lines []string
	switch e.Kind {
	case doc.MatrixKind:
		if e.Name != "" {
			lines = append(lines, token.MatrixName.Keyword()+" "+e.Name)
		}
		lines = append(lines, keyword(token.Matrix, t.Columns))
	case doc.VectorGroupKind:
		if e.Name != "" {
			lines = append(lines, token.VectorsName.Keyword()+" "+e.Name)
		}
		lines = append(lines, keyword(token.Vectors, t.Rows))
	case doc.SingleVectorKind:
		lines = append(lines, keyword(token.Vector, t.Rows))
	}
	for _, row := range t.Cells {
		lines = append(lines, strings.Join(row, "\t"))
	}
	return writeLines(w, lines...)
}

func keyword(t token.Trigger, labels []string) string {
	b := strings.Builder{}
	b.WriteString(t.Keyword())
	for _, l := range labels {
		b.WriteByte(' ')
		b.WriteString(l)
	}
	return b.String()
}

// TrimTrailingNewlines replaces the run of line breaks ending s with a
// single one.
func TrimTrailingNewlines(s string) string {
	return strings.TrimRight(s, "\r\n") + "\n"
}

// missing reports an element whose storage is gone. Documents only hold
// handles their renderer issued, so this is an internal error.
func missing(e *doc.Element, h doc.Handle) error {
	return fmt.Errorf("%w: %w: %s element %d handle %d", doc.ErrInternal, doc.ErrNoStorage, e.Kind, e.Serial, h)
}

func writeLines(w io.Writer, lines ...string) error {
	for _, ln := range lines {
		if err := writeString(w, ln+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
