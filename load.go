package tabtext

import (
	"fmt"
	"os"

	"github.com/signadot/tabtext/debug"
	"github.com/signadot/tabtext/doc"
	"github.com/signadot/tabtext/parse"
)

// Load reads the file at path into a document whose values are stored in
// r.
func Load(path string, r doc.Renderer, opts ...LoadOption) (*doc.Document, error) {
	d, err := ReadBuffer(path)
	if err != nil {
		getLoadOpts(opts).logger.Warn("could not read file", "path", path, "error", err)
		return nil, err
	}
	return LoadBytes(d, r, opts...)
}

// LoadBytes is Load for a buffer already in memory.
func LoadBytes(d []byte, r doc.Renderer, opts ...LoadOption) (*doc.Document, error) {
	o := getLoadOpts(opts)
	verr := parse.Validate(d)
	if debug.Load() {
		debug.Logf("load %d bytes mode=%s valid=%t\n", len(d), o.mode, verr == nil)
	}
	if verr == nil && o.mode == doc.Structured {
		pOpts := []parse.ParseOption{parse.ParseSequence(o.seq)}
		if o.positions != nil {
			pOpts = append(pOpts, parse.ParsePositions(o.positions))
		}
		res, err := parse.Parse(d, r, pOpts...)
		if err != nil {
			o.logger.Error("validated file failed to assemble", "error", err)
			return nil, err
		}
		o.logger.Debug("loaded structured", "elements", len(res.Elements))
		return res, nil
	}
	res := doc.New(o.seq)
	res.Mode = doc.PlainText
	res.Valid = verr == nil
	if o.mode == doc.Structured {
		res.Fallback = verr
		o.logger.Debug("loaded as plain text", "reason", verr)
	}
	res.Text = r.RenderText(string(d))
	return res, nil
}

// IsStructurallyValid reports whether the file at path would load in
// structured mode.
func IsStructurallyValid(path string) (bool, error) {
	d, err := ReadBuffer(path)
	if err != nil {
		return false, err
	}
	return parse.IsValid(d), nil
}

// ReadBuffer reads the whole file at path.
func ReadBuffer(path string) ([]byte, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", doc.ErrIO, err)
	}
	return d, nil
}
