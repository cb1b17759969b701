package tabtext

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/signadot/tabtext/doc"
	"github.com/signadot/tabtext/encode"
)

// Save writes d to path, reading values through r. The file is replaced
// atomically: on failure it is left as it was.
func Save(path string, d *doc.Document, r doc.ValueReader, opts ...SaveOption) error {
	o := &saveOpts{perm: 0o644}
	for _, f := range opts {
		f(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(d, r, buf); err != nil {
		if errors.Is(err, doc.ErrInternal) {
			o.logger.Error("element storage missing at save", "path", path, "error", err)
		}
		return err
	}
	perm := fs.FileMode(o.perm)
	if fi, err := os.Stat(path); err == nil {
		perm = fi.Mode().Perm()
	}
	if err := writeAtomic(path, buf.Bytes(), perm); err != nil {
		err = fmt.Errorf("%w: %w", doc.ErrIO, err)
		o.logger.Warn("could not write file", "path", path, "error", err)
		return err
	}
	o.logger.Debug("saved", "path", path, "mode", d.Mode, "bytes", buf.Len())
	return nil
}

func writeAtomic(path string, d []byte, perm fs.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)
	if _, err := f.Write(d); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(perm); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Touch creates an empty file at path unless something already exists
// there.
func Touch(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", doc.ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", doc.ErrIO, err)
	}
	return nil
}
