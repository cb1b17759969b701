package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	TabFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

// names holds, per format, its canonical name, its short name and the file
// suffixes it is recognised by. The first suffix is the one written.
var names = []struct {
	f        Format
	name     string
	short    string
	suffixes []string
}{
	{TabFormat, "tab", "t", []string{".tab", ".txt"}},
	{YAMLFormat, "yaml", "y", []string{".yaml", ".yml"}},
	{JSONFormat, "json", "j", []string{".json"}},
}

// Formats lists the known formats.
func Formats() []Format {
	res := make([]Format, len(names))
	for i := range names {
		res[i] = names[i].f
	}
	return res
}

// ParseFormat accepts a format name or its one letter abbreviation.
func ParseFormat(v string) (Format, error) {
	for i := range names {
		if v == names[i].name || v == names[i].short {
			return names[i].f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// ForPath guesses the format of a file from its suffix.
func ForPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return 0, false
	}
	for i := range names {
		for _, s := range names[i].suffixes {
			if ext == s {
				return names[i].f, true
			}
		}
	}
	return 0, false
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	for i := range names {
		if names[i].f == f {
			return []byte(names[i].name), nil
		}
	}
	return nil, fmt.Errorf("<err: %d is not a format>", f)
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsTab() bool  { return f == TabFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the file extension written for f, dot included.
func (f Format) Suffix() string {
	for i := range names {
		if names[i].f == f {
			return names[i].suffixes[0]
		}
	}
	return ""
}
