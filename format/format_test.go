package format

import "testing"

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"t": TabFormat, "tab": TabFormat,
		"y": YAMLFormat, "yaml": YAMLFormat,
		"j": JSONFormat, "json": JSONFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %s, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Errorf("expected error")
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range Formats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil || g != f {
			t.Errorf("%s: got %s, %v", d, g, err)
		}
	}
	if _, err := Format(9).MarshalText(); err == nil {
		t.Errorf("expected error for unknown format")
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"out.json", JSONFormat, true},
		{"dir/out.YML", YAMLFormat, true},
		{"a.yaml", YAMLFormat, true},
		{"a.tab", TabFormat, true},
		{"a.csv", 0, false},
		{"noext", 0, false},
	}
	for _, tt := range tests {
		got, ok := ForPath(tt.path)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ForPath(%q) = %s, %t", tt.path, got, ok)
		}
	}
	for _, f := range Formats() {
		if got, ok := ForPath("x" + f.Suffix()); !ok || got != f {
			t.Errorf("%s suffix %q maps to %s", f, f.Suffix(), got)
		}
	}
}
