package main

import "testing"

func TestToJournalKey(t *testing.T) {
	tests := map[string]string{
		"error":     "ERROR",
		"file.path": "FILE_PATH",
		"tab-name2": "TAB_NAME2",
		"élément":   "_L_MENT",
	}
	for in, want := range tests {
		if got := toJournalKey(in); got != want {
			t.Errorf("toJournalKey(%q) = %q, want %q", in, got, want)
		}
	}
}
