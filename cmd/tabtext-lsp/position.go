package main

import (
	"strings"
	"unicode/utf8"
)

// lineAt returns line n of content without its line break, or "" past the
// end.
func lineAt(content string, n int) string {
	for i := 0; i < n; i++ {
		j := strings.IndexByte(content, '\n')
		if j == -1 {
			return ""
		}
		content = content[j+1:]
	}
	if j := strings.IndexByte(content, '\n'); j != -1 {
		content = content[:j]
	}
	return strings.TrimSuffix(content, "\r")
}

// utf16Len is the length of s in UTF-16 code units, the unit of LSP
// character offsets.
func utf16Len(s string) int {
	n := 0
	for len(s) > 0 {
		r, sz := utf8.DecodeRuneInString(s)
		s = s[sz:]
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// utf16Col converts a byte offset within line to a UTF-16 column.
func utf16Col(line string, off int) int {
	off = min(max(off, 0), len(line))
	return utf16Len(line[:off])
}

// byteCol converts a UTF-16 column within line to a byte offset.
func byteCol(line string, col int) int {
	n := 0
	for i, r := range line {
		if n >= col {
			return i
		}
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return len(line)
}

// tokenEnd returns the byte offset of the end of the whitespace delimited
// token starting at off.
func tokenEnd(line string, off int) int {
	i := min(max(off, 0), len(line))
	for i < len(line) && line[i] != ' ' && line[i] != '\t' {
		i++
	}
	return i
}

// lineCount is the number of lines LSP sees in content.
func lineCount(content string) int {
	n := strings.Count(content, "\n")
	if len(content) > 0 && content[len(content)-1] != '\n' {
		n++
	}
	return n
}
