// Package libdiff computes line diffs between two renderings of a file,
// such as a file on disk and its canonical form.
package libdiff
