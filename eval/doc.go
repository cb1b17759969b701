// Package eval evaluates expressions over the values of a document and
// assigns their results.
//
// Scalars are visible to expressions by label and tables by tab name, as
// two dimensional arrays indexed from 0. Tab names which are not valid
// identifiers are reached through tab("name").
//
//	total = sum(speeds[0]) * scale
//	grid[1][0] = grid[0][0] + 1
package eval
