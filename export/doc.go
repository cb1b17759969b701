// Package export converts the values of a structured document to and from
// YAML and JSON.
//
// The exported form is a list with one entry per document element, blank
// line placeholders included, so that list indices line up with element
// positions. [Import] writes values from such a list back into storage; it
// accepts changes to values only and rejects any change of shape.
package export
