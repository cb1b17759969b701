// Package format names the output formats of the tabtext tools: tabtext
// itself, and YAML or JSON views of a document's values.
package format
