// Package model defines the data structures shared by the path rewriting pipeline.
package model

// Path represents a file system path.
type Path string

// ImportSpecifier is the quoted module reference found inside one
// import/export/require statement. Start and End are byte offsets of the
// literal (without quotes) within the scanned text.
type ImportSpecifier struct {
	Value string
	Start int
	End   int
	// ESModule is true when the statement is resolved with ES module
	// semantics rather than CommonJS semantics.
	ESModule bool
}
