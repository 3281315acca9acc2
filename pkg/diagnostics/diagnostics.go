// Package diagnostics parses type-checker output into structured records.
package diagnostics

// Diagnostic represents one unused-identifier error reported by the type checker.
type Diagnostic struct {
	// File is the path of the source file, as printed by the checker.
	File string
	// Line is the 1-based line number of the declaration.
	Line int
	// Col is the 1-based column number of the declaration.
	Col int
	// Variable is the name of the identifier that is never read.
	Variable string
}
