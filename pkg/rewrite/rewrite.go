// Package rewrite performs line-oriented removal of unused identifiers from source files.
package rewrite

import (
	"tsfix/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=rewrite.go -destination=mocks/rewrite.gen.go -package=mocks

// Rewriter interface provides removal of unused identifiers from source files.
type Rewriter interface {
	// RemoveUnused rewrites the file in place to drop the unused identifier.
	// The transform is textual and best-effort: only single-line import
	// statements and destructuring declarations are recognized.
	RemoveUnused(params RemoveUnusedParams) (RemoveUnusedResult, error)
}

// RemoveUnusedParams contains parameters for removing an unused identifier.
type RemoveUnusedParams struct {
	// Path is the source file to rewrite.
	Path string
	// Identifier is the unused name to remove.
	Identifier string
	// DryRun computes the rewrite without writing the file.
	DryRun bool
	// WantDiff requests a line diff of the change in the result.
	WantDiff bool
}

// RemoveUnusedResult reports the outcome of a removal.
type RemoveUnusedResult struct {
	// Changed is true if the file content was modified (or would be, in dry-run).
	Changed bool
	// Diff holds a line diff of the change when requested and Changed is true.
	Diff string
}

type realRewriter struct {
	fs fs.FS
}

// NewRewriter creates a new Rewriter instance using the given filesystem.
func NewRewriter(filesystem fs.FS) Rewriter {
	return &realRewriter{
		fs: filesystem,
	}
}
