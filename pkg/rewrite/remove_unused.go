package rewrite

import (
	"fmt"
	"strings"
)

// RemoveUnused rewrites the file in place to drop the unused identifier.
func (r *realRewriter) RemoveUnused(params RemoveUnusedParams) (RemoveUnusedResult, error) {
	if params.Identifier == "" {
		return RemoveUnusedResult{}, ErrEmptyIdentifier
	}

	exists, err := r.fs.Exists(params.Path)
	if err != nil {
		return RemoveUnusedResult{}, fmt.Errorf("failed to stat %s: %w", params.Path, err)
	}
	if !exists {
		// The checker may report paths that were deleted since the run started
		return RemoveUnusedResult{}, fmt.Errorf("%w: %s", ErrFileNotFound, params.Path)
	}

	data, err := r.fs.ReadFile(params.Path)
	if err != nil {
		return RemoveUnusedResult{}, fmt.Errorf("failed to read %s: %w", params.Path, err)
	}

	before := string(data)
	patterns := newLinePatterns(params.Identifier)

	var builder strings.Builder
	builder.Grow(len(before))
	changed := false

	// SplitAfter keeps line endings, so unmodified lines round-trip byte-for-byte.
	for _, line := range strings.SplitAfter(before, "\n") {
		newLine, keep, lineChanged := patterns.applyToLine(line)
		if lineChanged {
			changed = true
		}
		if keep {
			builder.WriteString(newLine)
		}
	}

	if !changed {
		return RemoveUnusedResult{}, nil
	}

	after := builder.String()
	result := RemoveUnusedResult{Changed: true}

	if params.WantDiff {
		result.Diff = renderDiff(before, after)
	}

	if !params.DryRun {
		if err := r.fs.WriteFileAtomic(params.Path, []byte(after), 0644); err != nil {
			return RemoveUnusedResult{}, fmt.Errorf("failed to write %s: %w", params.Path, err)
		}
	}

	return result, nil
}
