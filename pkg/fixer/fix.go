package fixer

import (
	"path/filepath"
	"strings"

	"tsfix/pkg/diagnostics"
	"tsfix/pkg/rewrite"
	"tsfix/pkg/typecheck"
)

// Fix runs one full collect-parse-fix cycle and returns a summary.
func (f *realFixer) Fix(opts ...FixOpts) (Summary, error) {
	var opt FixOpts
	if len(opts) > 0 {
		opt = opts[0]
	}

	f.logf("🔍 Getting TypeScript errors...")
	output, err := f.deps.Checker.Run(typecheck.RunParams{
		Command: f.config.Command,
		Args:    f.config.Args,
		WorkDir: f.config.WorkDir,
	})
	if err != nil {
		// A checker that cannot launch reads as "no diagnostics found"
		f.logf("Error running type-check: %v", err)
		output = ""
	}

	f.logf("📋 Parsing unused variable errors...")
	diags := diagnostics.Parse(output)
	f.logf("Found %d unused variables/imports\n", len(diags))

	summary := Summary{Found: len(diags)}

	files, byFile := diagnostics.GroupByFile(diags)
	for _, file := range files {
		f.logf("Fixing %s...", file)
		summary.Fixed += f.fixFile(file, byFile[file], opt)
	}

	return summary, nil
}

// fixFile removes each diagnosed identifier from one file. An edit failure
// logs the file path and skips the rest of that file.
func (f *realFixer) fixFile(file string, diags []diagnostics.Diagnostic, opt FixOpts) int {
	fixed := 0

	for _, diag := range diags {
		result, err := f.deps.Rewriter.RemoveUnused(rewrite.RemoveUnusedParams{
			Path:       f.resolvePath(file),
			Identifier: diag.Variable,
			DryRun:     opt.DryRun,
			WantDiff:   opt.Verbose || opt.DryRun,
		})
		if err != nil {
			f.logf("Error fixing %s: %v", file, err)
			return fixed
		}

		if !result.Changed {
			continue
		}

		fixed++
		f.logf("  ✅ Removed unused: %s", diag.Variable)
		if result.Diff != "" {
			for _, line := range strings.Split(strings.TrimRight(result.Diff, "\n"), "\n") {
				f.logf("     %s", line)
			}
		}
	}

	return fixed
}

// resolvePath resolves a diagnostic file path against the configured work
// directory; the checker reports paths relative to it.
func (f *realFixer) resolvePath(file string) string {
	if filepath.IsAbs(file) || f.config.WorkDir == "" || f.config.WorkDir == "." {
		return file
	}
	return filepath.Join(f.config.WorkDir, file)
}
