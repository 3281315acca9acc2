package diagnostics

// GroupByFile groups diagnostics by file path. The returned slice lists file
// paths in first-seen order so files are processed in the order the checker
// reported them.
func GroupByFile(diags []Diagnostic) ([]string, map[string][]Diagnostic) {
	var files []string
	byFile := make(map[string][]Diagnostic)

	for _, diag := range diags {
		if _, seen := byFile[diag.File]; !seen {
			files = append(files, diag.File)
		}
		byFile[diag.File] = append(byFile[diag.File], diag)
	}

	return files, byFile
}
