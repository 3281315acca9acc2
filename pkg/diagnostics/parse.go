package diagnostics

import (
	"regexp"
	"strconv"
	"strings"
)

// unusedPattern matches TS6133 diagnostics, e.g.
// src/file.tsx(10,5): error TS6133: 'foo' is declared but its value is never read.
var unusedPattern = regexp.MustCompile(
	`^(.*?)\((\d+),(\d+)\): error TS6133: '(.*?)' is declared but its value is never read\.`)

// Parse extracts unused-identifier diagnostics from raw type-checker output.
// Lines that do not match the TS6133 pattern are ignored. Output order
// follows input line order.
func Parse(output string) []Diagnostic {
	var diags []Diagnostic

	for _, line := range strings.Split(output, "\n") {
		match := unusedPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		// \d+ cannot fail Atoi
		lineNum, _ := strconv.Atoi(match[2])
		colNum, _ := strconv.Atoi(match[3])

		diags = append(diags, Diagnostic{
			File:     match[1],
			Line:     lineNum,
			Col:      colNum,
			Variable: match[4],
		})
	}

	return diags
}
