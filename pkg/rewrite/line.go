package rewrite

import (
	"regexp"
	"strings"
)

// emptyImport matches an import whose binding list became empty after removal.
var emptyImport = regexp.MustCompile(`import\s*\{\s*\}\s*from`)

// linePatterns holds the regexes for one identifier, compiled once per file pass.
type linePatterns struct {
	identifier      string
	namedImport     *regexp.Regexp
	defaultImport   *regexp.Regexp
	namespaceImport *regexp.Regexp
	declaration     *regexp.Regexp
	destructuring   *regexp.Regexp
	leadingComma    *regexp.Regexp
	trailingComma   *regexp.Regexp
	bareName        *regexp.Regexp
}

func newLinePatterns(identifier string) *linePatterns {
	quoted := regexp.QuoteMeta(identifier)

	return &linePatterns{
		identifier:      identifier,
		namedImport:     regexp.MustCompile(`import\s*\{[^}]*\b` + quoted + `\b[^}]*\}`),
		defaultImport:   regexp.MustCompile(`import\s+` + quoted + `\s+from`),
		namespaceImport: regexp.MustCompile(`import\s*\*\s*as\s+` + quoted + `\s+from`),
		declaration:     regexp.MustCompile(`^\s*(const|let|var)\s+.*\b` + quoted + `\b`),
		destructuring:   regexp.MustCompile(`const\s*\{\s*[^}]*\b` + quoted + `\b[^}]*\}\s*=`),
		leadingComma:    regexp.MustCompile(`,\s*` + quoted + `\b`),
		trailingComma:   regexp.MustCompile(`\b` + quoted + `\s*,\s*`),
		bareName:        regexp.MustCompile(`\b` + quoted + `\b`),
	}
}

// stripName removes the identifier from a binding list, eating one adjacent
// comma when present.
func (p *linePatterns) stripName(line string) string {
	line = p.leadingComma.ReplaceAllString(line, "")
	line = p.trailingComma.ReplaceAllString(line, "")
	return p.bareName.ReplaceAllString(line, "")
}

// applyToLine rewrites a single source line. It returns the replacement line,
// whether the line should be kept at all, and whether anything changed.
func (p *linePatterns) applyToLine(line string) (newLine string, keep, changed bool) {
	if strings.Contains(line, "import") && strings.Contains(line, p.identifier) {
		switch {
		case p.namedImport.MatchString(line):
			// import { a, X, b } from 'm': strip X, drop the line if the list empties
			stripped := p.stripName(line)
			if emptyImport.MatchString(stripped) {
				return "", false, true
			}
			return stripped, true, true

		case p.defaultImport.MatchString(line):
			// import X from 'm'
			return "", false, true

		case p.namespaceImport.MatchString(line):
			// import * as X from 'm'
			return "", false, true

		default:
			return line, true, false
		}
	}

	if p.declaration.MatchString(line) {
		// Only destructuring declarations are edited; a plain
		// `const X = ...` is matched by the guard but left alone.
		if p.destructuring.MatchString(line) {
			return p.stripName(line), true, true
		}
		return line, true, false
	}

	return line, true, false
}
