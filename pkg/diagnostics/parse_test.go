//go:build unit

package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleDiagnostic(t *testing.T) {
	output := "src/a.ts(10,5): error TS6133: 'foo' is declared but its value is never read.\n"

	diags := Parse(output)
	require.Len(t, diags, 1)
	assert.Equal(t, Diagnostic{
		File:     "src/a.ts",
		Line:     10,
		Col:      5,
		Variable: "foo",
	}, diags[0])
}

func TestParse_PreservesInputOrder(t *testing.T) {
	output := "src/b.tsx(3,1): error TS6133: 'useState' is declared but its value is never read.\n" +
		"src/a.ts(10,5): error TS6133: 'foo' is declared but its value is never read.\n" +
		"src/b.tsx(7,2): error TS6133: 'Props' is declared but its value is never read.\n"

	diags := Parse(output)
	require.Len(t, diags, 3)
	assert.Equal(t, "useState", diags[0].Variable)
	assert.Equal(t, "foo", diags[1].Variable)
	assert.Equal(t, "Props", diags[2].Variable)
}

func TestParse_IgnoresUnrelatedLines(t *testing.T) {
	output := "> project@0.1.0 type-check\n" +
		"> tsc --noEmit\n" +
		"\n" +
		"src/a.ts(1,1): error TS2304: Cannot find name 'bar'.\n" +
		"src/a.ts(10,5): error TS6133: 'foo' is declared but its value is never read.\n" +
		"Found 2 errors.\n"

	diags := Parse(output)
	require.Len(t, diags, 1)
	assert.Equal(t, "foo", diags[0].Variable)
}

func TestParse_EmptyOutput(t *testing.T) {
	assert.Empty(t, Parse(""))
}

func TestGroupByFile_PreservesFirstSeenOrder(t *testing.T) {
	diags := []Diagnostic{
		{File: "src/b.tsx", Line: 3, Col: 1, Variable: "useState"},
		{File: "src/a.ts", Line: 10, Col: 5, Variable: "foo"},
		{File: "src/b.tsx", Line: 7, Col: 2, Variable: "Props"},
	}

	files, byFile := GroupByFile(diags)

	assert.Equal(t, []string{"src/b.tsx", "src/a.ts"}, files)
	require.Len(t, byFile["src/b.tsx"], 2)
	assert.Equal(t, "useState", byFile["src/b.tsx"][0].Variable)
	assert.Equal(t, "Props", byFile["src/b.tsx"][1].Variable)
	require.Len(t, byFile["src/a.ts"], 1)
}

func TestGroupByFile_Empty(t *testing.T) {
	files, byFile := GroupByFile(nil)
	assert.Empty(t, files)
	assert.Empty(t, byFile)
}
