package metrics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abrick/brick/internal/lang"
	"github.com/abrick/brick/internal/metrics"
)

// functionNodes collects every function-like raw node in depth-first
// order, descending into nested functions too.
func functionNodes(n lang.RawNode, tbl *lang.Table) []lang.RawNode {
	var out []lang.RawNode
	if tbl.FunctionKinds[n.Kind()] {
		out = append(out, n)
	}
	for _, child := range n.Children() {
		out = append(out, functionNodes(child, tbl)...)
	}
	return out
}

func parsePython(t *testing.T, src string) (lang.RawNode, *lang.Table) {
	t.Helper()
	a := lang.NewPython()
	root, err := a.Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	return root, a.Table()
}

func parseJavaScript(t *testing.T, src string) (lang.RawNode, *lang.Table) {
	t.Helper()
	a := lang.NewJavaScript()
	root, err := a.Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	return root, a.Table()
}

func TestComplexityStraightLineIsOne(t *testing.T) {
	root, tbl := parsePython(t, `def add(a, b):
    return a + b
`)
	fns := functionNodes(root, tbl)
	require.Len(t, fns, 1)
	assert.Equal(t, 1, metrics.Complexity(fns[0], tbl))
}

func TestComplexityCountsBranchesAndElif(t *testing.T) {
	root, tbl := parsePython(t, `def sign(value):
    if value > 0:
        return 1
    elif value < 0:
        return -1
    return 0
`)
	fns := functionNodes(root, tbl)
	require.Len(t, fns, 1)
	// if and elif each count; the implicit fallthrough does not.
	assert.Equal(t, 3, metrics.Complexity(fns[0], tbl))
}

func TestComplexityCountsLoopsAndExceptClauses(t *testing.T) {
	root, tbl := parsePython(t, `def drain(queue):
    total = 0
    while queue:
        for item in queue.pop():
            try:
                total += item
            except TypeError:
                pass
    return total
`)
	fns := functionNodes(root, tbl)
	require.Len(t, fns, 1)
	// while, for, except: 1 + 3.
	assert.Equal(t, 4, metrics.Complexity(fns[0], tbl))
}

func TestComplexityCountsBooleanOperators(t *testing.T) {
	root, tbl := parsePython(t, `def allowed(user, resource):
    if user.active and user.verified or resource.public:
        return True
    return False
`)
	fns := functionNodes(root, tbl)
	require.Len(t, fns, 1)
	// if, and, or: 1 + 3.
	assert.Equal(t, 4, metrics.Complexity(fns[0], tbl))
}

func TestComplexityNestedFunctionsCountIndependently(t *testing.T) {
	root, tbl := parsePython(t, `def outer(x):
    if x:
        x -= 1

    def inner(y):
        if y or y > 1:
            return y
        return 0

    return inner
`)
	fns := functionNodes(root, tbl)
	require.Len(t, fns, 2)

	// outer sees only its own if; inner's branches stay out.
	assert.Equal(t, 2, metrics.Complexity(fns[0], tbl))
	// inner: if plus or.
	assert.Equal(t, 3, metrics.Complexity(fns[1], tbl))
}

func TestComplexityIsMonotonicInBranches(t *testing.T) {
	base, tbl := parsePython(t, `def check(a, b):
    if a:
        return 1
    return 0
`)
	grown, _ := parsePython(t, `def check(a, b):
    if a:
        return 1
    if b:
        return 2
    return 0
`)
	baseFns := functionNodes(base, tbl)
	grownFns := functionNodes(grown, tbl)
	require.Len(t, baseFns, 1)
	require.Len(t, grownFns, 1)
	assert.Greater(t, metrics.Complexity(grownFns[0], tbl), metrics.Complexity(baseFns[0], tbl))
}

func TestComplexityJavaScriptTernaryAndShortCircuit(t *testing.T) {
	root, tbl := parseJavaScript(t, `function choose(a, b) {
  return a > 0 ? a : b || 0;
}
`)
	fns := functionNodes(root, tbl)
	require.Len(t, fns, 1)
	// ternary and ||: 1 + 2.
	assert.Equal(t, 3, metrics.Complexity(fns[0], tbl))
}

func TestComplexityComprehensionsCountOnceEach(t *testing.T) {
	root, tbl := parsePython(t, `def squares(values):
    return [v * v for v in values]
`)
	fns := functionNodes(root, tbl)
	require.Len(t, fns, 1)
	assert.Equal(t, 2, metrics.Complexity(fns[0], tbl))
}

func TestCountLinesPython(t *testing.T) {
	tbl := lang.NewPython().Table()
	src := `# module docstring substitute

def f():
    pass  # trailing comments do not make a comment line
`
	stats := metrics.CountLines([]byte(src), tbl)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Code)
	assert.Equal(t, 1, stats.Comment)
	assert.Equal(t, 1, stats.Blank)
	assert.Equal(t, stats.Total, stats.Code+stats.Comment+stats.Blank)
}

func TestCountLinesJavaScriptBlockComments(t *testing.T) {
	tbl := lang.NewJavaScript().Table()
	src := `/* header
   continues here */
const x = 1;

// closing note
`
	stats := metrics.CountLines([]byte(src), tbl)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 1, stats.Code)
	assert.Equal(t, 3, stats.Comment)
	assert.Equal(t, 1, stats.Blank)
}

func TestCountLinesBlockCommentClosedOnSameLineWithCode(t *testing.T) {
	tbl := lang.NewJavaScript().Table()
	stats := metrics.CountLines([]byte("/* note */ const x = 1;\n"), tbl)
	assert.Equal(t, 1, stats.Code)
	assert.Equal(t, 0, stats.Comment)
}

func TestCountLinesEmptyInput(t *testing.T) {
	tbl := lang.NewPython().Table()
	stats := metrics.CountLines(nil, tbl)
	assert.Equal(t, 0, stats.Total)
}

func TestCountLinesNoTrailingNewline(t *testing.T) {
	tbl := lang.NewPython().Table()
	stats := metrics.CountLines([]byte("x = 1"), tbl)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Code)
}
