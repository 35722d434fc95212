package engine

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abrick/brick/internal/rules"
)

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(opts...)
	require.NoError(t, err)
	return e
}

func TestLintSourceFlagsParamCountOnly(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.UsePreset("recommended"))

	src := []byte(`def dispatch(a, b, c, d, e, f, g):
    if a:
        if b:
            if c:
                return 1
    return 0
`)
	result := e.LintSource(context.Background(), src, "dispatch.py")

	require.Len(t, result.Violations, 1)
	v := result.Violations[0]
	assert.Equal(t, "complexity/max-params", v.RuleID)
	assert.Equal(t, rules.Warn, v.Severity)
	assert.Equal(t, 1, result.WarningCount)
	assert.Equal(t, 0, result.ErrorCount)
}

func TestLintSourceIsDeterministic(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.UsePreset("strict"))

	src := []byte(`def BadName(a, b, c, d, e):
    if a and b or c:
        return a
    return b
`)
	first := e.LintSource(context.Background(), src, "x.py")
	second := e.LintSource(context.Background(), src, "x.py")

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLintSourceUnsupportedExtension(t *testing.T) {
	e := newEngine(t)
	result := e.LintSource(context.Background(), []byte("whatever"), "notes.txt")

	require.Len(t, result.Violations, 1)
	assert.Equal(t, ParseFailureRule, result.Violations[0].RuleID)
	assert.Equal(t, rules.Error, result.Violations[0].Severity)
	assert.Equal(t, 1, result.ErrorCount)
}

func TestLintFileUnreadable(t *testing.T) {
	e := newEngine(t)
	result := e.LintFile(context.Background(), filepath.Join(t.TempDir(), "missing.py"))

	require.Len(t, result.Violations, 1)
	assert.Equal(t, ParseFailureRule, result.Violations[0].RuleID)
}

func TestLoadConfigFailureKeepsPreviousSet(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.UsePreset("strict"))
	before := e.Effective()

	err := e.LoadConfig(&rules.FileConfig{
		Rules: map[string]any{"foo/bar": "error"},
	})
	require.Error(t, err)
	require.True(t, rules.IsConfigError(err))

	var ce *rules.ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "foo/bar", ce.Rule)

	// The swap is atomic: the strict set is still the active one.
	assert.Same(t, before, e.Effective())

	cfg, _ := e.Effective().Config("complexity/max-complexity")
	assert.Equal(t, rules.Error, cfg.Severity)
	assert.Equal(t, 8, cfg.Options.Int("max", 0))
}

func TestUsePresetUnknownKeepsPreviousSet(t *testing.T) {
	e := newEngine(t)
	before := e.Effective()

	require.Error(t, e.UsePreset("enterprise"))
	assert.Same(t, before, e.Effective())
}

func TestOverrideRebuildsFromDefaults(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.Override(map[string]any{
		"complexity/max-params": []any{"error", map[string]any{"max": 2}},
	}))

	src := []byte(`def pair(a, b, c):
    return (a, b, c)
`)
	result := e.LintSource(context.Background(), src, "pair.py")

	require.Len(t, result.Violations, 1)
	assert.Equal(t, "complexity/max-params", result.Violations[0].RuleID)
	assert.Equal(t, rules.Error, result.Violations[0].Severity)
}

func TestLoadConfigAppliesIgnorePatterns(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.LoadConfig(&rules.FileConfig{
		IgnorePatterns: []string{"**/generated/**"},
	}))
	assert.Equal(t, []string{"**/generated/**"}, e.IgnorePatterns())
}

func writeFile(t *testing.T, dir, name string, content []byte) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
}

func TestLintDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", []byte("def tiny(x):\n    return x\n"))
	writeFile(t, dir, "b.py", []byte("def wide(a, b, c, d, e, f, g):\n    return a\n"))
	writeFile(t, dir, "broken.py", []byte{0xff, 0xfe, 0x00})
	writeFile(t, dir, "notes.txt", []byte("not source\n"))
	writeFile(t, dir, filepath.Join("node_modules", "dep.js"), []byte("function x(a,b,c,d,e,f,g){return a}\n"))

	e := newEngine(t, WithWorkers(2))
	require.NoError(t, e.UsePreset("recommended"))

	report, err := e.LintDirectory(context.Background(), dir)
	require.NoError(t, err)

	// Unsupported and default-ignored files never enter the report.
	require.Equal(t, 3, report.TotalFiles)
	require.Len(t, report.Results, 3)

	// Stable enumeration order, not completion order.
	assert.Equal(t, filepath.Join(dir, "a.py"), report.Results[0].FilePath)
	assert.Equal(t, filepath.Join(dir, "b.py"), report.Results[1].FilePath)
	assert.Equal(t, filepath.Join(dir, "broken.py"), report.Results[2].FilePath)

	assert.Empty(t, report.Results[0].Violations)
	require.Len(t, report.Results[1].Violations, 1)
	assert.Equal(t, "complexity/max-params", report.Results[1].Violations[0].RuleID)
	require.Len(t, report.Results[2].Violations, 1)
	assert.Equal(t, ParseFailureRule, report.Results[2].Violations[0].RuleID)

	assert.Equal(t, 1, report.TotalErrors)
	assert.Equal(t, 1, report.TotalWarnings)
	assert.Equal(t, 2, report.FilesWithIssues())
}

func TestLintDirectoryTotalsMatchResultSums(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.py", []byte("def f(a, b, c, d, e, f, g):\n    return a\n"))
	writeFile(t, dir, "two.py", []byte("class lower_case:\n    pass\n"))
	writeFile(t, dir, "three.py", []byte("x = 1\n"))

	e := newEngine(t)
	require.NoError(t, e.UsePreset("strict"))

	report, err := e.LintDirectory(context.Background(), dir)
	require.NoError(t, err)

	var errs, warns int
	for _, r := range report.Results {
		errs += r.ErrorCount
		warns += r.WarningCount
	}
	assert.Equal(t, errs, report.TotalErrors)
	assert.Equal(t, warns, report.TotalWarnings)
	assert.Equal(t, len(report.Results), report.TotalFiles)
}

func TestLintDirectoryHonorsConfiguredIgnores(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.py", []byte("x = 1\n"))
	writeFile(t, dir, filepath.Join("generated", "skip.py"), []byte("def g(a,b,c,d,e,f,g):\n    return a\n"))

	e := newEngine(t)
	require.NoError(t, e.LoadConfig(&rules.FileConfig{
		IgnorePatterns: []string{"**/generated/**"},
	}))

	report, err := e.LintDirectory(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, 1, report.TotalFiles)
	assert.Equal(t, filepath.Join(dir, "keep.py"), report.Results[0].FilePath)
}

func TestLintDirectoryCanceledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", []byte("x = 1\n"))
	writeFile(t, dir, "b.py", []byte("y = 2\n"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := newEngine(t)
	report, err := e.LintDirectory(ctx, dir)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report, "completed results are still reported")
	assert.Empty(t, report.Results)
}

func TestBuildReportSkipsEmptySlots(t *testing.T) {
	report := buildReport([]*LintResult{
		{FilePath: "a.py", ErrorCount: 1, Violations: []rules.Violation{{Severity: rules.Error}}},
		nil,
		{FilePath: "b.py"},
	})
	assert.Equal(t, 2, report.TotalFiles)
	assert.Equal(t, 1, report.TotalErrors)
	assert.Equal(t, 1, report.FilesWithIssues())
}
