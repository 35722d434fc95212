package builtin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abrick/brick/internal/model"
	"github.com/abrick/brick/internal/rules"
	"github.com/abrick/brick/internal/rules/builtin"
)

func builtinRegistry(t *testing.T) *rules.Registry {
	t.Helper()
	reg := rules.NewRegistry()
	reg.MustRegister(builtin.All()...)
	return reg
}

func resolve(t *testing.T, reg *rules.Registry, layers ...rules.Layer) *rules.EffectiveRuleSet {
	t.Helper()
	set, err := rules.NewResolver(reg, nil).Resolve(layers)
	require.NoError(t, err)
	return set
}

func TestManyParamsLowComplexityFlagsOnlyParams(t *testing.T) {
	reg := builtinRegistry(t)
	set := resolve(t, reg, rules.PresetLayer{Name: "recommended"})

	pr := &model.ParseResult{
		FilePath: "handlers.py",
		Language: "python",
		Nodes: []*model.Node{{
			Kind:       model.KindFunction,
			Name:       "dispatch_request",
			StartLine:  1,
			EndLine:    12,
			ParamCount: 7,
			Complexity: 4,
		}},
		Lines: model.LineStats{Total: 12, Code: 12},
	}

	violations := rules.Evaluate(reg, set, pr)
	require.Len(t, violations, 1)
	assert.Equal(t, "complexity/max-params", violations[0].RuleID)
	assert.Equal(t, rules.Warn, violations[0].Severity)
	assert.Equal(t, "dispatch_request", violations[0].NodeName)
}

func TestLongFileWithoutDeclarationsIsClean(t *testing.T) {
	reg := builtinRegistry(t)
	set := resolve(t, reg, rules.PresetLayer{Name: "recommended"})

	pr := &model.ParseResult{
		FilePath: "data.py",
		Language: "python",
		Lines:    model.LineStats{Total: 200, Code: 180, Blank: 20},
	}

	violations := rules.Evaluate(reg, set, pr)
	assert.Empty(t, violations)
}

func TestMaxComplexityBoundary(t *testing.T) {
	reg := builtinRegistry(t)
	set := resolve(t, reg, rules.PresetLayer{Name: "recommended"})

	atLimit := &model.ParseResult{
		FilePath: "a.py",
		Nodes: []*model.Node{{
			Kind: model.KindFunction, Name: "route", StartLine: 1, EndLine: 20, Complexity: 10,
		}},
		Lines: model.LineStats{Total: 20},
	}
	assert.Empty(t, rules.Evaluate(reg, set, atLimit))

	overLimit := &model.ParseResult{
		FilePath: "a.py",
		Nodes: []*model.Node{{
			Kind: model.KindFunction, Name: "route", StartLine: 1, EndLine: 20, Complexity: 11,
		}},
		Lines: model.LineStats{Total: 20},
	}
	violations := rules.Evaluate(reg, set, overLimit)
	require.Len(t, violations, 1)
	assert.Equal(t, "complexity/max-complexity", violations[0].RuleID)
	assert.Contains(t, violations[0].Message, "complexity of 11")
}

func TestFunctionNamingStylesAndExemptions(t *testing.T) {
	reg := builtinRegistry(t)
	set := resolve(t, reg, rules.PresetLayer{Name: "recommended"})

	pr := &model.ParseResult{
		FilePath: "shapes.py",
		Nodes: []*model.Node{
			{Kind: model.KindFunction, Name: "computeArea", StartLine: 1, EndLine: 2},
			{Kind: model.KindFunction, Name: "compute_area", StartLine: 4, EndLine: 5},
			{Kind: model.KindFunction, Name: "__init__", StartLine: 7, EndLine: 8},
			{Kind: model.KindFunction, Name: "<lambda>", StartLine: 10, EndLine: 10},
		},
		Lines: model.LineStats{Total: 10},
	}

	violations := rules.Evaluate(reg, set, pr)
	require.Len(t, violations, 1)
	assert.Equal(t, "naming/function-naming", violations[0].RuleID)
	assert.Equal(t, "computeArea", violations[0].NodeName)
	assert.Contains(t, violations[0].Message, "snake_case")
}

func TestClassNaming(t *testing.T) {
	reg := builtinRegistry(t)
	set := resolve(t, reg, rules.PresetLayer{Name: "recommended"})

	pr := &model.ParseResult{
		FilePath: "models.py",
		Nodes: []*model.Node{
			{Kind: model.KindClass, Name: "user_account", StartLine: 1, EndLine: 5},
			{Kind: model.KindClass, Name: "UserAccount", StartLine: 7, EndLine: 11},
		},
		Lines: model.LineStats{Total: 11},
	}

	violations := rules.Evaluate(reg, set, pr)
	require.Len(t, violations, 1)
	assert.Equal(t, "naming/class-naming", violations[0].RuleID)
	assert.Equal(t, "user_account", violations[0].NodeName)
}

func TestUnknownNamingStyleBecomesSyntheticError(t *testing.T) {
	reg := builtinRegistry(t)
	set := resolve(t, reg, rules.OverrideLayer{Rules: map[string]any{
		"naming/function-naming": []any{"warn", map[string]any{"style": "SCREAMING_SNAKE"}},
	}})

	pr := &model.ParseResult{
		FilePath: "a.py",
		Nodes:    []*model.Node{{Kind: model.KindFunction, Name: "run", StartLine: 3, EndLine: 4}},
		Lines:    model.LineStats{Total: 4},
	}

	var naming []rules.Violation
	for _, v := range rules.Evaluate(reg, set, pr) {
		if v.RuleID == "naming/function-naming" {
			naming = append(naming, v)
		}
	}
	require.Len(t, naming, 1)
	assert.Equal(t, rules.Error, naming[0].Severity)
	assert.Contains(t, naming[0].Message, "unknown naming style")
}

func TestMaxFunctionsPerFileCountsNestedButNotMethods(t *testing.T) {
	reg := builtinRegistry(t)
	set := resolve(t, reg, rules.OverrideLayer{Rules: map[string]any{
		"structure/max-functions-per-file": []any{"error", map[string]any{"max": 2}},
	}})

	class := &model.Node{Kind: model.KindClass, Name: "Service", StartLine: 1, EndLine: 10}
	class.AddChild(&model.Node{Kind: model.KindMethod, Name: "start", StartLine: 2, EndLine: 4})
	class.AddChild(&model.Node{Kind: model.KindMethod, Name: "stop", StartLine: 5, EndLine: 7})

	outer := &model.Node{Kind: model.KindFunction, Name: "outer", StartLine: 12, EndLine: 18}
	outer.AddChild(&model.Node{Kind: model.KindFunction, Name: "inner", StartLine: 13, EndLine: 15})

	pr := &model.ParseResult{
		FilePath: "svc.py",
		Nodes: []*model.Node{
			class,
			outer,
			{Kind: model.KindFunction, Name: "helper", StartLine: 20, EndLine: 22},
		},
		Lines: model.LineStats{Total: 22},
	}

	var structural []rules.Violation
	for _, v := range rules.Evaluate(reg, set, pr) {
		if v.RuleID == "structure/max-functions-per-file" {
			structural = append(structural, v)
		}
	}
	require.Len(t, structural, 1)
	assert.Contains(t, structural[0].Message, "declares 3 functions")
	assert.Equal(t, rules.Error, structural[0].Severity)
}

func TestMaxFileLines(t *testing.T) {
	reg := builtinRegistry(t)
	set := resolve(t, reg, rules.PresetLayer{Name: "strict"})

	pr := &model.ParseResult{
		FilePath: "big.py",
		Lines:    model.LineStats{Total: 301, Code: 301},
	}

	violations := rules.Evaluate(reg, set, pr)
	require.Len(t, violations, 1)
	assert.Equal(t, "structure/max-file-lines", violations[0].RuleID)
	assert.Equal(t, 1, violations[0].StartLine)
	assert.Equal(t, 301, violations[0].EndLine)
}
