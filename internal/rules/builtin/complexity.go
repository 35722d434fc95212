// Package builtin provides the builtin rule set: complexity, naming and
// structure checks over the canonical node graph.
package builtin

import (
	"fmt"

	"github.com/abrick/brick/internal/model"
	"github.com/abrick/brick/internal/rules"
)

var callableTargets = []model.Kind{model.KindFunction, model.KindMethod}

// MaxComplexity limits the cyclomatic complexity of functions and
// methods.
func MaxComplexity() rules.Descriptor {
	return rules.Descriptor{
		ID:              "complexity/max-complexity",
		Category:        "complexity",
		Targets:         callableTargets,
		DefaultSeverity: rules.Warn,
		DefaultOptions:  rules.Options{"max": 10},
		Check: func(t rules.Target, opts rules.Options) ([]rules.Violation, error) {
			max := opts.Int("max", 10)
			if t.Node.Complexity <= max {
				return nil, nil
			}
			return []rules.Violation{nodeViolation(t.Node, fmt.Sprintf(
				"function %q has a cyclomatic complexity of %d (maximum allowed is %d)",
				t.Node.Name, t.Node.Complexity, max))}, nil
		},
	}
}

// MaxFunctionLines limits the line count of functions and methods.
func MaxFunctionLines() rules.Descriptor {
	return rules.Descriptor{
		ID:              "complexity/max-function-lines",
		Category:        "complexity",
		Targets:         callableTargets,
		DefaultSeverity: rules.Warn,
		DefaultOptions:  rules.Options{"max": 50},
		Check: func(t rules.Target, opts rules.Options) ([]rules.Violation, error) {
			max := opts.Int("max", 50)
			lines := t.Node.Lines()
			if lines <= max {
				return nil, nil
			}
			return []rules.Violation{nodeViolation(t.Node, fmt.Sprintf(
				"function %q spans %d lines (maximum allowed is %d)",
				t.Node.Name, lines, max))}, nil
		},
	}
}

// MaxParams limits the parameter count of functions and methods.
// Receiver-style parameters (Python's self and cls) are already
// excluded from the count during normalization.
func MaxParams() rules.Descriptor {
	return rules.Descriptor{
		ID:              "complexity/max-params",
		Category:        "complexity",
		Targets:         callableTargets,
		DefaultSeverity: rules.Warn,
		DefaultOptions:  rules.Options{"max": 5},
		Check: func(t rules.Target, opts rules.Options) ([]rules.Violation, error) {
			max := opts.Int("max", 5)
			if t.Node.ParamCount <= max {
				return nil, nil
			}
			return []rules.Violation{nodeViolation(t.Node, fmt.Sprintf(
				"function %q takes %d parameters (maximum allowed is %d)",
				t.Node.Name, t.Node.ParamCount, max))}, nil
		},
	}
}

// nodeViolation builds a violation anchored at a node. The evaluator
// fills in rule id and effective severity.
func nodeViolation(n *model.Node, message string) rules.Violation {
	return rules.Violation{
		Message:   message,
		StartLine: n.StartLine,
		EndLine:   n.EndLine,
		NodeName:  n.Name,
		NodeKind:  n.Kind,
		Node:      n,
	}
}
