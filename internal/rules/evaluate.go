package rules

import (
	"fmt"
	"sort"

	"github.com/abrick/brick/internal/model"
)

// Evaluate runs every rule that is active in the given effective set
// against one parse result. The set is the caller's snapshot for the
// run; configuration changes after the snapshot never affect results.
//
// A rule whose check fails (error or panic) contributes exactly one
// synthetic error violation for this file and never disturbs the other
// rules. Violations come back ordered by ascending start line, ties
// broken by lexical rule id.
func Evaluate(registry *Registry, set *EffectiveRuleSet, pr *model.ParseResult) []Violation {
	var violations []Violation

	for _, id := range registry.IDs() {
		cfg, ok := set.Config(id)
		if !ok || cfg.Severity == Off {
			continue
		}
		d, _ := registry.Get(id)
		violations = append(violations, runRule(d, cfg, pr)...)
	}

	SortViolations(violations)
	return violations
}

func runRule(d Descriptor, cfg RuleConfig, pr *model.ParseResult) []Violation {
	var out []Violation

	collect := func(t Target) bool {
		found, err := checkTarget(d, t, cfg.Options)
		if err != nil {
			out = append(out, Violation{
				RuleID:    d.ID,
				Severity:  Error,
				Message:   fmt.Sprintf("rule evaluation failed: %v", err),
				StartLine: 1,
				EndLine:   1,
			})
			return false
		}
		for i := range found {
			found[i].RuleID = d.ID
			found[i].Severity = cfg.Severity
		}
		out = append(out, found...)
		return true
	}

	if len(d.Targets) == 0 {
		collect(Target{File: pr})
		return out
	}

	pr.WalkNodes(func(n *model.Node) bool {
		for _, kind := range d.Targets {
			if n.Kind == kind {
				// A failing check stops this rule for the file but
				// never the other rules.
				return collect(Target{File: pr, Node: n})
			}
		}
		return true
	})
	return out
}

// checkTarget invokes the rule's check with panic isolation.
func checkTarget(d Descriptor, t Target, opts Options) (violations []Violation, err error) {
	defer func() {
		if r := recover(); r != nil {
			violations = nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return d.Check(t, opts)
}

// SortViolations orders violations by ascending start line, ties broken
// by lexical rule id. The order is part of the engine's contract:
// identical inputs produce byte-identical violation lists.
func SortViolations(violations []Violation) {
	sort.SliceStable(violations, func(i, j int) bool {
		if violations[i].StartLine != violations[j].StartLine {
			return violations[i].StartLine < violations[j].StartLine
		}
		return violations[i].RuleID < violations[j].RuleID
	})
}
