package rules

import "github.com/abrick/brick/internal/model"

// Violation is one rule breach tied to a location range. Severity is
// snapshotted from the effective rule set at evaluation time; later
// configuration changes never alter an already produced violation.
type Violation struct {
	RuleID    string   `json:"rule_id"`
	Severity  Severity `json:"severity"`
	Message   string   `json:"message"`
	StartLine int      `json:"start_line"`
	EndLine   int      `json:"end_line"`

	NodeName string     `json:"node_name,omitempty"`
	NodeKind model.Kind `json:"node_kind,omitempty"`

	// Node points at the offending canonical node when the rule is
	// node-scoped. Lookup only; not serialized.
	Node *model.Node `json:"-"`
}

// Options is a rule's option mapping as decoded from configuration.
type Options map[string]any

// Int returns the integer option for key, or def when absent or not a
// number. Decoded YAML/JSON numbers arrive as int or float64.
func (o Options) Int(key string, def int) int {
	switch v := o[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

// String returns the string option for key, or def when absent.
func (o Options) String(key, def string) string {
	if v, ok := o[key].(string); ok {
		return v
	}
	return def
}

// merged returns a copy of o with overlay's keys applied on top.
func (o Options) merged(overlay Options) Options {
	if len(overlay) == 0 {
		return o
	}
	out := make(Options, len(o)+len(overlay))
	for k, v := range o {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}
