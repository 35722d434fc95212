package rules

import (
	"fmt"
	"sort"

	"github.com/abrick/brick/internal/model"
)

// Target is what a rule's check runs against. Node is set for
// node-scoped rules and nil for file-scoped ones; File is always set.
type Target struct {
	File *model.ParseResult
	Node *model.Node
}

// CheckFunc evaluates one target. It returns zero or more violations,
// or a structured failure. A failure is isolated to the rule/file pair:
// the evaluator converts it into one synthetic error violation instead
// of unwinding the pass.
type CheckFunc func(t Target, opts Options) ([]Violation, error)

// Descriptor declares one configurable rule.
type Descriptor struct {
	// ID is the namespaced rule id, e.g. "complexity/max-complexity".
	ID string
	// Category groups related rules: complexity, naming, structure.
	Category string
	// Targets lists the node kinds the rule scans. Empty means the rule
	// is file-scoped and runs once per parse result.
	Targets []model.Kind

	DefaultSeverity Severity
	DefaultOptions  Options

	Check CheckFunc
}

// Registry holds the known rules. It is owned by the engine instance
// and threaded through calls explicitly; there is no process-wide
// registry.
type Registry struct {
	rules map[string]Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Descriptor)}
}

// Register adds a rule. Registering a duplicate id fails.
func (r *Registry) Register(d Descriptor) error {
	if d.ID == "" {
		return fmt.Errorf("rule id must not be empty")
	}
	if d.Check == nil {
		return fmt.Errorf("rule %s: check function must not be nil", d.ID)
	}
	if _, exists := r.rules[d.ID]; exists {
		return fmt.Errorf("rule %s is already registered", d.ID)
	}
	r.rules[d.ID] = d
	return nil
}

// MustRegister registers a slice of rules and panics on failure. Used
// for the builtin set at engine construction, where a duplicate is a
// programming error.
func (r *Registry) MustRegister(descriptors ...Descriptor) {
	for _, d := range descriptors {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
}

// Get returns the descriptor for id.
func (r *Registry) Get(id string) (Descriptor, bool) {
	d, ok := r.rules[id]
	return d, ok
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.rules[id]
	return ok
}

// IDs returns all registered rule ids in lexical order.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.rules))
	for id := range r.rules {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.rules)
}
