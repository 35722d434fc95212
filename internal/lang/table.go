package lang

import "github.com/abrick/brick/internal/model"

// Table drives normalization and metrics for one language. It maps the
// grammar's native kinds onto the five canonical kinds and lists the
// kinds that matter for parameter counting, complexity and line
// classification. The normalizer itself is language-agnostic; all
// per-language knowledge lives here.
type Table struct {
	// Kinds maps native construct kinds to canonical kinds.
	Kinds map[string]model.Kind

	// FunctionKinds marks function-like constructs. Complexity counting
	// stops at these boundaries so nested functions stay independent.
	FunctionKinds map[string]bool

	// NameKinds are child kinds usable as a construct's name.
	NameKinds map[string]bool

	// AnonymousNames supplies placeholder names for constructs that
	// carry no identifier, e.g. lambdas and arrow functions.
	AnonymousNames map[string]string

	// ParamListKinds are parameter list containers; ParamKinds are the
	// children inside them that each count as one parameter.
	ParamListKinds map[string]bool
	ParamKinds     map[string]bool

	// IgnoredParams are parameter names excluded from the count,
	// e.g. Python's self and cls.
	IgnoredParams map[string]bool

	// BranchKinds each add one to cyclomatic complexity: conditional
	// branches, case arms, loop headers, exception clauses, ternary
	// expressions and comprehension constructs.
	BranchKinds map[string]bool

	// BoolOpKinds are short-circuit operator token kinds; every
	// occurrence adds one to complexity.
	BoolOpKinds map[string]bool

	// ImportNameKinds are child kinds of an import construct holding
	// the imported module path.
	ImportNameKinds map[string]bool

	// LineComment lists line comment prefixes; BlockComment lists
	// open/close delimiter pairs. Both feed line classification.
	LineComment  []string
	BlockComment [][2]string
}
