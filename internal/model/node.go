package model

// Kind represents the canonical type of a code construct
type Kind string

const (
	KindFunction Kind = "function"
	KindClass    Kind = "class"
	KindMethod   Kind = "method"
	KindVariable Kind = "variable"
	KindImport   Kind = "import"
)

// Node is a language-independent representation of a source construct.
// Nesting is preserved through Children (methods under their class,
// nested functions under the enclosing function). Parent is a lookup-only
// back-reference; Children own the subtree.
type Node struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name"`

	// 1-based inclusive line span.
	StartLine int `json:"start_line"`
	EndLine   int `json:"end_line"`

	// ParamCount and Complexity are set on functions and methods only;
	// complexity is never below 1.
	ParamCount int `json:"param_count,omitempty"`
	Complexity int `json:"complexity,omitempty"`

	Children []*Node `json:"children,omitempty"`

	Parent *Node `json:"-"`
}

// AddChild appends child and sets its parent back-reference.
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Lines returns the number of source lines the node spans.
func (n *Node) Lines() int {
	return n.EndLine - n.StartLine + 1
}

// Walk visits n and every descendant in depth-first order.
// Traversal stops early if fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// IsCallable reports whether the node is a function or method.
func (n *Node) IsCallable() bool {
	return n.Kind == KindFunction || n.Kind == KindMethod
}
