package model

// LineStats classifies the lines of a source file.
// Total is always Code + Comment + Blank.
type LineStats struct {
	Total   int `json:"total"`
	Code    int `json:"code"`
	Comment int `json:"comment"`
	Blank   int `json:"blank"`
}

// SyntaxError is a recovered, file-scoped parse error. Normalization
// degrades gracefully: the surrounding nodes are still extracted.
type SyntaxError struct {
	Message   string `json:"message"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
}

// ParseResult is the normalized view of one parsed source file.
// It is created once per parse call and never mutated afterwards, apart
// from the metrics pass writing complexity onto the nodes it owns.
type ParseResult struct {
	FilePath string  `json:"file_path"`
	Language string  `json:"language"`
	Nodes    []*Node `json:"nodes"` // top-level constructs, in source order

	Imports []string  `json:"imports"`
	Lines   LineStats `json:"lines"`

	// Errors holds recovered syntax errors. It can be non-empty even
	// when nodes were extracted.
	Errors []SyntaxError `json:"errors,omitempty"`
}

// WalkNodes visits every node in the result in depth-first source order.
func (r *ParseResult) WalkNodes(fn func(*Node) bool) {
	for _, n := range r.Nodes {
		if !n.Walk(fn) {
			return
		}
	}
}

// NodesOfKind returns all nodes of the given kind, at any depth, in
// depth-first source order.
func (r *ParseResult) NodesOfKind(kinds ...Kind) []*Node {
	var out []*Node
	r.WalkNodes(func(n *Node) bool {
		for _, k := range kinds {
			if n.Kind == k {
				out = append(out, n)
				break
			}
		}
		return true
	})
	return out
}

// Functions returns all function nodes, including nested ones.
func (r *ParseResult) Functions() []*Node {
	return r.NodesOfKind(KindFunction)
}

// Classes returns all class nodes.
func (r *ParseResult) Classes() []*Node {
	return r.NodesOfKind(KindClass)
}

// Methods returns all method nodes.
func (r *ParseResult) Methods() []*Node {
	return r.NodesOfKind(KindMethod)
}

// TopLevelFunctions returns only functions declared at file scope.
func (r *ParseResult) TopLevelFunctions() []*Node {
	var out []*Node
	for _, n := range r.Nodes {
		if n.Kind == KindFunction {
			out = append(out, n)
		}
	}
	return out
}
