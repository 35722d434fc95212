package lang

import (
	"context"
	"fmt"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
)

// RawNode is the fixed capability contract every language adapter
// implements. The normalizer is written once against these four
// capabilities and never inspects a native grammar directly.
//
// Error recovery is expressed through kinds: unparseable regions carry
// the kind "ERROR" and tokens the grammar inserted to recover carry the
// kind "MISSING".
type RawNode interface {
	// Kind returns the native construct kind, e.g. "function_definition".
	Kind() string
	// Children returns all child nodes in source order, including
	// anonymous token nodes such as operators.
	Children() []RawNode
	// Span returns the 1-based inclusive start and end line.
	Span() (start, end int)
	// Text returns the source text covered by the node.
	Text() string
}

// KindError and KindMissing are the synthetic kinds adapters use to
// surface recoverable syntax errors through the capability contract.
const (
	KindError   = "ERROR"
	KindMissing = "MISSING"
)

// sitterNode adapts a tree-sitter node to the capability contract.
type sitterNode struct {
	n   *sitter.Node
	src []byte
}

func (s sitterNode) Kind() string {
	if s.n.IsMissing() {
		return KindMissing
	}
	return s.n.Type()
}

func (s sitterNode) Children() []RawNode {
	count := int(s.n.ChildCount())
	if count == 0 {
		return nil
	}
	out := make([]RawNode, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, sitterNode{n: s.n.Child(i), src: s.src})
	}
	return out
}

func (s sitterNode) Span() (int, int) {
	return int(s.n.StartPoint().Row) + 1, int(s.n.EndPoint().Row) + 1
}

func (s sitterNode) Text() string {
	return s.n.Content(s.src)
}

// Adapter wraps one native grammar behind the capability contract.
// Adapters are safe for concurrent use: every Parse call creates its own
// tree-sitter parser instance.
type Adapter struct {
	language   string
	extensions []string
	table      *Table
	grammar    *sitter.Language
}

// Language returns the canonical language tag, e.g. "python".
func (a *Adapter) Language() string { return a.language }

// Extensions returns the file extensions the adapter handles.
func (a *Adapter) Extensions() []string { return a.extensions }

// Table returns the normalization table for the language.
func (a *Adapter) Table() *Table { return a.table }

// Parse parses src and returns the raw tree root. Grammar-level errors
// do not fail the call; they appear as ERROR and MISSING nodes in the
// returned tree. Parse fails only for input the grammar cannot consume
// at all (invalid UTF-8) or a canceled context.
func (a *Adapter) Parse(ctx context.Context, src []byte) (RawNode, error) {
	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%s: source is not valid UTF-8", a.language)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(a.grammar)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s parse: %w", a.language, err)
	}

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("%s parse: grammar returned no root node", a.language)
	}
	return sitterNode{n: root, src: src}, nil
}
