// Package normalize turns raw per-language syntax trees into the
// canonical node graph. The walk is written once against the
// lang.RawNode capability contract; every per-language decision comes
// from the adapter's table.
package normalize

import (
	"fmt"
	"strings"

	"github.com/abrick/brick/internal/lang"
	"github.com/abrick/brick/internal/metrics"
	"github.com/abrick/brick/internal/model"
)

// File normalizes one parsed file into a ParseResult. Syntax errors in
// the raw tree are recorded and the walk continues; the result can hold
// both recovered nodes and a non-empty error list.
func File(root lang.RawNode, adapter *lang.Adapter, src []byte, filePath string) *model.ParseResult {
	result := &model.ParseResult{
		FilePath: filePath,
		Language: adapter.Language(),
		Lines:    metrics.CountLines(src, adapter.Table()),
	}

	w := &walker{tbl: adapter.Table(), result: result}
	for _, child := range root.Children() {
		w.walk(child, nil)
	}
	return result
}

type walker struct {
	tbl    *lang.Table
	result *model.ParseResult
}

func (w *walker) walk(raw lang.RawNode, parent *model.Node) {
	kind := raw.Kind()

	switch kind {
	case lang.KindError, lang.KindMissing:
		w.recordSyntaxError(raw, kind)
		// Recoverable constructs can still live under an error region.
		for _, child := range raw.Children() {
			w.walk(child, parent)
		}
		return
	}

	canonical, mapped := w.tbl.Kinds[kind]
	if !mapped {
		for _, child := range raw.Children() {
			w.walk(child, parent)
		}
		return
	}

	node := w.build(raw, kind, canonical, parent)
	w.attach(node, parent)

	for _, child := range raw.Children() {
		w.walk(child, node)
	}
}

// build creates the canonical node for one mapped construct.
func (w *walker) build(raw lang.RawNode, kind string, canonical model.Kind, parent *model.Node) *model.Node {
	// A method is only a method inside a class; a function declared in
	// a class body is one. Enforced here so the invariant holds for
	// every grammar.
	switch canonical {
	case model.KindMethod:
		if parent == nil || parent.Kind != model.KindClass {
			canonical = model.KindFunction
		}
	case model.KindFunction:
		_, anonymous := w.tbl.AnonymousNames[kind]
		if parent != nil && parent.Kind == model.KindClass && !anonymous {
			canonical = model.KindMethod
		}
	}

	start, end := raw.Span()
	node := &model.Node{
		Kind:      canonical,
		Name:      w.name(raw, kind),
		StartLine: start,
		EndLine:   end,
	}

	switch canonical {
	case model.KindFunction, model.KindMethod:
		node.ParamCount = w.countParams(raw)
		node.Complexity = metrics.Complexity(raw, w.tbl)
	case model.KindImport:
		w.result.Imports = append(w.result.Imports, w.importPath(raw))
	}
	return node
}

func (w *walker) attach(node *model.Node, parent *model.Node) {
	if parent != nil {
		parent.AddChild(node)
		return
	}
	w.result.Nodes = append(w.result.Nodes, node)
}

// name returns the construct's identifier, or the table's anonymous
// placeholder when the grammar defines none.
func (w *walker) name(raw lang.RawNode, kind string) string {
	for _, child := range raw.Children() {
		if w.tbl.NameKinds[child.Kind()] {
			return child.Text()
		}
	}
	if placeholder, ok := w.tbl.AnonymousNames[kind]; ok {
		return placeholder
	}
	return "<anonymous>"
}

// countParams counts direct children of the parameter list, skipping
// ignored names such as Python's self and cls.
func (w *walker) countParams(raw lang.RawNode) int {
	for _, child := range raw.Children() {
		if !w.tbl.ParamListKinds[child.Kind()] {
			continue
		}
		count := 0
		for _, param := range child.Children() {
			if !w.tbl.ParamKinds[param.Kind()] {
				continue
			}
			if w.tbl.IgnoredParams[paramName(param)] {
				continue
			}
			count++
		}
		return count
	}
	return 0
}

// paramName digs out the identifier of a parameter node, which may wrap
// it (typed or defaulted parameters).
func paramName(param lang.RawNode) string {
	if param.Kind() == "identifier" {
		return param.Text()
	}
	for _, child := range param.Children() {
		if child.Kind() == "identifier" {
			return child.Text()
		}
	}
	return ""
}

// importPath extracts the imported module path from an import
// construct, falling back to the statement text.
func (w *walker) importPath(raw lang.RawNode) string {
	for _, child := range raw.Children() {
		if w.tbl.ImportNameKinds[child.Kind()] {
			return strings.Trim(child.Text(), `"'`)
		}
	}
	return strings.TrimSpace(raw.Text())
}

func (w *walker) recordSyntaxError(raw lang.RawNode, kind string) {
	start, end := raw.Span()
	msg := fmt.Sprintf("syntax error near line %d", start)
	if kind == lang.KindMissing {
		msg = fmt.Sprintf("missing token near line %d", start)
	}
	if text := strings.TrimSpace(raw.Text()); text != "" && len(text) <= 40 {
		msg = fmt.Sprintf("%s: %q", msg, text)
	}
	w.result.Errors = append(w.result.Errors, model.SyntaxError{
		Message:   msg,
		StartLine: start,
		EndLine:   end,
	})
}
