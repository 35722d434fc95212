package lang

import (
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/abrick/brick/internal/model"
)

// NewTypeScript returns the adapter for TypeScript source files.
func NewTypeScript() *Adapter {
	return &Adapter{
		language:   "typescript",
		extensions: []string{".ts"},
		grammar:    typescript.GetLanguage(),
		table:      typescriptTable(),
	}
}

// NewTSX returns the adapter for TSX source files. It shares the
// TypeScript normalization table; only the grammar differs.
func NewTSX() *Adapter {
	return &Adapter{
		language:   "tsx",
		extensions: []string{".tsx"},
		grammar:    tsx.GetLanguage(),
		table:      typescriptTable(),
	}
}

func typescriptTable() *Table {
	t := ecmaTable()

	// TypeScript wraps each parameter in a required/optional node.
	t.ParamKinds["required_parameter"] = true
	t.ParamKinds["optional_parameter"] = true
	t.Kinds["abstract_class_declaration"] = model.KindClass
	return t
}
