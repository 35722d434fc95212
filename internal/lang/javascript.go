package lang

import (
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/abrick/brick/internal/model"
)

// NewJavaScript returns the adapter for JavaScript and JSX source files.
func NewJavaScript() *Adapter {
	return &Adapter{
		language:   "javascript",
		extensions: []string{".js", ".jsx", ".mjs", ".cjs"},
		grammar:    javascript.GetLanguage(),
		table:      ecmaTable(),
	}
}

// ecmaTable covers the grammar kinds JavaScript and TypeScript share.
// The TypeScript adapter extends it with typed parameter kinds.
func ecmaTable() *Table {
	return &Table{
		Kinds: map[string]model.Kind{
			"function_declaration":           model.KindFunction,
			"function_expression":            model.KindFunction,
			"function":                       model.KindFunction,
			"generator_function_declaration": model.KindFunction,
			"arrow_function":                 model.KindFunction,
			"method_definition":              model.KindMethod,
			"class_declaration":              model.KindClass,
			"variable_declarator":            model.KindVariable,
			"import_statement":               model.KindImport,
		},
		FunctionKinds: map[string]bool{
			"function_declaration":           true,
			"function_expression":            true,
			"function":                       true,
			"generator_function_declaration": true,
			"arrow_function":                 true,
			"method_definition":              true,
		},
		NameKinds: map[string]bool{
			"identifier":          true,
			"property_identifier": true,
			"type_identifier":     true,
		},
		AnonymousNames: map[string]string{
			"arrow_function":      "<arrow>",
			"function_expression": "<anonymous>",
			"function":            "<anonymous>",
		},
		ParamListKinds: map[string]bool{
			"formal_parameters": true,
		},
		ParamKinds: map[string]bool{
			"identifier":         true,
			"assignment_pattern": true,
			"rest_pattern":       true,
			"object_pattern":     true,
			"array_pattern":      true,
		},
		BranchKinds: map[string]bool{
			"if_statement":       true,
			"for_statement":      true,
			"for_in_statement":   true,
			"while_statement":    true,
			"do_statement":       true,
			"switch_case":        true,
			"catch_clause":       true,
			"ternary_expression": true,
		},
		BoolOpKinds: map[string]bool{
			"&&": true,
			"||": true,
			"??": true,
		},
		ImportNameKinds: map[string]bool{
			"string": true,
		},
		LineComment:  []string{"//"},
		BlockComment: [][2]string{{"/*", "*/"}},
	}
}
