package lang

import (
	"github.com/smacker/go-tree-sitter/python"

	"github.com/abrick/brick/internal/model"
)

// NewPython returns the adapter for Python source files.
func NewPython() *Adapter {
	return &Adapter{
		language:   "python",
		extensions: []string{".py", ".pyi"},
		grammar:    python.GetLanguage(),
		table:      pythonTable(),
	}
}

func pythonTable() *Table {
	return &Table{
		Kinds: map[string]model.Kind{
			"function_definition":   model.KindFunction,
			"class_definition":      model.KindClass,
			"lambda":                model.KindFunction,
			"import_statement":      model.KindImport,
			"import_from_statement": model.KindImport,
		},
		FunctionKinds: map[string]bool{
			"function_definition": true,
			"lambda":              true,
		},
		NameKinds: map[string]bool{
			"identifier": true,
		},
		AnonymousNames: map[string]string{
			"lambda": "<lambda>",
		},
		ParamListKinds: map[string]bool{
			"parameters":        true,
			"lambda_parameters": true,
		},
		ParamKinds: map[string]bool{
			"identifier":               true,
			"typed_parameter":          true,
			"default_parameter":        true,
			"typed_default_parameter":  true,
			"list_splat_pattern":       true,
			"dictionary_splat_pattern": true,
		},
		IgnoredParams: map[string]bool{
			"self": true,
			"cls":  true,
		},
		BranchKinds: map[string]bool{
			"if_statement":             true,
			"elif_clause":              true,
			"for_statement":            true,
			"while_statement":          true,
			"except_clause":            true,
			"case_clause":              true,
			"conditional_expression":   true,
			"list_comprehension":       true,
			"set_comprehension":        true,
			"dictionary_comprehension": true,
			"generator_expression":     true,
		},
		BoolOpKinds: map[string]bool{
			"and": true,
			"or":  true,
		},
		ImportNameKinds: map[string]bool{
			"dotted_name":     true,
			"aliased_import":  true,
			"relative_import": true,
		},
		LineComment: []string{"#"},
	}
}
