package rules

import "sort"

// presetEntry is one rule's settings inside a builtin preset.
type presetEntry struct {
	severity Severity
	options  Options
}

// Builtin presets. A preset sets only the rules it lists; absent rules
// keep the registry defaults. The thresholds mirror the builtin rule
// documentation: recommended is balanced, strict turns everything into
// errors with tighter limits, minimal keeps a single complexity gate.
var presets = map[string]map[string]presetEntry{
	"recommended": {
		"complexity/max-complexity":        {Warn, Options{"max": 10}},
		"complexity/max-function-lines":    {Warn, Options{"max": 50}},
		"complexity/max-params":            {Warn, Options{"max": 5}},
		"naming/function-naming":           {Warn, Options{"style": "snake_case"}},
		"naming/class-naming":              {Warn, Options{"style": "PascalCase"}},
		"structure/max-file-lines":         {Warn, Options{"max": 500}},
		"structure/max-classes-per-file":   {Warn, Options{"max": 5}},
		"structure/max-functions-per-file": {Warn, Options{"max": 20}},
	},
	"strict": {
		"complexity/max-complexity":        {Error, Options{"max": 8}},
		"complexity/max-function-lines":    {Error, Options{"max": 30}},
		"complexity/max-params":            {Error, Options{"max": 4}},
		"naming/function-naming":           {Error, Options{"style": "snake_case"}},
		"naming/class-naming":              {Error, Options{"style": "PascalCase"}},
		"structure/max-file-lines":         {Error, Options{"max": 300}},
		"structure/max-classes-per-file":   {Error, Options{"max": 3}},
		"structure/max-functions-per-file": {Error, Options{"max": 10}},
	},
	"minimal": {
		"complexity/max-complexity": {Error, Options{"max": 15}},
	},
}

// PresetNames returns the builtin preset names in lexical order.
func PresetNames() []string {
	out := make([]string, 0, len(presets))
	for name := range presets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// IsPreset reports whether name is a builtin preset.
func IsPreset(name string) bool {
	_, ok := presets[name]
	return ok
}
