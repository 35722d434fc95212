package builtin

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abrick/brick/internal/model"
	"github.com/abrick/brick/internal/rules"
)

// Naming style matchers. snake_case is lowercase words separated by
// underscores; PascalCase capitalizes each word with no separators.
var namingStyles = map[string]*regexp.Regexp{
	"snake_case": regexp.MustCompile(`^[a-z_][a-z0-9_]*$`),
	"camelCase":  regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`),
	"PascalCase": regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`),
}

// FunctionNaming enforces a naming style on functions and methods.
// Python dunder names (__init__ and friends) and anonymous placeholder
// names are exempt.
func FunctionNaming() rules.Descriptor {
	return rules.Descriptor{
		ID:              "naming/function-naming",
		Category:        "naming",
		Targets:         callableTargets,
		DefaultSeverity: rules.Warn,
		DefaultOptions:  rules.Options{"style": "snake_case"},
		Check: func(t rules.Target, opts rules.Options) ([]rules.Violation, error) {
			if isExemptName(t.Node.Name) {
				return nil, nil
			}
			return checkStyle(t.Node, opts.String("style", "snake_case"), "function")
		},
	}
}

// ClassNaming enforces a naming style on classes.
func ClassNaming() rules.Descriptor {
	return rules.Descriptor{
		ID:              "naming/class-naming",
		Category:        "naming",
		Targets:         []model.Kind{model.KindClass},
		DefaultSeverity: rules.Warn,
		DefaultOptions:  rules.Options{"style": "PascalCase"},
		Check: func(t rules.Target, opts rules.Options) ([]rules.Violation, error) {
			return checkStyle(t.Node, opts.String("style", "PascalCase"), "class")
		},
	}
}

func checkStyle(n *model.Node, style, what string) ([]rules.Violation, error) {
	pattern, ok := namingStyles[style]
	if !ok {
		return nil, fmt.Errorf("unknown naming style %q", style)
	}
	if pattern.MatchString(n.Name) {
		return nil, nil
	}
	return []rules.Violation{nodeViolation(n, fmt.Sprintf(
		"%s %q does not match the %s naming style", what, n.Name, style))}, nil
}

// isExemptName reports whether a function name is outside naming
// enforcement: dunder methods and anonymous placeholders like <lambda>.
func isExemptName(name string) bool {
	if strings.HasPrefix(name, "<") {
		return true
	}
	return strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}
