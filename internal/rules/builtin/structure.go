package builtin

import (
	"fmt"

	"github.com/abrick/brick/internal/rules"
)

// MaxFileLines limits the total line count of a file.
func MaxFileLines() rules.Descriptor {
	return rules.Descriptor{
		ID:              "structure/max-file-lines",
		Category:        "structure",
		DefaultSeverity: rules.Warn,
		DefaultOptions:  rules.Options{"max": 500},
		Check: func(t rules.Target, opts rules.Options) ([]rules.Violation, error) {
			max := opts.Int("max", 500)
			total := t.File.Lines.Total
			if total <= max {
				return nil, nil
			}
			return []rules.Violation{fileViolation(total, fmt.Sprintf(
				"file has %d lines (maximum allowed is %d)", total, max))}, nil
		},
	}
}

// MaxClassesPerFile limits how many classes a file declares.
func MaxClassesPerFile() rules.Descriptor {
	return rules.Descriptor{
		ID:              "structure/max-classes-per-file",
		Category:        "structure",
		DefaultSeverity: rules.Warn,
		DefaultOptions:  rules.Options{"max": 5},
		Check: func(t rules.Target, opts rules.Options) ([]rules.Violation, error) {
			max := opts.Int("max", 5)
			count := len(t.File.Classes())
			if count <= max {
				return nil, nil
			}
			return []rules.Violation{fileViolation(t.File.Lines.Total, fmt.Sprintf(
				"file declares %d classes (maximum allowed is %d)", count, max))}, nil
		},
	}
}

// MaxFunctionsPerFile limits how many functions a file declares.
// Methods do not count; nested functions do.
func MaxFunctionsPerFile() rules.Descriptor {
	return rules.Descriptor{
		ID:              "structure/max-functions-per-file",
		Category:        "structure",
		DefaultSeverity: rules.Warn,
		DefaultOptions:  rules.Options{"max": 20},
		Check: func(t rules.Target, opts rules.Options) ([]rules.Violation, error) {
			max := opts.Int("max", 20)
			count := len(t.File.Functions())
			if count <= max {
				return nil, nil
			}
			return []rules.Violation{fileViolation(t.File.Lines.Total, fmt.Sprintf(
				"file declares %d functions (maximum allowed is %d)", count, max))}, nil
		},
	}
}

// fileViolation anchors a file-scoped violation at the whole file.
func fileViolation(totalLines int, message string) rules.Violation {
	if totalLines < 1 {
		totalLines = 1
	}
	return rules.Violation{
		Message:   message,
		StartLine: 1,
		EndLine:   totalLines,
	}
}

// All returns every builtin rule descriptor.
func All() []rules.Descriptor {
	return []rules.Descriptor{
		MaxComplexity(),
		MaxFunctionLines(),
		MaxParams(),
		FunctionNaming(),
		ClassNaming(),
		MaxFileLines(),
		MaxClassesPerFile(),
		MaxFunctionsPerFile(),
	}
}
