package rules

import "fmt"

// Severity is the ESLint-style rule level. The ordering Off < Warn <
// Error is meaningful: presets are compared under it.
type Severity int

const (
	Off Severity = iota
	Warn
	Error
)

// String returns the canonical severity token.
func (s Severity) String() string {
	switch s {
	case Off:
		return "off"
	case Warn:
		return "warn"
	case Error:
		return "error"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// ParseSeverity normalizes a severity token from a decoded config value.
// Accepted forms: "off"/"warn"/"error", "0"/"1"/"2", and the integer
// forms 0/1/2. Anything else fails with a ConfigError.
func ParseSeverity(value any) (Severity, error) {
	switch v := value.(type) {
	case string:
		switch v {
		case "off", "0":
			return Off, nil
		case "warn", "1":
			return Warn, nil
		case "error", "2":
			return Error, nil
		}
	case int:
		return severityFromInt(v)
	case int64:
		return severityFromInt(int(v))
	case float64:
		if v == float64(int(v)) {
			return severityFromInt(int(v))
		}
	case Severity:
		if v >= Off && v <= Error {
			return v, nil
		}
	}
	return Off, configErrorf("invalid severity token %v", value)
}

func severityFromInt(v int) (Severity, error) {
	if v < int(Off) || v > int(Error) {
		return Off, configErrorf("invalid severity value %d", v)
	}
	return Severity(v), nil
}
