package rules

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ConfigError is the fatal outcome of a configuration-load operation:
// an unknown rule id, an invalid severity token, an unknown preset or a
// circular extends chain. The previously active effective rule set, if
// any, stays untouched when one is returned.
type ConfigError struct {
	// Rule is the offending rule id, when the error concerns one.
	Rule string
	// Cycle names the extends chain that loops back on itself.
	Cycle []string

	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// RuleConfig is one rule's resolved severity and options.
type RuleConfig struct {
	Severity Severity `json:"severity"`
	Options  Options  `json:"options,omitempty"`
}

// FileConfig is the generic structure a configuration loader decodes a
// rules file into. The resolver consumes this, never raw file text.
type FileConfig struct {
	// Extends lists preset names or config file paths, merged in order
	// before Rules applies.
	Extends []string `koanf:"extends" json:"extends,omitempty"`
	// Rules maps rule id to a severity token or a [severity, options]
	// pair, ESLint style.
	Rules map[string]any `koanf:"rules" json:"rules,omitempty"`
	// IgnorePatterns are glob patterns excluded from directory linting.
	IgnorePatterns []string `koanf:"ignorePatterns" json:"ignorePatterns,omitempty"`
}

// EffectiveRuleSet is the fully resolved severity/options mapping for
// one lint run: every registered rule id maps to exactly one RuleConfig.
// It is immutable once built; configuration changes build a replacement
// wholesale.
type EffectiveRuleSet struct {
	configs map[string]RuleConfig
}

// Config returns the resolved configuration for a rule id.
func (s *EffectiveRuleSet) Config(id string) (RuleConfig, bool) {
	c, ok := s.configs[id]
	return c, ok
}

// IDs returns every covered rule id in lexical order.
func (s *EffectiveRuleSet) IDs() []string {
	out := make([]string, 0, len(s.configs))
	for id := range s.configs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// ActiveIDs returns the ids whose severity is not off, in lexical order.
func (s *EffectiveRuleSet) ActiveIDs() []string {
	var out []string
	for _, id := range s.IDs() {
		if s.configs[id].Severity != Off {
			out = append(out, id)
		}
	}
	return out
}

// Layer is one step of the configuration stack. Layers are merged in
// order with documented last-wins precedence per rule id.
type Layer interface {
	isLayer()
}

// PresetLayer applies one builtin preset by name.
type PresetLayer struct {
	Name string
}

// ExtendsLayer resolves preset names or config file paths depth-first
// in listed order.
type ExtendsLayer struct {
	Refs []string
}

// OverrideLayer applies explicit rule settings, e.g. a config file's
// rules mapping or runtime overrides.
type OverrideLayer struct {
	Rules map[string]any
}

func (PresetLayer) isLayer()   {}
func (ExtendsLayer) isLayer()  {}
func (OverrideLayer) isLayer() {}

// LoadFunc resolves an extends reference that is not a builtin preset
// name, typically by decoding a config file from disk.
type LoadFunc func(ref string) (*FileConfig, error)

// Resolver builds effective rule sets against one registry.
type Resolver struct {
	registry *Registry
	load     LoadFunc
}

// NewResolver returns a resolver for the given registry. load may be
// nil when extends references are limited to builtin preset names.
func NewResolver(registry *Registry, load LoadFunc) *Resolver {
	return &Resolver{registry: registry, load: load}
}

// Resolve merges the ordered layers over the registry defaults into one
// effective rule set. For any rule touched by multiple layers the last
// layer processed wins; resolving the same sequence twice yields an
// identical result, and a duplicated layer is a no-op the second time.
// Any failure aborts the whole build: callers keep their previous set.
func (r *Resolver) Resolve(layers []Layer) (*EffectiveRuleSet, error) {
	configs := make(map[string]RuleConfig, r.registry.Len())
	for _, id := range r.registry.IDs() {
		d, _ := r.registry.Get(id)
		configs[id] = RuleConfig{Severity: d.DefaultSeverity, Options: d.DefaultOptions}
	}

	for _, layer := range layers {
		if err := r.applyLayer(configs, layer, nil); err != nil {
			return nil, err
		}
	}
	return &EffectiveRuleSet{configs: configs}, nil
}

// applyLayer merges one layer into configs. seen carries the extends
// references on the current resolution path for cycle detection.
func (r *Resolver) applyLayer(configs map[string]RuleConfig, layer Layer, seen []string) error {
	switch l := layer.(type) {
	case PresetLayer:
		return r.applyPreset(configs, l.Name)
	case ExtendsLayer:
		for _, ref := range l.Refs {
			if err := r.applyExtends(configs, ref, seen); err != nil {
				return err
			}
		}
		return nil
	case OverrideLayer:
		return r.applyOverrides(configs, l.Rules)
	}
	return configErrorf("unsupported configuration layer %T", layer)
}

func (r *Resolver) applyPreset(configs map[string]RuleConfig, name string) error {
	preset, ok := presets[name]
	if !ok {
		return configErrorf("unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}
	// Presets touch only the rules they list; everything else keeps the
	// registry defaults already in configs.
	for _, id := range sortedKeys(preset) {
		if err := r.setRule(configs, id, preset[id].severity, preset[id].options); err != nil {
			return err
		}
	}
	return nil
}

// applyExtends resolves one extends reference depth-first: a builtin
// preset name applies directly, anything else loads as a config file
// whose own extends chain applies before its rules.
func (r *Resolver) applyExtends(configs map[string]RuleConfig, ref string, seen []string) error {
	if _, ok := presets[ref]; ok {
		return r.applyPreset(configs, ref)
	}

	for _, s := range seen {
		if s == ref {
			cycle := append(append([]string{}, seen...), ref)
			return &ConfigError{
				Cycle: cycle,
				msg:   fmt.Sprintf("circular extends chain: %s", strings.Join(cycle, " -> ")),
			}
		}
	}

	if r.load == nil {
		return configErrorf("cannot resolve extends reference %q: no loader configured", ref)
	}
	loaded, err := r.load(ref)
	if err != nil {
		return configErrorf("extends %q: %v", ref, err)
	}

	seen = append(seen, ref)
	for _, nested := range loaded.Extends {
		if err := r.applyExtends(configs, nested, seen); err != nil {
			return err
		}
	}
	return r.applyOverrides(configs, loaded.Rules)
}

func (r *Resolver) applyOverrides(configs map[string]RuleConfig, overrides map[string]any) error {
	for _, id := range sortedAnyKeys(overrides) {
		severity, options, err := parseRuleValue(overrides[id])
		if err != nil {
			var ce *ConfigError
			if errors.As(err, &ce) {
				ce.Rule = id
			}
			return err
		}
		if err := r.setRule(configs, id, severity, options); err != nil {
			return err
		}
	}
	return nil
}

// setRule writes one rule's settings, failing on unknown ids. Options
// merge key-by-key over the current ones so a layer can adjust a single
// option without restating the rest.
func (r *Resolver) setRule(configs map[string]RuleConfig, id string, severity Severity, options Options) error {
	current, ok := configs[id]
	if !ok {
		return &ConfigError{Rule: id, msg: fmt.Sprintf("unknown rule %q", id)}
	}
	configs[id] = RuleConfig{
		Severity: severity,
		Options:  current.Options.merged(options),
	}
	return nil
}

// parseRuleValue accepts the ESLint-style forms a decoded rules mapping
// can hold: a bare severity token, a [severity, options] pair, or a
// {severity, options} mapping.
func parseRuleValue(value any) (Severity, Options, error) {
	switch v := value.(type) {
	case []any:
		if len(v) == 0 {
			return Off, nil, configErrorf("empty rule configuration list")
		}
		severity, err := ParseSeverity(v[0])
		if err != nil {
			return Off, nil, err
		}
		var options Options
		if len(v) > 1 {
			m, ok := v[1].(map[string]any)
			if !ok {
				return Off, nil, configErrorf("rule options must be a mapping, got %T", v[1])
			}
			options = Options(m)
		}
		return severity, options, nil
	case map[string]any:
		severity, err := ParseSeverity(v["severity"])
		if err != nil {
			return Off, nil, err
		}
		var options Options
		if raw, ok := v["options"]; ok {
			m, ok := raw.(map[string]any)
			if !ok {
				return Off, nil, configErrorf("rule options must be a mapping, got %T", raw)
			}
			options = Options(m)
		}
		return severity, options, nil
	default:
		severity, err := ParseSeverity(value)
		if err != nil {
			return Off, nil, err
		}
		return severity, nil, nil
	}
}

func sortedKeys(m map[string]presetEntry) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedAnyKeys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
