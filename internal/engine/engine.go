// Package engine wires the lint pipeline together: parse, normalize,
// evaluate, aggregate. An Engine owns its rule registry and the current
// effective rule set; nothing here is process-global.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/abrick/brick/internal/lang"
	"github.com/abrick/brick/internal/model"
	"github.com/abrick/brick/internal/normalize"
	"github.com/abrick/brick/internal/rules"
	"github.com/abrick/brick/internal/rules/builtin"
)

// ParseFailureRule is the synthetic rule id attached to files that
// could not be read or parsed at all. Such files still count in the
// directory totals.
const ParseFailureRule = "parse/failure"

// Engine runs the lint pipeline. The per-file path is stateless apart
// from reading the immutable effective rule set, so directory linting
// fans out over a bounded worker pool.
type Engine struct {
	languages *lang.Registry
	registry  *rules.Registry
	resolver  *rules.Resolver
	logger    *slog.Logger
	workers   int

	mu        sync.RWMutex
	effective *rules.EffectiveRuleSet
	ignore    []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers bounds the directory lint worker pool.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithLogger sets the engine's structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithExtendsLoader resolves extends references that are not builtin
// preset names, typically by decoding a config file from disk.
func WithExtendsLoader(load rules.LoadFunc) Option {
	return func(e *Engine) {
		e.resolver = rules.NewResolver(e.registry, load)
	}
}

// WithRules registers additional rules beyond the builtin set.
func WithRules(descriptors ...rules.Descriptor) Option {
	return func(e *Engine) {
		e.registry.MustRegister(descriptors...)
	}
}

// WithIgnorePatterns sets the initial ignore globs. Loading a config
// replaces them with the config's patterns.
func WithIgnorePatterns(patterns []string) Option {
	return func(e *Engine) {
		e.ignore = append([]string{}, patterns...)
	}
}

// New builds an engine with the builtin rules registered and an
// effective rule set resolved from the registry defaults.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		languages: lang.NewRegistry(),
		registry:  rules.NewRegistry(),
		logger:    slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
		workers:   runtime.NumCPU(),
	}
	e.registry.MustRegister(builtin.All()...)
	e.resolver = rules.NewResolver(e.registry, nil)

	for _, opt := range opts {
		opt(e)
	}

	effective, err := e.resolver.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("resolve default rule set: %w", err)
	}
	e.effective = effective
	return e, nil
}

// Languages returns the engine's language adapter registry.
func (e *Engine) Languages() *lang.Registry { return e.languages }

// Rules returns the engine's rule registry.
func (e *Engine) Rules() *rules.Registry { return e.registry }

// Effective returns the currently active effective rule set.
func (e *Engine) Effective() *rules.EffectiveRuleSet {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.effective
}

// IgnorePatterns returns the active ignore globs.
func (e *Engine) IgnorePatterns() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]string{}, e.ignore...)
}

// UsePreset replaces the effective rule set with one builtin preset
// over the registry defaults. The previous set stays active on failure.
func (e *Engine) UsePreset(name string) error {
	return e.swap([]rules.Layer{rules.PresetLayer{Name: name}}, nil)
}

// LoadConfig resolves a decoded configuration into a new effective rule
// set: extends chain first, then the config's own rules. The swap is
// atomic; on any ConfigError the previously active set and ignore
// patterns remain in force.
func (e *Engine) LoadConfig(cfg *rules.FileConfig) error {
	layers := []rules.Layer{
		rules.ExtendsLayer{Refs: cfg.Extends},
		rules.OverrideLayer{Rules: cfg.Rules},
	}
	return e.swap(layers, cfg.IgnorePatterns)
}

// Override applies runtime rule overrides on top of the current
// configuration layers. Like every configuration change it rebuilds the
// effective set wholesale.
func (e *Engine) Override(ruleSettings map[string]any) error {
	return e.swap([]rules.Layer{rules.OverrideLayer{Rules: ruleSettings}}, nil)
}

func (e *Engine) swap(layers []rules.Layer, ignore []string) error {
	effective, err := e.resolver.Resolve(layers)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.effective = effective
	if ignore != nil {
		e.ignore = append([]string{}, ignore...)
	}
	return nil
}

// Lint evaluates the active rules against an already normalized parse
// result.
func (e *Engine) Lint(pr *model.ParseResult) *LintResult {
	snapshot := e.Effective()
	result := &LintResult{
		FilePath:    pr.FilePath,
		ParseErrors: pr.Errors,
	}
	for _, v := range rules.Evaluate(e.registry, snapshot, pr) {
		result.AddViolation(v)
	}
	return result
}

// LintSource parses, normalizes and lints one in-memory file. A file
// the grammar cannot consume at all yields a single synthetic parse
// failure violation instead of an error.
func (e *Engine) LintSource(ctx context.Context, src []byte, path string) *LintResult {
	adapter := e.languages.ByPath(path)
	if adapter == nil {
		return parseFailure(path, fmt.Errorf("no parser for %s", path))
	}

	root, err := adapter.Parse(ctx, src)
	if err != nil {
		return parseFailure(path, err)
	}

	pr := normalize.File(root, adapter, src, path)
	if len(pr.Errors) > 0 {
		e.logger.Debug("recovered syntax errors",
			slog.String("file", path),
			slog.Int("count", len(pr.Errors)))
	}
	return e.Lint(pr)
}

// LintFile reads and lints one file from disk. An unreadable file is
// treated like a parse failure: counted, reported, never fatal.
func (e *Engine) LintFile(ctx context.Context, path string) *LintResult {
	src, err := os.ReadFile(path)
	if err != nil {
		return parseFailure(path, err)
	}
	return e.LintSource(ctx, src, path)
}

// parseFailure builds the synthetic single-violation result for files
// that could not be processed.
func parseFailure(path string, err error) *LintResult {
	result := &LintResult{FilePath: path}
	result.AddViolation(rules.Violation{
		RuleID:    ParseFailureRule,
		Severity:  rules.Error,
		Message:   fmt.Sprintf("failed to parse file: %v", err),
		StartLine: 1,
		EndLine:   1,
	})
	return result
}
