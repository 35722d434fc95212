package engine

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

// DefaultIgnores are excluded from directory linting even without any
// configuration. Config-supplied patterns apply in addition.
var DefaultIgnores = []string{
	"**/node_modules/**",
	"**/.git/**",
	"**/venv/**",
	"**/__pycache__/**",
}

// LintDirectory lints every supported file under root with a bounded
// worker pool. Per-file results appear in stable lexical enumeration
// order regardless of completion order, and per-file failures never
// abort the walk: they surface as synthetic violations inside the
// report.
//
// Canceling ctx stops the submission of further files; results already
// completed remain valid and are included in the returned report along
// with the context error.
func (e *Engine) LintDirectory(ctx context.Context, root string) (*DirectoryReport, error) {
	files, err := e.collectFiles(root)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("linting directory",
		slog.String("root", root),
		slog.Int("files", len(files)),
		slog.Int("workers", e.workers))

	// Each worker writes only its own slot; the fold below is the one
	// synchronization point for the aggregate.
	results := make([]*LintResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	var canceled error
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			canceled = err
			break
		}
		i, path := i, path
		g.Go(func() error {
			results[i] = e.LintFile(gctx, path)
			return nil
		})
	}
	// Workers never return errors; per-file failures live in their
	// result slot.
	_ = g.Wait()

	return buildReport(results), canceled
}

// collectFiles walks root in lexical order and returns the supported,
// non-ignored file paths. WalkDir's lexical ordering is what makes the
// report order stable.
func (e *Engine) collectFiles(root string) ([]string, error) {
	ignore := append(append([]string{}, DefaultIgnores...), e.IgnorePatterns()...)

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		if d.IsDir() {
			if rel != "." && dirIgnored(rel, ignore) {
				return filepath.SkipDir
			}
			return nil
		}
		if e.languages.ByPath(path) == nil {
			return nil
		}
		if ignored(rel, ignore) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ignored reports whether the slash-normalized relative path matches
// any ignore glob. Patterns use doublestar syntax, so **/dir/** works
// across separators.
func ignored(rel string, patterns []string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// dirIgnored decides directory pruning: a directory is skipped when it
// matches an ignore pattern with its trailing /** stripped, so
// **/node_modules/** prunes the node_modules directory itself.
func dirIgnored(rel string, patterns []string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		trimmed := strings.TrimSuffix(pattern, "/**")
		if ok, err := doublestar.Match(trimmed, rel); err == nil && ok {
			return true
		}
	}
	return false
}
