// Package runner discovers command documents under a repository root,
// validates each one, and aggregates a repository-wide report. Discovery
// order is deterministic (paths are sorted), and one unreadable file never
// aborts the batch.
package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cmdlint/cmdlint/pkg/document"
	"github.com/cmdlint/cmdlint/pkg/logger"
	"github.com/cmdlint/cmdlint/pkg/validator"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// DiscoveryError indicates the repository root itself could not be used.
// It is fatal for the batch run, unlike any per-document problem.
type DiscoveryError struct {
	Root string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("cannot discover command documents under '%s': %v", e.Root, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// Summary holds the aggregate counts of a repository run, computed by
// folding over the document reports.
type Summary struct {
	DocumentsPassed int `json:"documents_passed" yaml:"documents_passed"`
	DocumentsFailed int `json:"documents_failed" yaml:"documents_failed"`
	DocumentsTotal  int `json:"documents_total" yaml:"documents_total"`
	ChecksPassed    int `json:"checks_passed" yaml:"checks_passed"`
	ChecksTotal     int `json:"checks_total" yaml:"checks_total"`
}

// RepositoryReport aggregates the reports of every discovered document.
// It is produced once per run, never mutated, and rendered into whatever
// output format the caller asks for.
type RepositoryReport struct {
	Root      string                     `json:"root" yaml:"root"`
	Documents []validator.DocumentReport `json:"documents" yaml:"documents"`
	Summary   Summary                    `json:"summary" yaml:"summary"`
}

// Passed reports whether every document passed every check.
func (r *RepositoryReport) Passed() bool {
	return r.Summary.DocumentsFailed == 0
}

func summarize(documents []validator.DocumentReport) Summary {
	var s Summary
	for _, doc := range documents {
		s.DocumentsTotal++
		if doc.Passed() {
			s.DocumentsPassed++
		} else {
			s.DocumentsFailed++
		}
		s.ChecksPassed += doc.PassedCount
		s.ChecksTotal += doc.TotalCount
	}
	return s
}

// Runner validates every command document under a root directory.
type Runner struct {
	validator      *validator.Validator
	categoryFilter glob.Glob
	categoryExpr   string
}

// Option configures a Runner.
type Option func(*Runner) error

// WithValidator sets the validator used for each document.
func WithValidator(v *validator.Validator) Option {
	return func(r *Runner) error {
		if v == nil {
			return errors.New("validator must not be nil")
		}
		r.validator = v
		return nil
	}
}

// WithCategoryFilter restricts discovery to documents whose file category
// matches the given glob expression (e.g. "dev" or "dev*").
func WithCategoryFilter(expr string) Option {
	return func(r *Runner) error {
		if expr == "" {
			return nil
		}
		g, err := glob.Compile(expr)
		if err != nil {
			return errors.Wrapf(err, "invalid category filter '%s'", expr)
		}
		r.categoryFilter = g
		r.categoryExpr = expr
		return nil
	}
}

// New creates a Runner with a default validator unless one is provided.
func New(opts ...Option) (*Runner, error) {
	r := &Runner{}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, errors.Wrap(err, "failed to apply runner option")
		}
	}

	if r.validator == nil {
		v, err := validator.New()
		if err != nil {
			return nil, err
		}
		r.validator = v
	}

	return r, nil
}

// Discover returns the sorted paths of every markdown document under root,
// honoring the category filter. Sorting keeps the final report order
// deterministic regardless of the underlying directory listing order.
func (r *Runner) Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &DiscoveryError{Root: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &DiscoveryError{Root: root, Err: errors.New("not a directory")}
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(root, "**", "*.md"))
	if err != nil {
		return nil, &DiscoveryError{Root: root, Err: err}
	}

	var paths []string
	for _, path := range matches {
		if r.categoryFilter != nil {
			doc := document.CommandDocument{Path: path}
			if !r.categoryFilter.Match(doc.FileCategory()) {
				continue
			}
		}
		paths = append(paths, path)
	}

	sort.Strings(paths)
	return paths, nil
}

// Run validates every discovered document and aggregates the repository
// report. An unreadable individual file degrades to a document-level error
// entry; only a discovery failure is fatal.
func (r *Runner) Run(ctx context.Context, root string) (*RepositoryReport, error) {
	log := logger.G(ctx).WithField("root", root)
	if r.categoryExpr != "" {
		log = log.WithField("category", r.categoryExpr)
	}

	paths, err := r.Discover(root)
	if err != nil {
		return nil, err
	}
	log.WithField("documents", len(paths)).Debug("Discovered command documents")

	documents := make([]validator.DocumentReport, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			log.WithError(err).WithField("path", path).Warn("Failed to read document, recording as failure")
			documents = append(documents, validator.NewErrorReport(path, err))
			continue
		}

		report := r.validator.ValidateContent(path, content)
		log.WithField("path", path).WithField("passed", report.Passed()).Debug("Validated document")
		documents = append(documents, report)
	}

	return &RepositoryReport{
		Root:      root,
		Documents: documents,
		Summary:   summarize(documents),
	}, nil
}
