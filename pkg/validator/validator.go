// Package validator orchestrates running every rule against one command
// document and aggregating the outcomes. Aggregation is a pure fold over
// the per-rule results; nothing here keeps running counters or any other
// state between documents.
package validator

import (
	"github.com/cmdlint/cmdlint/pkg/document"
	"github.com/cmdlint/cmdlint/pkg/refs"
	"github.com/cmdlint/cmdlint/pkg/rules"
	"github.com/pkg/errors"
)

// DocumentReport aggregates every rule result for one document. It is
// created complete and never mutated afterwards.
type DocumentReport struct {
	Path        string         `json:"path" yaml:"path"`
	PassedCount int            `json:"passed_count" yaml:"passed_count"`
	TotalCount  int            `json:"total_count" yaml:"total_count"`
	Results     []rules.Result `json:"results" yaml:"results"`
	// Error is set when the document could not be read at all; in that
	// case Results is empty and the document counts as failed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	Doc *document.CommandDocument `json:"-" yaml:"-"`
}

// Passed reports whether every rule passed and the document was readable.
func (r DocumentReport) Passed() bool {
	return r.Error == "" && r.PassedCount == r.TotalCount
}

// NewDocumentReport folds rule results into an immutable report.
func NewDocumentReport(doc *document.CommandDocument, results []rules.Result) DocumentReport {
	passed := 0
	for _, result := range results {
		if result.Passed {
			passed++
		}
	}

	return DocumentReport{
		Path:        doc.Path,
		PassedCount: passed,
		TotalCount:  len(results),
		Results:     results,
		Doc:         doc,
	}
}

// NewErrorReport builds the report for a document that could not be read.
func NewErrorReport(path string, err error) DocumentReport {
	return DocumentReport{
		Path:  path,
		Error: err.Error(),
	}
}

// Validator runs the rule engine against documents.
type Validator struct {
	engine   *rules.Engine
	resolver refs.Resolver
}

// Option configures a Validator.
type Option func(*Validator) error

// WithEngine sets a custom rule engine.
func WithEngine(engine *rules.Engine) Option {
	return func(v *Validator) error {
		if engine == nil {
			return errors.New("engine must not be nil")
		}
		v.engine = engine
		return nil
	}
}

// WithResolver sets the repository context used by the reference checks.
func WithResolver(resolver refs.Resolver) Option {
	return func(v *Validator) error {
		v.resolver = resolver
		return nil
	}
}

// New creates a Validator, defaulting to the embedded ruleset and an empty
// in-memory resolver.
func New(opts ...Option) (*Validator, error) {
	v := &Validator{}

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, errors.Wrap(err, "failed to apply validator option")
		}
	}

	if v.engine == nil {
		engine, err := rules.NewEngine()
		if err != nil {
			return nil, err
		}
		v.engine = engine
	}

	if v.resolver == nil {
		v.resolver = refs.NewMapResolver()
	}

	return v, nil
}

// Validate runs all rules against a parsed document in fixed numeric
// order. Every rule always runs; an early failure never short-circuits the
// later checks, and a frontmatter parse failure has already been degraded
// into the document by the parser.
func (v *Validator) Validate(doc *document.CommandDocument) DocumentReport {
	activeRules := v.engine.Rules()
	results := make([]rules.Result, 0, len(activeRules))

	for _, rule := range activeRules {
		results = append(results, rule.Check(doc, v.resolver))
	}

	return NewDocumentReport(doc, results)
}

// ValidateContent parses raw content and validates it in one step.
func (v *Validator) ValidateContent(path string, content []byte) DocumentReport {
	return v.Validate(document.Parse(path, content))
}
