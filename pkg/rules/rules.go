// Package rules implements the eight structural checks for command
// documents. Each rule is an independent, stateless predicate over a parsed
// document and a read-only reference resolver; rules never mutate their
// inputs and never fail the run as a whole. Some requirements deliberately
// overlap across rules (a missing Examples heading fails both the pattern
// and the completeness check).
package rules

import (
	"github.com/cmdlint/cmdlint/pkg/document"
	"github.com/cmdlint/cmdlint/pkg/refs"
	"github.com/pkg/errors"
)

// Result is the outcome of running one rule against one document.
type Result struct {
	RuleID int    `json:"rule_id" yaml:"rule_id"`
	Name   string `json:"-" yaml:"-"`
	Passed bool   `json:"passed" yaml:"passed"`
	// Message explains a failure; "Valid" on success.
	Message string `json:"message" yaml:"message"`
	// Advisories carry non-fatal style warnings that never flip Passed.
	Advisories []string `json:"advisories,omitempty" yaml:"advisories,omitempty"`
}

// CheckFunc is one rule's predicate.
type CheckFunc func(doc *document.CommandDocument, resolver refs.Resolver) Result

// Rule pairs a numeric identity with its predicate.
type Rule struct {
	ID    int
	Name  string
	Check CheckFunc
}

// Engine holds the active rules in fixed numeric order.
type Engine struct {
	ruleset *Ruleset
	rules   []Rule
}

// Option configures an Engine.
type Option func(*Engine) error

// WithRuleset sets a custom ruleset instead of the embedded defaults.
func WithRuleset(rs *Ruleset) Option {
	return func(e *Engine) error {
		if rs == nil {
			return errors.New("ruleset must not be nil")
		}
		e.ruleset = rs
		return nil
	}
}

// NewEngine creates a rule engine, defaulting to the embedded ruleset.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, errors.Wrap(err, "failed to apply rule engine option")
		}
	}

	if e.ruleset == nil {
		rs, err := DefaultRuleset()
		if err != nil {
			return nil, err
		}
		e.ruleset = rs
	}

	rs := e.ruleset
	e.rules = []Rule{
		{ID: 1, Name: "name-format", Check: checkNameFormat(rs)},
		{ID: 2, Name: "frontmatter", Check: checkFrontmatter(rs)},
		{ID: 3, Name: "description-length", Check: checkDescription(rs)},
		{ID: 4, Name: "pattern", Check: checkPattern(rs)},
		{ID: 5, Name: "category", Check: checkCategory(rs)},
		{ID: 6, Name: "content-completeness", Check: checkContent(rs)},
		{ID: 7, Name: "markdown-structure", Check: checkStructure(rs)},
		{ID: 8, Name: "integration-references", Check: checkReferences(rs)},
	}

	return e, nil
}

// Rules returns the active rules ordered by ascending ID.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Ruleset returns the engine's active ruleset.
func (e *Engine) Ruleset() *Ruleset {
	return e.ruleset
}

func pass(id int, name string) Result {
	return Result{RuleID: id, Name: name, Passed: true, Message: "Valid"}
}

func fail(id int, name, message string) Result {
	return Result{RuleID: id, Name: name, Passed: false, Message: message}
}
