package rules

import (
	"testing"

	"github.com/cmdlint/cmdlint/pkg/document"
	"github.com/cmdlint/cmdlint/pkg/refs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseDoc builds a document from inline content the way the runner would.
func parseDoc(path, content string) *document.CommandDocument {
	return document.Parse(path, []byte(content))
}

// runCheck executes a single rule by ID with the default ruleset.
func runCheck(t *testing.T, id int, doc *document.CommandDocument, resolver refs.Resolver) Result {
	t.Helper()

	engine, err := NewEngine()
	require.NoError(t, err)

	for _, rule := range engine.Rules() {
		if rule.ID == id {
			return rule.Check(doc, resolver)
		}
	}

	t.Fatalf("no rule with ID %d", id)
	return Result{}
}

const validSimpleContent = `---
name: code-review
description: Review code changes for quality and correctness issues
category: dev
pattern: simple
---

# Code Review

## Usage

Run the command against a branch or a diff to get a structured review.

## What This Command Does

Walks the diff hunk by hunk, flags correctness and style problems, and
summarizes the findings ordered by severity.

## Examples

Reviewing the current branch against main produces a findings report.
`

func validSimpleDoc() *document.CommandDocument {
	return parseDoc("commands/dev.code-review.md", validSimpleContent)
}

func TestNewEngineRuleOrder(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	rules := engine.Rules()
	require.Len(t, rules, 8)
	for i, rule := range rules {
		assert.Equal(t, i+1, rule.ID)
		assert.NotEmpty(t, rule.Name)
		assert.NotNil(t, rule.Check)
	}
}

func TestNewEngineWithCustomRuleset(t *testing.T) {
	rs, err := DefaultRuleset()
	require.NoError(t, err)
	rs.MaxDescriptionLength = 10

	engine, err := NewEngine(WithRuleset(rs))
	require.NoError(t, err)
	assert.Equal(t, 10, engine.Ruleset().MaxDescriptionLength)

	_, err = NewEngine(WithRuleset(nil))
	assert.Error(t, err)
}

func TestAllRulesPassOnValidDocument(t *testing.T) {
	doc := validSimpleDoc()
	engine, err := NewEngine()
	require.NoError(t, err)

	for _, rule := range engine.Rules() {
		result := rule.Check(doc, refs.NewMapResolver())
		assert.True(t, result.Passed, "rule %d (%s): %s", rule.ID, rule.Name, result.Message)
		assert.Equal(t, "Valid", result.Message)
	}
}
