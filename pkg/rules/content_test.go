package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentCompleteValid(t *testing.T) {
	result := runCheck(t, 6, validSimpleDoc(), nil)
	assert.True(t, result.Passed, result.Message)
}

func TestContentBodyTooShort(t *testing.T) {
	doc := parseDoc("commands/dev.x.md", "---\ndescription: Review things\n---\n\n# Body\n\nshort\n")
	result := runCheck(t, 6, doc, nil)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Message, "after whitespace normalization (min 100)")
}

func TestContentNormalizesWhitespace(t *testing.T) {
	// Runs of whitespace collapse before measuring, so padding does not
	// satisfy the minimum length.
	padded := "---\ndescription: Review things\n---\n\n# B\n\nword" + "\n\n\n   \t  \n" + "word\n"
	doc := parseDoc("commands/dev.x.md", padded)
	result := runCheck(t, 6, doc, nil)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Message, "body is 13 characters")
}

func TestContentPatternRequiresUsageAndExamples(t *testing.T) {
	content := `---
description: Review code changes
pattern: simple
---

# Code Review

## What This Command Does

Walks the diff hunk by hunk, flags correctness and style problems, and
summarizes the findings ordered by severity for the caller.
`
	doc := parseDoc("commands/dev.x.md", content)
	result := runCheck(t, 6, doc, nil)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Message, "missing 'Usage' heading")
	assert.Contains(t, result.Message, "missing 'Examples' heading")
}

func TestContentUnrecognizedPatternSkipsHeadingRequirement(t *testing.T) {
	content := `---
description: Review code changes
pattern: freestyle
---

# Code Review

Walks the diff hunk by hunk, flags correctness and style problems, and
summarizes the findings ordered by severity for the caller to read.
`
	doc := parseDoc("commands/dev.x.md", content)
	result := runCheck(t, 6, doc, nil)

	// Pattern validity itself is rule 4's concern.
	assert.True(t, result.Passed, result.Message)
}

func TestPatternAndContentOverlapOnMissingExamples(t *testing.T) {
	// A simple-pattern document without an Examples heading fails both the
	// pattern rule and the completeness rule.
	content := `---
description: Review code changes
category: dev
pattern: simple
---

# Code Review

## Usage

Run the command against a branch or a diff to get a structured review.

## What This Command Does

Walks the diff hunk by hunk and summarizes the findings by severity.
`
	doc := parseDoc("commands/dev.code-review.md", content)

	patternResult := runCheck(t, 4, doc, nil)
	contentResult := runCheck(t, 6, doc, nil)

	assert.False(t, patternResult.Passed)
	assert.False(t, contentResult.Passed)
	assert.Contains(t, contentResult.Message, "missing 'Examples' heading")
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", normalizeWhitespace("  a\n\n b\t\tc \n"))
	assert.Equal(t, "", normalizeWhitespace(" \n\t "))
}
