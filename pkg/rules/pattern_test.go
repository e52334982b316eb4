package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const multiPhaseContent = `---
description: Migrate the schema in staged phases
category: ops
pattern: multi-phase
---

# Schema Migration

## Usage

Run with a target environment to execute all phases in order.

## Multi-Phase Execution

### Phase 1: Snapshot

Take a snapshot of the current schema.

### Phase 2: Apply

Apply the migration scripts.

### Phase 3: Verify

Verify row counts and constraints.

### Phase 4: Cleanup

Drop the temporary tables.

## Examples

Migrating the staging environment end to end.
`

const agentStyleContent = `---
description: Act as a dedicated performance reviewer
category: dev
pattern: agent-style
---

# Performance Review

## Usage

Invoke with a service name to review its performance profile.

## Agent Role

You are a performance engineer reviewing production services.

## Expert Process

### 1. Gather baselines

Collect current latency and throughput numbers.

### 2. Profile hot paths

Identify the dominant cost centers.

### 3. Propose changes

Suggest targeted optimizations.

### 4. Verify improvements

Re-measure after each change.

## Expert Guidelines

Prefer measurements over intuition.

## Deliverables

A ranked list of optimizations with expected impact.

## Examples

Reviewing the checkout service before a sale event.
`

func TestPatternSimpleValid(t *testing.T) {
	result := runCheck(t, 4, validSimpleDoc(), nil)
	assert.True(t, result.Passed, result.Message)
}

func TestPatternMissing(t *testing.T) {
	doc := parseDoc("commands/dev.x.md", "---\ndescription: Review things\n---\n\n# Body\n")
	result := runCheck(t, 4, doc, nil)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Message, "pattern is required")
}

func TestPatternUnrecognized(t *testing.T) {
	doc := parseDoc("commands/dev.x.md", "---\ndescription: Review things\npattern: freestyle\n---\n\n# Body\n")
	result := runCheck(t, 4, doc, nil)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Message, "unrecognized pattern 'freestyle'")
	assert.Contains(t, result.Message, "agent-style, multi-phase, simple")
}

func TestPatternSimpleMissingHeading(t *testing.T) {
	content := `---
description: Review code changes
category: dev
pattern: simple
---

# Code Review

## Usage

Run it.

## What This Command Does

Reviews code.
`
	doc := parseDoc("commands/dev.x.md", content)
	result := runCheck(t, 4, doc, nil)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Message, "'Examples'")
}

func TestPatternHeadingMatchIsExactAndLevel2(t *testing.T) {
	// "usage" in the wrong case and "Examples" at the wrong level do not
	// satisfy the requirements.
	content := `---
description: Review code changes
pattern: simple
---

# Code Review

## usage

## What This Command Does

### Examples
`
	doc := parseDoc("commands/dev.x.md", content)
	result := runCheck(t, 4, doc, nil)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Message, "'Usage'")
	assert.Contains(t, result.Message, "'Examples'")
}

func TestPatternMultiPhaseValid(t *testing.T) {
	doc := parseDoc("commands/ops.schema-migrate.md", multiPhaseContent)
	result := runCheck(t, 4, doc, nil)
	assert.True(t, result.Passed, result.Message)
}

func TestPatternMultiPhaseTooFewPhases(t *testing.T) {
	content := `---
description: Migrate the schema
pattern: multi-phase
---

# Migration

## Usage

Run it.

## Multi-Phase Execution

### Phase 1: Snapshot

### Phase 2: Apply

## Examples

An example.
`
	doc := parseDoc("commands/ops.x.md", content)
	result := runCheck(t, 4, doc, nil)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Message, "must contain 4 named subsections (found 2)")
}

func TestPatternAgentStyleValid(t *testing.T) {
	doc := parseDoc("commands/dev.perf-review.md", agentStyleContent)
	result := runCheck(t, 4, doc, nil)
	assert.True(t, result.Passed, result.Message)
}

func TestPatternAgentStyleMissingStep(t *testing.T) {
	content := `---
description: Act as a reviewer
pattern: agent-style
---

# Review

## Usage

Run it.

## Agent Role

A role.

## Expert Process

### 1. Gather

### 2. Profile

### 4. Verify

## Expert Guidelines

Guidelines.

## Deliverables

Deliverables.

## Examples

An example.
`
	doc := parseDoc("commands/dev.x.md", content)
	result := runCheck(t, 4, doc, nil)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Message, "step '3.' is missing")
}
