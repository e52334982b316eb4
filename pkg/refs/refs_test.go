package refs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirResolverAgents(t *testing.T) {
	tmpDir := t.TempDir()
	agentsDir := filepath.Join(tmpDir, "agents")
	require.NoError(t, os.MkdirAll(agentsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(agentsDir, "reviewer.md"), []byte("# Reviewer"), 0o644))

	r := NewDirResolver(agentsDir, "", "")

	assert.True(t, r.Exists(KindAgent, "reviewer"))
	assert.False(t, r.Exists(KindAgent, "nonexistent-agent"))
	assert.False(t, r.Exists(KindAgent, ""))
}

func TestDirResolverSkills(t *testing.T) {
	tmpDir := t.TempDir()
	skillDir := filepath.Join(tmpDir, "skills", "seo-analysis")
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte("# SEO"), 0o644))

	// A bare directory without SKILL.md is not a skill package.
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "skills", "empty"), 0o755))

	r := NewDirResolver("", filepath.Join(tmpDir, "skills"), "")

	assert.True(t, r.Exists(KindSkill, "seo-analysis"))
	assert.False(t, r.Exists(KindSkill, "empty"))
	assert.False(t, r.Exists(KindSkill, "missing"))
}

func TestDirResolverCommandsRecursive(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "commands", "dev")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "commands", "dev.lint.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "dev.deep.md"), []byte("x"), 0o644))

	r := NewDirResolver("", "", filepath.Join(tmpDir, "commands"))

	assert.True(t, r.Exists(KindCommand, "dev.lint"))
	assert.True(t, r.Exists(KindCommand, "dev.deep"))
	assert.False(t, r.Exists(KindCommand, "dev.gone"))
}

func TestDirResolverDisabledKinds(t *testing.T) {
	r := NewDirResolver("", "", "")

	assert.False(t, r.Exists(KindAgent, "anything"))
	assert.False(t, r.Exists(KindSkill, "anything"))
	assert.False(t, r.Exists(KindCommand, "anything"))
	assert.False(t, r.Exists(Kind("unknown"), "anything"))
}

func TestMapResolver(t *testing.T) {
	r := NewMapResolver().
		Add(KindAgent, "reviewer", "optimizer").
		Add(KindSkill, "seo-analysis")

	assert.True(t, r.Exists(KindAgent, "reviewer"))
	assert.True(t, r.Exists(KindSkill, "seo-analysis"))
	assert.False(t, r.Exists(KindCommand, "reviewer"))
	assert.False(t, r.Exists(KindAgent, "missing"))
}
