// Package refs resolves names of related agents, skills, and commands to
// their on-disk representations. Repository layout conventions live here so
// the rules only ever ask "does this name exist" through the Resolver
// interface, and tests can substitute an in-memory implementation.
package refs

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Kind identifies the namespace a reference points into.
type Kind string

const (
	// KindAgent references an agent definition file.
	KindAgent Kind = "agent"
	// KindSkill references a skill package directory.
	KindSkill Kind = "skill"
	// KindCommand references another command document.
	KindCommand Kind = "command"
)

// Resolver answers read-only existence queries for referenced names.
type Resolver interface {
	Exists(kind Kind, name string) bool
}

// DirResolver resolves references against real repository directories:
// agents are <agents>/<name>.md files, skills are <skills>/<name>/SKILL.md
// packages, commands are <name>.md files anywhere under the commands root.
type DirResolver struct {
	agentsDir   string
	skillsDir   string
	commandsDir string
}

// NewDirResolver creates a resolver rooted at the given directories. An
// empty directory disables that kind; names of a disabled kind never
// resolve.
func NewDirResolver(agentsDir, skillsDir, commandsDir string) *DirResolver {
	return &DirResolver{
		agentsDir:   agentsDir,
		skillsDir:   skillsDir,
		commandsDir: commandsDir,
	}
}

// Exists implements Resolver.
func (r *DirResolver) Exists(kind Kind, name string) bool {
	if name == "" {
		return false
	}

	switch kind {
	case KindAgent:
		if r.agentsDir == "" {
			return false
		}
		return fileExists(filepath.Join(r.agentsDir, name+".md"))
	case KindSkill:
		if r.skillsDir == "" {
			return false
		}
		return fileExists(filepath.Join(r.skillsDir, name, "SKILL.md"))
	case KindCommand:
		if r.commandsDir == "" {
			return false
		}
		matches, err := doublestar.FilepathGlob(filepath.Join(r.commandsDir, "**", name+".md"))
		if err != nil {
			return false
		}
		return len(matches) > 0
	default:
		return false
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MapResolver is an in-memory Resolver for tests and embedders that manage
// their own repository layout.
type MapResolver struct {
	entries map[Kind]map[string]bool
}

// NewMapResolver creates an empty MapResolver.
func NewMapResolver() *MapResolver {
	return &MapResolver{entries: make(map[Kind]map[string]bool)}
}

// Add registers names under a kind.
func (r *MapResolver) Add(kind Kind, names ...string) *MapResolver {
	if r.entries[kind] == nil {
		r.entries[kind] = make(map[string]bool)
	}
	for _, name := range names {
		r.entries[kind][name] = true
	}
	return r
}

// Exists implements Resolver.
func (r *MapResolver) Exists(kind Kind, name string) bool {
	return r.entries[kind][name]
}
