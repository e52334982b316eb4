// Package document parses command specification files into their YAML
// frontmatter and markdown body. Command files follow the same layout as
// skill and agent packages: an optional frontmatter block delimited by
// `---` lines, followed by a markdown body.
package document

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Heading is a markdown heading found in the document body.
type Heading struct {
	Level int
	Text  string
	Line  int // 1-based line number in the source file, 0 if unknown
}

// ParseError indicates that a frontmatter block was present but could not
// be parsed. It is distinct from the block being absent entirely.
type ParseError struct {
	Path string
	Line int // 1-based line within the frontmatter block, 0 if unknown
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("unparsable frontmatter in %s (line %d): %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("unparsable frontmatter in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CommandDocument represents one on-disk command specification.
type CommandDocument struct {
	Path        string
	Frontmatter map[string]interface{} // nil when no frontmatter block exists
	Meta        Metadata
	Body        string
	Headings    []Heading

	// ParseErr is set when a frontmatter block exists but is malformed.
	// The rest of the document still carries best-effort content so that
	// every rule can run against it.
	ParseErr *ParseError

	// MetaErr is set when declared frontmatter fields could not be decoded
	// into their expected shapes.
	MetaErr error
}

// Stem returns the file name without its extension, e.g. "dev.code-review"
// for "commands/dev.code-review.md".
func (d *CommandDocument) Stem() string {
	base := filepath.Base(d.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FileCategory returns the category segment of the file name, i.e. the part
// of the stem before the first dot. Empty when the stem has no dot.
func (d *CommandDocument) FileCategory() string {
	stem := d.Stem()
	if idx := strings.Index(stem, "."); idx > 0 {
		return stem[:idx]
	}
	return ""
}

// HasFrontmatter reports whether a frontmatter block was found, parsable
// or not.
func (d *CommandDocument) HasFrontmatter() bool {
	return d.Frontmatter != nil || d.ParseErr != nil
}
