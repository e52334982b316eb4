package rules

import (
	"fmt"

	"github.com/cmdlint/cmdlint/pkg/document"
	"github.com/cmdlint/cmdlint/pkg/refs"
)

// checkStructure validates the heading hierarchy: at least one heading
// exists, and consecutive headings never deepen by more than one level at
// a time.
func checkStructure(_ *Ruleset) CheckFunc {
	const id, name = 7, "markdown-structure"

	return func(doc *document.CommandDocument, _ refs.Resolver) Result {
		if len(doc.Headings) == 0 {
			return fail(id, name, "document body has no headings")
		}

		prev := doc.Headings[0]
		for _, h := range doc.Headings[1:] {
			if h.Level > prev.Level+1 {
				return fail(id, name, fmt.Sprintf("heading '%s' (line %d) jumps from level %d to level %d",
					h.Text, h.Line, prev.Level, h.Level))
			}
			prev = h
		}

		return pass(id, name)
	}
}
