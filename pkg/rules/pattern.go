package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cmdlint/cmdlint/pkg/document"
	"github.com/cmdlint/cmdlint/pkg/refs"
)

// checkPattern validates the declared structural pattern and the headings
// it requires. Required headings match exactly, case-sensitive, at heading
// level 2.
func checkPattern(rs *Ruleset) CheckFunc {
	const id, name = 4, "pattern"

	return func(doc *document.CommandDocument, _ refs.Resolver) Result {
		if !doc.Meta.Has("pattern") {
			return fail(id, name, "pattern is required")
		}

		spec, ok := rs.Patterns[doc.Meta.Pattern]
		if !ok {
			return fail(id, name, fmt.Sprintf("unrecognized pattern '%s' (expected one of: %s)",
				doc.Meta.Pattern, strings.Join(patternNames(rs), ", ")))
		}

		var missing []string
		for _, required := range spec.Headings {
			if !hasHeading(doc.Headings, 2, required) {
				missing = append(missing, fmt.Sprintf("'%s'", required))
			}
		}
		if len(missing) > 0 {
			return fail(id, name, fmt.Sprintf("pattern '%s' requires missing heading(s): %s",
				doc.Meta.Pattern, strings.Join(missing, ", ")))
		}

		if spec.Subsections != nil {
			found := subsectionsUnder(doc.Headings, spec.Subsections.Under)
			if len(found) < spec.Subsections.Count {
				return fail(id, name, fmt.Sprintf("'%s' must contain %d named subsections (found %d)",
					spec.Subsections.Under, spec.Subsections.Count, len(found)))
			}
		}

		if spec.NumberedSteps != nil {
			found := subsectionsUnder(doc.Headings, spec.NumberedSteps.Under)
			for i := 1; i <= spec.NumberedSteps.Count; i++ {
				if !hasNumberedStep(found, i) {
					return fail(id, name, fmt.Sprintf("'%s' must contain numbered steps 1-%d; step '%d.' is missing",
						spec.NumberedSteps.Under, spec.NumberedSteps.Count, i))
				}
			}
		}

		return pass(id, name)
	}
}

func patternNames(rs *Ruleset) []string {
	names := make([]string, 0, len(rs.Patterns))
	for name := range rs.Patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func hasHeading(headings []document.Heading, level int, text string) bool {
	for _, h := range headings {
		if h.Level == level && h.Text == text {
			return true
		}
	}
	return false
}

// subsectionsUnder returns the named level-3 headings between the given
// level-2 heading and the next level-2 heading.
func subsectionsUnder(headings []document.Heading, under string) []document.Heading {
	var found []document.Heading
	inSection := false

	for _, h := range headings {
		switch {
		case h.Level == 2 && h.Text == under:
			inSection = true
		case h.Level == 2:
			if inSection {
				return found
			}
		case inSection && h.Level == 3 && h.Text != "":
			found = append(found, h)
		}
	}

	return found
}

func hasNumberedStep(headings []document.Heading, step int) bool {
	prefix := fmt.Sprintf("%d.", step)
	for _, h := range headings {
		if strings.HasPrefix(h.Text, prefix) {
			return true
		}
	}
	return false
}
