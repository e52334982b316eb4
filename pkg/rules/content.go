package rules

import (
	"fmt"
	"strings"

	"github.com/cmdlint/cmdlint/pkg/document"
	"github.com/cmdlint/cmdlint/pkg/refs"
	"github.com/hashicorp/go-multierror"
)

// checkContent validates body completeness: a minimum normalized length,
// and for pattern-based commands the Usage and Examples headings. The
// heading requirement deliberately overlaps with the pattern rule.
func checkContent(rs *Ruleset) CheckFunc {
	const id, name = 6, "content-completeness"

	return func(doc *document.CommandDocument, _ refs.Resolver) Result {
		var problems *multierror.Error

		normalized := normalizeWhitespace(doc.Body)
		if n := len(normalized); n < rs.MinBodyLength {
			problems = multierror.Append(problems, fmt.Errorf("body is %d characters after whitespace normalization (min %d)", n, rs.MinBodyLength))
		}

		if _, ok := rs.Patterns[doc.Meta.Pattern]; ok {
			for _, required := range []string{"Usage", "Examples"} {
				if !hasHeading(doc.Headings, 2, required) {
					problems = multierror.Append(problems, fmt.Errorf("missing '%s' heading", required))
				}
			}
		}

		if problems != nil {
			problems.ErrorFormat = listErrorFormat
			return fail(id, name, problems.Error())
		}

		return pass(id, name)
	}
}

// normalizeWhitespace collapses all whitespace runs to single spaces and
// trims the ends.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
