package rules

import (
	"fmt"
	"strings"

	"github.com/cmdlint/cmdlint/pkg/document"
	"github.com/cmdlint/cmdlint/pkg/refs"
)

// checkDescription validates the description length. The "starts with an
// action verb" heuristic is advisory only: it surfaces as a warning and
// never fails the rule. Presence of the description itself is the
// frontmatter rule's concern.
func checkDescription(rs *Ruleset) CheckFunc {
	const id, name = 3, "description-length"

	return func(doc *document.CommandDocument, _ refs.Resolver) Result {
		desc := doc.Meta.Description
		if strings.TrimSpace(desc) == "" {
			return pass(id, name)
		}

		if n := len([]rune(desc)); n > rs.MaxDescriptionLength {
			return fail(id, name, fmt.Sprintf("description is %d characters (max %d)", n, rs.MaxDescriptionLength))
		}

		result := pass(id, name)
		result.Advisories = descriptionAdvisories(desc, rs)
		return result
	}
}

func descriptionAdvisories(desc string, rs *Ruleset) []string {
	fields := strings.Fields(desc)
	if len(fields) == 0 {
		return nil
	}

	first := strings.ToLower(strings.Trim(fields[0], ".,:;"))

	var advisories []string
	if contains(rs.Articles, first) {
		advisories = append(advisories, fmt.Sprintf("description should start with an action verb, not the article '%s'", first))
	} else if strings.HasSuffix(first, "ing") && len(first) > 4 {
		advisories = append(advisories, fmt.Sprintf("description should start with an imperative verb, not the gerund '%s'", first))
	}
	return advisories
}
