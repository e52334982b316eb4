package rules

import (
	"fmt"
	"strings"

	"github.com/cmdlint/cmdlint/pkg/document"
	"github.com/cmdlint/cmdlint/pkg/refs"
)

// checkCategory validates the declared category against the standard
// taxonomy, falling back to accepting custom kebab-case categories within
// the configured length bounds.
func checkCategory(rs *Ruleset) CheckFunc {
	const id, name = 5, "category"

	return func(doc *document.CommandDocument, _ refs.Resolver) Result {
		if !doc.Meta.Has("category") {
			return fail(id, name, "category is required")
		}

		category := doc.Meta.Category
		if contains(rs.StandardCategories, category) {
			return pass(id, name)
		}

		if kebabRe.MatchString(category) &&
			len(category) >= rs.MinCategoryLength &&
			len(category) <= rs.MaxCategoryLength {
			return pass(id, name)
		}

		return fail(id, name, fmt.Sprintf("invalid category '%s': must be a standard category (%s) or custom kebab-case, %d-%d characters",
			category, strings.Join(rs.StandardCategories, ", "), rs.MinCategoryLength, rs.MaxCategoryLength))
	}
}
