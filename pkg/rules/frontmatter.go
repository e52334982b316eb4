package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cmdlint/cmdlint/pkg/document"
	"github.com/cmdlint/cmdlint/pkg/refs"
	"github.com/hashicorp/go-multierror"
)

var semverRe = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// checkFrontmatter validates that the frontmatter parsed, that the required
// description key is declared and non-empty, and that every declared
// optional field conforms to its own shape. Field problems are aggregated
// so one run surfaces all of them.
func checkFrontmatter(rs *Ruleset) CheckFunc {
	const id, name = 2, "frontmatter"

	return func(doc *document.CommandDocument, _ refs.Resolver) Result {
		if doc.ParseErr != nil {
			return fail(id, name, fmt.Sprintf("unparsable frontmatter: %v", doc.ParseErr.Err))
		}

		if !doc.HasFrontmatter() {
			return fail(id, name, "missing frontmatter block with required key 'description'")
		}

		var problems *multierror.Error

		if doc.MetaErr != nil {
			problems = multierror.Append(problems, doc.MetaErr)
		}

		if strings.TrimSpace(doc.Meta.Description) == "" {
			problems = multierror.Append(problems, fmt.Errorf("'description' is required and must be non-empty"))
		}

		if doc.Meta.Has("version") && !semverRe.MatchString(doc.Meta.Version) {
			problems = multierror.Append(problems, fmt.Errorf("'version' value '%s' must match X.Y.Z", doc.Meta.Version))
		}

		if doc.Meta.Has("model_preference") && !contains(rs.ModelPreferences, doc.Meta.ModelPreference) {
			problems = multierror.Append(problems, fmt.Errorf("'model_preference' value '%s' must be one of: %s",
				doc.Meta.ModelPreference, strings.Join(rs.ModelPreferences, ", ")))
		}

		if doc.Meta.Has("tags") {
			if err := validateTags(doc.Meta.Tags, rs); err != nil {
				problems = multierror.Append(problems, err)
			}
		}

		if problems != nil {
			problems.ErrorFormat = listErrorFormat
			return fail(id, name, problems.Error())
		}

		return pass(id, name)
	}
}

func validateTags(tags []string, rs *Ruleset) error {
	if len(tags) < rs.MinTags || len(tags) > rs.MaxTags {
		return fmt.Errorf("'tags' must list %d-%d entries (found %d)", rs.MinTags, rs.MaxTags, len(tags))
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("'tags' must not contain empty entries")
		}
		if len(tag) > rs.MaxTagLength {
			return fmt.Errorf("tag '%s' is %d characters (max %d)", tag, len(tag), rs.MaxTagLength)
		}
	}
	return nil
}

// listErrorFormat renders aggregated field problems on a single line so a
// rule message stays one readable diagnostic.
func listErrorFormat(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}

	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("%d problems: %s", len(errs), strings.Join(parts, "; "))
}
