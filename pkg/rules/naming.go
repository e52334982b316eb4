package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cmdlint/cmdlint/pkg/document"
	"github.com/cmdlint/cmdlint/pkg/refs"
)

// kebabRe matches lowercase kebab-case: letters and digits separated by
// single hyphens, no leading or trailing hyphen.
var kebabRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// checkNameFormat validates that the file name stem follows the
// category.command-name convention.
func checkNameFormat(rs *Ruleset) CheckFunc {
	const id, name = 1, "name-format"

	return func(doc *document.CommandDocument, _ refs.Resolver) Result {
		stem := doc.Stem()

		if n := len(stem); n > rs.MaxStemLength {
			return fail(id, name, fmt.Sprintf("file name '%s' is %d characters (max %d)", stem, n, rs.MaxStemLength))
		}

		segments := strings.Split(stem, ".")
		if len(segments) != 2 {
			return fail(id, name, fmt.Sprintf("file name '%s' must use exactly one '.' separator between category and command name (found %d)", stem, len(segments)-1))
		}

		for i, segment := range segments {
			if segment == "" {
				return fail(id, name, fmt.Sprintf("file name '%s' has an empty %s segment", stem, segmentLabel(i)))
			}
			if !kebabRe.MatchString(segment) {
				return fail(id, name, fmt.Sprintf("%s segment '%s' is not kebab-case (lowercase letters, digits, and single hyphens only)", segmentLabel(i), segment))
			}
		}

		return pass(id, name)
	}
}

func segmentLabel(i int) string {
	if i == 0 {
		return "category"
	}
	return "command name"
}
