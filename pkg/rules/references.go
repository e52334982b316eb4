package rules

import (
	"fmt"

	"github.com/cmdlint/cmdlint/pkg/document"
	"github.com/cmdlint/cmdlint/pkg/refs"
	"github.com/hashicorp/go-multierror"
)

// checkReferences validates that every name declared in related_agents,
// related_skills, and related_commands resolves to an existing file or
// directory through the injected resolver. Every broken reference is
// reported, not just the first.
func checkReferences(_ *Ruleset) CheckFunc {
	const id, name = 8, "integration-references"

	return func(doc *document.CommandDocument, resolver refs.Resolver) Result {
		groups := []struct {
			field string
			kind  refs.Kind
			names []string
		}{
			{"related_agents", refs.KindAgent, doc.Meta.RelatedAgents},
			{"related_skills", refs.KindSkill, doc.Meta.RelatedSkills},
			{"related_commands", refs.KindCommand, doc.Meta.RelatedCommands},
		}

		declared := false
		for _, g := range groups {
			if len(g.names) > 0 {
				declared = true
			}
		}
		if !declared {
			return pass(id, name)
		}

		if resolver == nil {
			return fail(id, name, "references declared but no repository context is configured")
		}

		var problems *multierror.Error
		for _, g := range groups {
			for _, refName := range g.names {
				if !resolver.Exists(g.kind, refName) {
					problems = multierror.Append(problems, fmt.Errorf("%s: '%s' does not resolve to an existing %s", g.field, refName, g.kind))
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
