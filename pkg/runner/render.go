package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// RenderJSON writes the report as indented JSON. The projection is a pure
// function of the report, so identical runs produce byte-identical output.
func RenderJSON(w io.Writer, report *RepositoryReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return errors.Wrap(err, "failed to encode report as JSON")
	}
	return nil
}

// RenderYAML writes the report as YAML.
func RenderYAML(w io.Writer, report *RepositoryReport) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()
	if err := encoder.Encode(report); err != nil {
		return errors.Wrap(err, "failed to encode report as YAML")
	}
	return nil
}

// RenderText writes a human-readable report. With verbose false only
// failing documents list their individual check results.
func RenderText(w io.Writer, report *RepositoryReport, verbose bool) error {
	for _, doc := range report.Documents {
		status := "PASS"
		if !doc.Passed() {
			status = "FAIL"
		}

		if doc.Error != "" {
			fmt.Fprintf(w, "%s  %s (unreadable: %s)\n", status, doc.Path, doc.Error)
			continue
		}

		fmt.Fprintf(w, "%s  %s (%d/%d checks)\n", status, doc.Path, doc.PassedCount, doc.TotalCount)

		if !verbose && doc.Passed() {
			continue
		}
		for _, result := range doc.Results {
			if result.Passed && !verbose {
				continue
			}
			marker := "ok"
			if !result.Passed {
				marker = "!!"
			}
			fmt.Fprintf(w, "  %s rule %d (%s): %s\n", marker, result.RuleID, result.Name, result.Message)
			for _, advisory := range result.Advisories {
				fmt.Fprintf(w, "     advisory: %s\n", advisory)
			}
		}
	}

	if len(report.Documents) > 0 {
		fmt.Fprintln(w)
	}
	s := report.Summary
	fmt.Fprintf(w, "Documents: %d passed, %d failed, %d total\n", s.DocumentsPassed, s.DocumentsFailed, s.DocumentsTotal)
	fmt.Fprintf(w, "Checks:    %d/%d passed\n", s.ChecksPassed, s.ChecksTotal)
	return nil
}

// RenderMarkdown writes the report as a markdown document suitable for
// committing alongside the commands it describes.
func RenderMarkdown(w io.Writer, report *RepositoryReport) error {
	fmt.Fprintf(w, "# Command Validation Report\n\n")
	fmt.Fprintf(w, "Root: `%s`\n\n", report.Root)

	s := report.Summary
	fmt.Fprintf(w, "## Summary\n\n")
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "| Metric\t| Value\t|\n")
	fmt.Fprintf(tw, "|---\t|---\t|\n")
	fmt.Fprintf(tw, "| Documents passed\t| %d\t|\n", s.DocumentsPassed)
	fmt.Fprintf(tw, "| Documents failed\t| %d\t|\n", s.DocumentsFailed)
	fmt.Fprintf(tw, "| Documents total\t| %d\t|\n", s.DocumentsTotal)
	fmt.Fprintf(tw, "| Checks passed\t| %d/%d\t|\n", s.ChecksPassed, s.ChecksTotal)
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush summary table")
	}

	fmt.Fprintf(w, "\n## Documents\n")
	for _, doc := range report.Documents {
		status := "✅"
		if !doc.Passed() {
			status = "❌"
		}
		fmt.Fprintf(w, "\n### %s `%s`\n\n", status, doc.Path)

		if doc.Error != "" {
			fmt.Fprintf(w, "Could not be read: %s\n", doc.Error)
			continue
		}

		for _, result := range doc.Results {
			mark := "✅"
			if !result.Passed {
				mark = "❌"
			}
			fmt.Fprintf(w, "- %s **%s**: %s\n", mark, result.Name, result.Message)
			for _, advisory := range result.Advisories {
				fmt.Fprintf(w, "  - ⚠️ %s\n", advisory)
			}
		}
	}

	return nil
}
