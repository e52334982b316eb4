package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cmdlint/cmdlint/pkg/document"
	"github.com/cmdlint/cmdlint/pkg/presenter"
	"github.com/cmdlint/cmdlint/pkg/runner"
	"github.com/cmdlint/cmdlint/pkg/textmetrics"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [directory]",
	Short: "Show prose statistics for command document bodies",
	Long: `Stats computes word counts, sentence lengths, and Flesch reading
ease for the body of every command document. Useful for spotting documents
that have drifted far from the repository's typical length and density.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := "."
		if len(args) > 0 {
			root = args[0]
		}

		r, err := runner.New()
		if err != nil {
			presenter.Error(err, "Failed to configure stats")
			os.Exit(2)
		}

		paths, err := r.Discover(root)
		if err != nil {
			presenter.Error(err, "Failed to scan directory")
			os.Exit(2)
		}

		var total textmetrics.Stats
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tWORDS\tSENTENCES\tWORDS/SENT\tREADING EASE")
		for _, path := range paths {
			content, err := os.ReadFile(path)
			if err != nil {
				presenter.Warning(fmt.Sprintf("Skipping unreadable %s: %v", path, err))
				continue
			}

			doc := document.Parse(path, content)
			stats := textmetrics.Analyze(doc.Body)
			fmt.Fprintf(w, "%s\t%d\t%d\t%.1f\t%.1f\n",
				doc.Stem(), stats.Words, stats.Sentences, stats.WordsPerSentence, stats.ReadingEase)

			total.Words += stats.Words
			total.Sentences += stats.Sentences
		}
		w.Flush()

		if total.Sentences > 0 {
			presenter.Separator()
			presenter.Info(fmt.Sprintf("Total: %d words across %d sentences (%.1f words/sentence)",
				total.Words, total.Sentences, float64(total.Words)/float64(total.Sentences)))
		}
	},
}
