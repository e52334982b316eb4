package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cmdlint/cmdlint/pkg/document"
	"github.com/cmdlint/cmdlint/pkg/presenter"
	"github.com/cmdlint/cmdlint/pkg/runner"
	"github.com/spf13/cobra"
)

type ListConfig struct {
	Root     string
	Category string
}

func NewListConfig() *ListConfig {
	return &ListConfig{
		Root: ".",
	}
}

var listCmd = &cobra.Command{
	Use:   "list [directory]",
	Short: "List the command documents under a directory",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := NewListConfig()
		if len(args) > 0 {
			config.Root = args[0]
		}
		if category, err := cmd.Flags().GetString("category"); err == nil {
			config.Category = category
		}

		r, err := runner.New(runner.WithCategoryFilter(config.Category))
		if err != nil {
			presenter.Error(err, "Failed to configure listing")
			os.Exit(2)
		}

		paths, err := r.Discover(config.Root)
		if err != nil {
			presenter.Error(err, "Failed to scan directory")
			os.Exit(2)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCATEGORY\tPATTERN\tDESCRIPTION")
		for _, path := range paths {
			content, err := os.ReadFile(path)
			if err != nil {
				presenter.Warning(fmt.Sprintf("Skipping unreadable %s: %v", path, err))
				continue
			}

			doc := document.Parse(path, content)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				doc.Stem(),
				doc.FileCategory(),
				doc.Meta.Pattern,
				truncate(doc.Meta.Description, 60))
		}
		w.Flush()
	},
}

func init() {
	listCmd.Flags().StringP("category", "c", "", "Only list documents whose file category matches this glob")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
