package main

import (
	"fmt"
	"os"

	"github.com/cmdlint/cmdlint/pkg/presenter"
	"github.com/cmdlint/cmdlint/pkg/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		info := version.Get()

		if jsonOutput, err := cmd.Flags().GetBool("json"); err == nil && jsonOutput {
			out, err := info.JSON()
			if err != nil {
				presenter.Error(err, "Failed to marshal version info")
				os.Exit(1)
			}
			fmt.Println(out)
			return
		}

		fmt.Println(info.String())
	},
}

func init() {
	versionCmd.Flags().Bool("json", false, "Output version information as JSON")
}
