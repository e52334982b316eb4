package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cmdlint/cmdlint/pkg/presenter"
	"github.com/cmdlint/cmdlint/pkg/runner"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the validation report",
	Long: `Schema prints the JSON schema for the report emitted by
'cmdlint validate --format json', for wiring into CI pipelines that
consume the report programmatically.`,
	Run: func(_ *cobra.Command, _ []string) {
		reflector := jsonschema.Reflector{
			ExpandedStruct: true,
		}
		schema := reflector.Reflect(&runner.RepositoryReport{})

		out, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			presenter.Error(err, "Failed to marshal schema")
			os.Exit(1)
		}
		fmt.Println(string(out))
	},
}
