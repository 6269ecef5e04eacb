package cmd

import (
	"encoding/json"
	"os"

	"github.com/galeriafora-cli/galeriafora/gallery"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd prints the JSON schema of the media wire document, the
// format accepted by the upload command.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the media document format",
	Run: func(cmd *cobra.Command, args []string) {
		schema := jsonschema.Reflect(&gallery.MediaDocument{})

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
