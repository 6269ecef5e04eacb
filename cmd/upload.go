package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/galeriafora-cli/galeriafora/color"
	"github.com/galeriafora-cli/galeriafora/filesystem"
	"github.com/galeriafora-cli/galeriafora/gallery"
	"github.com/galeriafora-cli/galeriafora/style"
	"github.com/galeriafora-cli/galeriafora/uploader"
	"github.com/galeriafora-cli/galeriafora/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().StringSliceP("to", "t", []string{}, "Target provider names (repeatable); defaults to the selected provider")
	lo.Must0(uploadCmd.RegisterFlagCompletionFunc("to", completionProviderNames))

	uploadCmd.SetOut(os.Stdout)
}

// uploadCmd publishes media described in a JSON file to one or more providers.
var uploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload media described in a JSON file to gallery providers",
	Long: `Upload media to gallery providers.

The file must contain a JSON array of media documents. Every document
is validated before anything is sent.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		media := readMediaFile(args[0])

		r := defaultRegistry()
		u := lo.Must(uploader.New(r))

		targets := lo.Must(cmd.Flags().GetStringSlice("to"))
		if len(targets) == 0 {
			targets = []string{lo.Must(selectedProviderName(r))}
		}

		if len(targets) == 1 {
			ok, err := u.Upload(cmd.Context(), targets[0], media)
			handleErr(err)

			if !ok {
				handleErr(fmt.Errorf("upload to %s failed", targets[0]))
			}

			cmd.Printf("%s uploaded %s to %s\n",
				style.Fg(color.Green)("✓"),
				util.Quantify(len(media), "item", "items"),
				style.Fg(color.Purple)(targets[0]),
			)
			return
		}

		report, err := u.UploadToMultiple(cmd.Context(), media, targets)
		handleErr(err)

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(report))

		if !report.AllSucceeded() {
			os.Exit(1)
		}
	},
}

// readMediaFile decodes and validates a JSON array of media documents.
func readMediaFile(path string) []gallery.Media {
	data, err := filesystem.API().ReadFile(path)
	handleErr(err)

	var media []gallery.Media
	handleErr(json.Unmarshal(data, &media))

	return media
}
