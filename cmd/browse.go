package cmd

import (
	"github.com/galeriafora-cli/galeriafora/gallery"
	"github.com/galeriafora-cli/galeriafora/tui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().IntP("limit", "l", 0, "Page size (0 uses the configured default)")
}

// browseCmd opens the interactive browser over a provider's latest media.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse a provider's latest media interactively",
	Run: func(cmd *cobra.Command, args []string) {
		r := defaultRegistry()
		name := lo.Must(selectedProviderName(r))
		limit := lo.Must(cmd.Flags().GetInt("limit"))

		f := newFetcher(r)

		first, err := f.FetchLatest(cmd.Context(), name, limit, "")
		handleFetchErr(r, name, err)

		handleErr(tui.Run(&tui.Options{
			Title: name,
			First: first,
			Next: func(cursor string) (gallery.Page[gallery.Media], error) {
				return f.FetchLatest(cmd.Context(), name, limit, cursor)
			},
		}))
	},
}
