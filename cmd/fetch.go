package cmd

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/galeriafora-cli/galeriafora/fetcher"
	"github.com/galeriafora-cli/galeriafora/gallery"
	"github.com/galeriafora-cli/galeriafora/key"
	"github.com/galeriafora-cli/galeriafora/registry"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(fetchCmd)

	for _, sub := range []*cobra.Command{fetchLatestCmd, fetchUserCmd, fetchTagsCmd} {
		fetchCmd.AddCommand(sub)
		sub.Flags().IntP("limit", "l", 0, "Maximum number of media items to fetch (0 uses the configured default)")
		sub.Flags().StringP("cursor", "c", "", "Continuation cursor from a previous page")
		sub.SetOut(os.Stdout)
	}

	fetchTagsCmd.Flags().StringSliceP("tag", "t", []string{}, "Tags to match (repeatable)")
}

// fetchCmd serves as the parent command for read operations.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch media from a gallery provider",
}

// newFetcher builds a fetcher over the CLI registry with the configured
// default limit.
func newFetcher(r gallery.Registry) *fetcher.Fetcher {
	return lo.Must(fetcher.New(r, fetcher.WithDefaultLimit(viper.GetInt(key.FetchDefaultLimit))))
}

// printPage writes a result page to stdout in the external JSON contract.
func printPage(cmd *cobra.Command, page gallery.Page[gallery.Media]) {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	handleErr(encoder.Encode(page))
}

// handleFetchErr enriches lookup failures with a name suggestion.
func handleFetchErr(r gallery.Registry, name string, err error) {
	if err == nil {
		return
	}

	if errors.Is(err, registry.ErrProviderNotFound) {
		err = suggestProvider(r, name, err)
	}
	handleErr(err)
}

// fetchLatestCmd retrieves the most recent media from a provider.
var fetchLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Fetch the most recent media items",
	Run: func(cmd *cobra.Command, args []string) {
		r := defaultRegistry()
		name := lo.Must(selectedProviderName(r))

		page, err := newFetcher(r).FetchLatest(
			cmd.Context(),
			name,
			lo.Must(cmd.Flags().GetInt("limit")),
			lo.Must(cmd.Flags().GetString("cursor")),
		)
		handleFetchErr(r, name, err)

		printPage(cmd, page)
	},
}

// fetchUserCmd retrieves media published by a specific user.
var fetchUserCmd = &cobra.Command{
	Use:   "user [username]",
	Short: "Fetch media published by a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r := defaultRegistry()
		name := lo.Must(selectedProviderName(r))

		page, err := newFetcher(r).FetchByUser(
			cmd.Context(),
			name,
			args[0],
			lo.Must(cmd.Flags().GetInt("limit")),
			lo.Must(cmd.Flags().GetString("cursor")),
		)
		handleFetchErr(r, name, err)

		printPage(cmd, page)
	},
}

// fetchTagsCmd retrieves media matching the given tags.
var fetchTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Fetch media matching tags",
	Run: func(cmd *cobra.Command, args []string) {
		r := defaultRegistry()
		name := lo.Must(selectedProviderName(r))

		page, err := newFetcher(r).FetchByTags(
			cmd.Context(),
			name,
			lo.Must(cmd.Flags().GetStringSlice("tag")),
			lo.Must(cmd.Flags().GetInt("limit")),
			lo.Must(cmd.Flags().GetString("cursor")),
		)
		handleFetchErr(r, name, err)

		printPage(cmd, page)
	},
}
