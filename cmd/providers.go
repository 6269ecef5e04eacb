package cmd

import (
	"encoding/json"
	"os"

	"github.com/galeriafora-cli/galeriafora/color"
	"github.com/galeriafora-cli/galeriafora/gallery"
	"github.com/galeriafora-cli/galeriafora/provider"
	"github.com/galeriafora-cli/galeriafora/style"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(providersCmd)

	providersCmd.Flags().StringP("filter", "f", "", "Fuzzy filter providers by name")
	providersCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")

	providersCmd.SetOut(os.Stdout)
}

// providersCmd lists the registered gallery providers and their capabilities.
var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the registered gallery providers",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			filter = lo.Must(cmd.Flags().GetString("filter"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
		)

		providers := defaultRegistry().Providers()

		if filter != "" {
			providers = lo.Filter(providers, func(p gallery.Provider, _ int) bool {
				return fuzzy.MatchFold(filter, p.Info().Name().String())
			})
		}

		if asJson {
			infos := lo.Map(providers, func(p gallery.Provider, _ int) provider.Info {
				return p.Info()
			})

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(infos))
			return
		}

		for _, p := range providers {
			info := p.Info()

			cmd.Println(style.Bold(info.Name().String()))
			if description, ok := info.Description().Get(); ok {
				cmd.Println("  " + style.Faint(description))
			}

			for _, c := range info.Capabilities() {
				cmd.Println("  " + style.Fg(color.Cyan)(c.String()))
			}
			cmd.Println()
		}
	},
}
