// Package cmd implements the command-line interface for galeriafora.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/galeriafora-cli/galeriafora/color"
	"github.com/galeriafora-cli/galeriafora/constant"
	"github.com/galeriafora-cli/galeriafora/key"
	"github.com/galeriafora-cli/galeriafora/log"
	"github.com/galeriafora-cli/galeriafora/style"
	"github.com/galeriafora-cli/galeriafora/util"
	"github.com/galeriafora-cli/galeriafora/version"
	"github.com/galeriafora-cli/galeriafora/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("provider", "p", "", "Gallery provider to operate on")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("provider", completionProviderNames))
	lo.Must0(viper.BindPFlag(key.DefaultProvider, rootCmd.PersistentFlags().Lookup("provider")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Clean up localized temporary files on startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the galeriafora application.
var rootCmd = &cobra.Command{
	Use:   constant.Galeriafora,
	Short: "A command-line interface for browsing and publishing media galleries",
	Long: style.New().Italic(true).Foreground(color.HiPurple).
		Render("    - A command-line interface for browsing and publishing media across gallery providers"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		browseCmd.Run(browseCmd, args)
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.ErrorTitle("error"), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
