package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/galeriafora-cli/galeriafora/color"
	"github.com/galeriafora-cli/galeriafora/fileprovider"
	"github.com/galeriafora-cli/galeriafora/gallery"
	"github.com/galeriafora-cli/galeriafora/key"
	"github.com/galeriafora-cli/galeriafora/registry"
	"github.com/galeriafora-cli/galeriafora/style"
	"github.com/galeriafora-cli/galeriafora/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// defaultRegistry assembles the provider registry available to the CLI.
// The local catalog provider is always present.
func defaultRegistry() *registry.InMemory {
	r := registry.New()

	path := viper.GetString(key.CatalogPath)
	if path == "" {
		path = where.Catalog()
	}
	lo.Must0(r.Register(fileprovider.New(path)))

	return r
}

// providerNames lists the registered provider names in registration order.
func providerNames(r gallery.Registry) []string {
	return lo.Map(r.Providers(), func(p gallery.Provider, _ int) string {
		return p.Info().Name().String()
	})
}

func completionProviderNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return providerNames(defaultRegistry()), cobra.ShellCompDirectiveNoFileComp
}

// selectedProviderName resolves the provider to operate on: the
// --provider flag or config default when set, an interactive prompt
// otherwise.
func selectedProviderName(r gallery.Registry) (string, error) {
	if name := viper.GetString(key.DefaultProvider); name != "" {
		return name, nil
	}

	names := providerNames(r)
	if len(names) == 1 {
		return names[0], nil
	}

	var name string
	err := survey.AskOne(&survey.Select{
		Message: "Select a provider",
		Options: names,
	}, &name)
	if err != nil {
		return "", err
	}

	return name, nil
}

// suggestProvider appends a "did you mean" hint to a lookup failure.
func suggestProvider(r gallery.Registry, raw string, err error) error {
	closest, ok := registry.Closest(r, raw).Get()
	if !ok {
		return err
	}

	return fmt.Errorf("%w, did you mean %s?",
		err,
		style.Fg(color.Yellow)(closest.Info().Name().String()),
	)
}
