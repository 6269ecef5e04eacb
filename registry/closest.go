package registry

import (
	"github.com/galeriafora-cli/galeriafora/gallery"
	"github.com/galeriafora-cli/galeriafora/provider"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/mo"
)

// maxSuggestionDistance bounds how far a typo may be from a registered
// name before no suggestion is offered.
const maxSuggestionDistance = 3

// Closest returns the registered provider whose name is nearest to the
// raw query by levenshtein distance. Used for "did you mean" hints when
// Find fails; absent when nothing is close enough.
func Closest(r gallery.Registry, raw string) mo.Option[gallery.Provider] {
	query := provider.Normalize(raw)
	if query == "" {
		return mo.None[gallery.Provider]()
	}

	var (
		best     gallery.Provider
		bestDist = maxSuggestionDistance + 1
	)

	for _, p := range r.Providers() {
		dist := levenshtein.Distance(query, p.Info().Name().String())
		if dist < bestDist {
			best, bestDist = p, dist
		}
	}

	if best == nil {
		return mo.None[gallery.Provider]()
	}
	return mo.Some(best)
}
