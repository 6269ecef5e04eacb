// Package fetcher orchestrates read operations against registered
// gallery providers. It resolves the target provider, checks the
// requested capability and delegates; it never touches media content
// itself.
package fetcher

import (
	"context"

	"github.com/galeriafora-cli/galeriafora/fault"
	"github.com/galeriafora-cli/galeriafora/gallery"
	"github.com/galeriafora-cli/galeriafora/provider"
	"github.com/galeriafora-cli/galeriafora/registry"
)

// DefaultLimit is the batch size used when a caller passes a
// non-positive limit. Overridable per fetcher through WithDefaultLimit,
// which the CLI wires to the fetch.default_limit config key.
const DefaultLimit = 200

// Fetcher resolves providers by name and delegates fetch operations to
// them. Construct through New; the zero value is invalid.
type Fetcher struct {
	registry     gallery.Registry
	defaultLimit int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithDefaultLimit overrides the limit substituted for non-positive
// limit arguments. Non-positive overrides are ignored.
func WithDefaultLimit(limit int) Option {
	return func(f *Fetcher) {
		if limit > 0 {
			f.defaultLimit = limit
		}
	}
}

// New constructs a fetcher over the given registry.
func New(r gallery.Registry, options ...Option) (*Fetcher, error) {
	if r == nil {
		return nil, ErrNilRegistry
	}

	f := &Fetcher{registry: r, defaultLimit: DefaultLimit}
	for _, option := range options {
		option(f)
	}
	return f, nil
}

// FetchLatest retrieves the most recent media from the named provider.
func (f *Fetcher) FetchLatest(ctx context.Context, providerName string, limit int, cursor string) (gallery.Page[gallery.Media], error) {
	p, err := f.resolve(providerName, provider.CapabilityFetchLatest,
		ErrFetchLatestNoProviders, ErrFetchLatestInvalidName, ErrFetchLatestUnsupported)
	if err != nil {
		return gallery.Page[gallery.Media]{}, err
	}

	return p.FetchLatest(ctx, f.effectiveLimit(limit), cursor)
}

// FetchByUser retrieves media published by a user on the named provider.
func (f *Fetcher) FetchByUser(ctx context.Context, providerName, username string, limit int, cursor string) (gallery.Page[gallery.Media], error) {
	p, err := f.resolve(providerName, provider.CapabilityFetchByUser,
		ErrFetchByUserNoProviders, ErrFetchByUserInvalidName, ErrFetchByUserUnsupported)
	if err != nil {
		return gallery.Page[gallery.Media]{}, err
	}

	return p.FetchByUser(ctx, username, f.effectiveLimit(limit), cursor)
}

// FetchByTags retrieves media matching the tags on the named provider.
// A nil tag slice is treated as empty.
func (f *Fetcher) FetchByTags(ctx context.Context, providerName string, tags []string, limit int, cursor string) (gallery.Page[gallery.Media], error) {
	p, err := f.resolve(providerName, provider.CapabilityFetchByTags,
		ErrFetchByTagsNoProviders, ErrFetchByTagsInvalidName, ErrFetchByTagsUnsupported)
	if err != nil {
		return gallery.Page[gallery.Media]{}, err
	}

	if tags == nil {
		tags = []string{}
	}

	return p.FetchByTags(ctx, tags, f.effectiveLimit(limit), cursor)
}

// resolve runs the shared resolution protocol, in order: a registry
// with no providers at all fails first, then the name is validated and
// looked up, then the capability is checked. Lookup failures surface
// as the invalid-name kind with the underlying cause attached.
func (f *Fetcher) resolve(
	providerName string,
	capability provider.Capability,
	errNoProviders, errInvalidName, errUnsupported *fault.Error,
) (gallery.Provider, error) {
	if len(f.registry.Providers()) == 0 {
		return nil, errNoProviders
	}

	p, err := registry.Find(f.registry, providerName)
	if err != nil {
		return nil, errInvalidName.Because(err)
	}

	if !p.Info().HasCapability(capability) {
		return nil, errUnsupported
	}

	return p, nil
}

func (f *Fetcher) effectiveLimit(limit int) int {
	if limit <= 0 {
		return f.defaultLimit
	}
	return limit
}
