// Package fileprovider implements a gallery provider backed by a JSON
// catalog file on the local filesystem. It supports every capability
// and is always available, which makes it the default upload target
// and the offline browsing source.
package fileprovider

import (
	"context"
	"strings"

	"github.com/galeriafora-cli/galeriafora/fault"
	"github.com/galeriafora-cli/galeriafora/filesystem"
	"github.com/galeriafora-cli/galeriafora/gallery"
	"github.com/galeriafora-cli/galeriafora/provider"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Name is the registered name of the local provider.
const Name = "local"

var (
	ErrNonPositiveLimit = fault.New("fileprovider_non_positive_limit", "limit must be positive")
	ErrInvalidCursor    = fault.New("fileprovider_invalid_cursor", "cursor is not a valid catalog offset")
)

// Provider stores media in a catalog file and serves fetches from it.
// Newest items come first in every fetch result.
type Provider struct {
	info   provider.Info
	cacher *gache.Cache[[]gallery.Media]
}

// New constructs a local provider over the catalog file at path.
func New(path string) *Provider {
	info := lo.Must(provider.NewInfo(
		lo.Must(provider.NewName(Name)),
		provider.Capabilities(),
		mo.Some("media catalog stored on the local filesystem"),
	))

	return &Provider{
		info: info,
		cacher: gache.New[[]gallery.Media](
			&gache.Options{
				Path:       path,
				FileSystem: &filesystem.GacheFs{},
			},
		),
	}
}

// Info returns the provider identity. The local provider advertises
// every capability.
func (p *Provider) Info() provider.Info {
	return p.info
}

// FetchLatest returns catalog entries from newest to oldest.
func (p *Provider) FetchLatest(ctx context.Context, limit int, cursor string) (gallery.Page[gallery.Media], error) {
	if err := ctx.Err(); err != nil {
		return gallery.Page[gallery.Media]{}, err
	}

	catalog, err := p.load()
	if err != nil {
		return gallery.Page[gallery.Media]{}, err
	}

	return paginate(newestFirst(catalog), limit, cursor)
}

// FetchByUser returns catalog entries carrying the user tag for the
// given username. The catalog convention is a "user:<name>" tag,
// matched case-insensitively.
func (p *Provider) FetchByUser(ctx context.Context, username string, limit int, cursor string) (gallery.Page[gallery.Media], error) {
	if err := ctx.Err(); err != nil {
		return gallery.Page[gallery.Media]{}, err
	}

	catalog, err := p.load()
	if err != nil {
		return gallery.Page[gallery.Media]{}, err
	}

	userTag := "user:" + strings.ToLower(username)
	matching := lo.Filter(newestFirst(catalog), func(m gallery.Media, _ int) bool {
		return lo.ContainsBy(m.Tags(), func(tag string) bool {
			return strings.ToLower(tag) == userTag
		})
	})

	return paginate(matching, limit, cursor)
}

// FetchByTags returns catalog entries carrying at least one of the
// given tags, matched case-insensitively.
func (p *Provider) FetchByTags(ctx context.Context, tags []string, limit int, cursor string) (gallery.Page[gallery.Media], error) {
	if err := ctx.Err(); err != nil {
		return gallery.Page[gallery.Media]{}, err
	}

	catalog, err := p.load()
	if err != nil {
		return gallery.Page[gallery.Media]{}, err
	}

	wanted := lo.Map(tags, func(tag string, _ int) string { return strings.ToLower(tag) })
	matching := lo.Filter(newestFirst(catalog), func(m gallery.Media, _ int) bool {
		return lo.SomeBy(m.Tags(), func(tag string) bool {
			return lo.Contains(wanted, strings.ToLower(tag))
		})
	})

	return paginate(matching, limit, cursor)
}

// Upload appends media to the catalog and persists it.
func (p *Provider) Upload(ctx context.Context, media []gallery.Media) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	catalog, err := p.load()
	if err != nil {
		return err
	}

	return p.cacher.Set(append(catalog, media...))
}

// load reads the catalog, treating a missing, unreadable or expired
// file as empty.
func (p *Provider) load() ([]gallery.Media, error) {
	cached, expired, err := p.cacher.Get()
	if err != nil || expired || cached == nil {
		return []gallery.Media{}, nil
	}
	return cached, nil
}

func newestFirst(catalog []gallery.Media) []gallery.Media {
	return lo.Reverse(slices.Clone(catalog))
}
