package gallery

import (
	"context"

	"github.com/galeriafora-cli/galeriafora/provider"
)

// Provider is the capability contract every external gallery integration
// implements. The orchestration services call only the subset of
// operations gated by the capabilities advertised in Info; an operation
// outside the advertised set is never invoked.
//
// Cursor arguments are opaque continuation tokens from a previous
// Page; the empty string requests the first page.
type Provider interface {
	// Info returns the provider's identity and capability set,
	// constant for the provider's lifetime.
	Info() provider.Info

	// FetchLatest retrieves the most recent media items.
	FetchLatest(ctx context.Context, limit int, cursor string) (Page[Media], error)

	// FetchByUser retrieves media items published by a specific user.
	FetchByUser(ctx context.Context, username string, limit int, cursor string) (Page[Media], error)

	// FetchByTags retrieves media items matching the given tags.
	FetchByTags(ctx context.Context, tags []string, limit int, cursor string) (Page[Media], error)

	// Upload publishes media items to the provider.
	Upload(ctx context.Context, media []Media) error
}

// Registry is the collaborator listing all currently registered
// providers. It must be callable repeatedly and reflect the current
// registration state; lookup resolves the first provider whose
// normalized name matches.
type Registry interface {
	Providers() []Provider
}
