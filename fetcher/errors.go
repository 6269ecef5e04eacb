package fetcher

import "github.com/galeriafora-cli/galeriafora/fault"

// ErrNilRegistry rejects fetcher construction without a registry.
var ErrNilRegistry = fault.New("fetcher_nil_registry", "fetcher requires a registry")

// Resolution failures carry the operation in their code so callers can
// tell which entry point rejected the request.
var (
	ErrFetchLatestNoProviders = fault.New("fetch_latest_no_providers", "no providers are registered")
	ErrFetchLatestInvalidName = fault.New("fetch_latest_invalid_name", "provider name is invalid or unknown")
	ErrFetchLatestUnsupported = fault.New("fetch_latest_unsupported", "provider does not support fetching latest media")

	ErrFetchByUserNoProviders = fault.New("fetch_by_user_no_providers", "no providers are registered")
	ErrFetchByUserInvalidName = fault.New("fetch_by_user_invalid_name", "provider name is invalid or unknown")
	ErrFetchByUserUnsupported = fault.New("fetch_by_user_unsupported", "provider does not support fetching by user")

	ErrFetchByTagsNoProviders = fault.New("fetch_by_tags_no_providers", "no providers are registered")
	ErrFetchByTagsInvalidName = fault.New("fetch_by_tags_invalid_name", "provider name is invalid or unknown")
	ErrFetchByTagsUnsupported = fault.New("fetch_by_tags_unsupported", "provider does not support fetching by tags")
)
