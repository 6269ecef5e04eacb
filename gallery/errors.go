// Package gallery defines the domain model for external media galleries:
// media entities, paginated results and the provider capability contract.
package gallery

import "github.com/galeriafora-cli/galeriafora/fault"

// Enumeration failures.
var (
	ErrUnknownContentType  = fault.New("content_type_unknown", "unknown content type")
	ErrUnknownMatureRating = fault.New("mature_rating_unknown", "unknown mature rating")
)

// Content metadata construction failures.
var (
	ErrNegativeDimensions = fault.New("content_metadata_negative_dimensions", "media dimensions cannot be negative")
	ErrNegativeFileSize   = fault.New("content_metadata_negative_file_size", "media file size cannot be negative")
)

// Media construction failures, one per validation step.
var (
	ErrMediaInvalidURL         = fault.New("media_invalid_url", "media url must parse with a scheme and host and contain no spaces")
	ErrMediaEmptyTitle         = fault.New("media_empty_title", "media title cannot be empty or whitespace")
	ErrMediaTitleTooLong       = fault.New("media_title_too_long", "media title cannot exceed 255 characters")
	ErrMediaDescriptionTooLong = fault.New("media_description_too_long", "media description cannot exceed 2048 characters")
	ErrMediaTooManyTags        = fault.New("media_too_many_tags", "media cannot carry more than 30 tags")
	ErrMediaInvalidProvider    = fault.New("media_invalid_provider", "media requires valid provider info")
)

// Page consistency failures. The cursor and the more-flag imply each
// other exactly; each direction of the violation is a distinct kind.
var (
	ErrPageMissingNextCursor    = fault.New("page_missing_next_cursor", "page with more items requires a next cursor")
	ErrPageUnexpectedNextCursor = fault.New("page_unexpected_next_cursor", "page without more items cannot carry a next cursor")
)
