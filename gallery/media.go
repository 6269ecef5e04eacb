package gallery

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/galeriafora-cli/galeriafora/provider"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Structural limits for media entities.
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 2048
	MaxTags              = 30
)

// Media is an immutable media item fetched from or destined for an
// external gallery provider. Construct through NewMedia; the zero value
// is invalid.
type Media struct {
	url         string
	title       string
	description string
	content     ContentMetadata
	tags        []string
	rating      MatureRating
	ai          mo.Option[AiMetadata]
	provider    provider.Info
}

// NewMedia validates and assembles a media entity. Validations run in a
// fixed order and the first failure wins: URL, title presence, title
// length, description length, tag count, provider.
func NewMedia(
	rawURL string,
	title string,
	description string,
	content ContentMetadata,
	tags []string,
	rating MatureRating,
	ai mo.Option[AiMetadata],
	prov provider.Info,
) (Media, error) {
	if !validMediaURL(rawURL) {
		return Media{}, ErrMediaInvalidURL
	}
	if strings.TrimSpace(title) == "" {
		return Media{}, ErrMediaEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return Media{}, ErrMediaTitleTooLong
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return Media{}, ErrMediaDescriptionTooLong
	}
	if len(tags) > MaxTags {
		return Media{}, ErrMediaTooManyTags
	}
	if prov.IsZero() {
		return Media{}, ErrMediaInvalidProvider
	}

	return Media{
		url:         rawURL,
		title:       title,
		description: description,
		content:     content,
		tags:        slices.Clone(tags),
		rating:      rating,
		ai:          ai,
		provider:    prov,
	}, nil
}

// validMediaURL requires a parseable URL with both a scheme and a host,
// and rejects any embedded space.
func validMediaURL(raw string) bool {
	if raw == "" || strings.Contains(raw, " ") {
		return false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

// URL returns the direct link to the media resource.
func (m Media) URL() string {
	return m.url
}

// Title returns the display title.
func (m Media) Title() string {
	return m.title
}

// Description returns the free-form description, possibly empty.
func (m Media) Description() string {
	return m.description
}

// ContentMetadata returns the technical file metadata.
func (m Media) ContentMetadata() ContentMetadata {
	return m.content
}

// Tags returns the ordered tag sequence. Duplicates are allowed.
func (m Media) Tags() []string {
	return slices.Clone(m.tags)
}

// MatureRating returns the content maturity level.
func (m Media) MatureRating() MatureRating {
	return m.rating
}

// AiMetadata returns the optional AI-generation marker.
func (m Media) AiMetadata() mo.Option[AiMetadata] {
	return m.ai
}

// Provider returns the info of the provider that owns the media.
func (m Media) Provider() provider.Info {
	return m.provider
}

// Equal compares every field; tags are compared as an ordered sequence.
func (m Media) Equal(other Media) bool {
	return m.url == other.url &&
		m.title == other.title &&
		m.description == other.description &&
		m.content == other.content &&
		slices.Equal(m.tags, other.tags) &&
		m.rating == other.rating &&
		m.ai == other.ai &&
		m.provider.Equal(other.provider)
}

func (m Media) String() string {
	return fmt.Sprintf("Media(url=%s, title=%s, provider=%s)", m.url, m.title, m.provider.Name())
}

// MediaDocument is the wire shape of a media entity. Field names and
// nested enum strings are part of the external contract.
type MediaDocument struct {
	URL             string                `json:"url"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	ContentMetadata ContentMetadata       `json:"content_metadata"`
	Tags            []string              `json:"tags"`
	MatureRating    MatureRating          `json:"mature_rating"`
	AiMetadata      mo.Option[AiMetadata] `json:"ai_metadata"`
	Provider        provider.Info         `json:"provider"`
}

// MarshalJSON encodes the media using its external wire contract.
func (m Media) MarshalJSON() ([]byte, error) {
	tags := m.tags
	if tags == nil {
		tags = []string{}
	}

	return json.Marshal(MediaDocument{
		URL:             m.url,
		Title:           m.title,
		Description:     m.description,
		ContentMetadata: m.content,
		Tags:            tags,
		MatureRating:    m.rating,
		AiMetadata:      m.ai,
		Provider:        m.provider,
	})
}

// UnmarshalJSON decodes and re-validates the wire representation.
// Every entity invariant is enforced again on the way in.
func (m *Media) UnmarshalJSON(data []byte) error {
	var doc MediaDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	media, err := NewMedia(
		doc.URL,
		doc.Title,
		doc.Description,
		doc.ContentMetadata,
		doc.Tags,
		doc.MatureRating,
		doc.AiMetadata,
		doc.Provider,
	)
	if err != nil {
		return err
	}

	*m = media
	return nil
}
