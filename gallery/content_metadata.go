package gallery

import "encoding/json"

// ContentMetadata captures the technical shape of a media file: its
// content type, pixel dimensions and size on disk. Immutable.
type ContentMetadata struct {
	contentType   ContentType
	width, height int
	fileSizeBytes int64
}

// NewContentMetadata validates and assembles content metadata.
func NewContentMetadata(contentType ContentType, width, height int, fileSizeBytes int64) (ContentMetadata, error) {
	if !contentType.Valid() {
		return ContentMetadata{}, ErrUnknownContentType
	}
	if width < 0 || height < 0 {
		return ContentMetadata{}, ErrNegativeDimensions
	}
	if fileSizeBytes < 0 {
		return ContentMetadata{}, ErrNegativeFileSize
	}

	return ContentMetadata{
		contentType:   contentType,
		width:         width,
		height:        height,
		fileSizeBytes: fileSizeBytes,
	}, nil
}

// ContentType returns the media MIME tag.
func (c ContentMetadata) ContentType() ContentType {
	return c.contentType
}

// Width returns the horizontal pixel dimension.
func (c ContentMetadata) Width() int {
	return c.width
}

// Height returns the vertical pixel dimension.
func (c ContentMetadata) Height() int {
	return c.height
}

// FileSizeBytes returns the size of the media file in bytes.
func (c ContentMetadata) FileSizeBytes() int64 {
	return c.fileSizeBytes
}

// AspectRatio returns width divided by height, or zero for degenerate dimensions.
func (c ContentMetadata) AspectRatio() float64 {
	if c.height == 0 {
		return 0
	}
	return float64(c.width) / float64(c.height)
}

// IsPortrait reports whether the media is taller than wide.
func (c ContentMetadata) IsPortrait() bool {
	return c.height > c.width
}

// IsLandscape reports whether the media is wider than tall.
func (c ContentMetadata) IsLandscape() bool {
	return c.width > c.height
}

// IsSquare reports whether both dimensions match.
func (c ContentMetadata) IsSquare() bool {
	return c.width == c.height
}

// FileSizeKB returns the file size in kibibytes.
func (c ContentMetadata) FileSizeKB() float64 {
	return float64(c.fileSizeBytes) / 1024
}

// FileSizeMB returns the file size in mebibytes.
func (c ContentMetadata) FileSizeMB() float64 {
	return float64(c.fileSizeBytes) / (1024 * 1024)
}

// FileExtension maps the content type to its canonical filename
// extension. Types without a canonical mapping yield an empty string.
func (c ContentMetadata) FileExtension() string {
	switch c.contentType {
	case ContentTypeJPEG:
		return "jpg"
	case ContentTypePNG:
		return "png"
	case ContentTypeGIF:
		return "gif"
	case ContentTypeMP4:
		return "mp4"
	default:
		return ""
	}
}

// contentMetadataDocument is the wire shape of content metadata.
type contentMetadataDocument struct {
	ContentType ContentType `json:"content_type"`
	Dimensions  struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"dimensions"`
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// MarshalJSON encodes the metadata using its external wire contract.
func (c ContentMetadata) MarshalJSON() ([]byte, error) {
	var doc contentMetadataDocument
	doc.ContentType = c.contentType
	doc.Dimensions.Width = c.width
	doc.Dimensions.Height = c.height
	doc.FileSizeBytes = c.fileSizeBytes
	return json.Marshal(doc)
}

// UnmarshalJSON decodes and re-validates the wire representation.
func (c *ContentMetadata) UnmarshalJSON(data []byte) error {
	var doc contentMetadataDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	meta, err := NewContentMetadata(doc.ContentType, doc.Dimensions.Width, doc.Dimensions.Height, doc.FileSizeBytes)
	if err != nil {
		return err
	}

	*c = meta
	return nil
}
