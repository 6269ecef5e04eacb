package gallery

import "encoding/json"

// ContentType enumerates the supported media MIME tags.
// The wire strings are part of the external contract.
type ContentType string

const (
	ContentTypeJPEG ContentType = "image/jpeg"
	ContentTypePNG  ContentType = "image/png"
	ContentTypeMP4  ContentType = "video/mp4"
	ContentTypeWebM ContentType = "video/webm"
	ContentTypeGIF  ContentType = "image/gif"
)

// ContentTypes lists every member of the closed enumeration.
func ContentTypes() []ContentType {
	return []ContentType{ContentTypeJPEG, ContentTypePNG, ContentTypeMP4, ContentTypeWebM, ContentTypeGIF}
}

// Valid reports whether the content type belongs to the closed enumeration.
func (c ContentType) Valid() bool {
	switch c {
	case ContentTypeJPEG, ContentTypePNG, ContentTypeMP4, ContentTypeWebM, ContentTypeGIF:
		return true
	}
	return false
}

func (c ContentType) String() string {
	return string(c)
}

// ParseContentType converts a wire string into a ContentType.
func ParseContentType(s string) (ContentType, error) {
	c := ContentType(s)
	if !c.Valid() {
		return "", ErrUnknownContentType
	}
	return c, nil
}

// UnmarshalJSON decodes and validates the wire representation.
func (c *ContentType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseContentType(s)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}
