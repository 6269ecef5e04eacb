package gallery

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestContentMetadata(t *testing.T) {
	Convey("Constructing with valid fields succeeds", t, func() {
		meta, err := NewContentMetadata(ContentTypeJPEG, 1920, 1080, 2048)

		So(err, ShouldBeNil)
		So(meta.ContentType(), ShouldEqual, ContentTypeJPEG)
		So(meta.Width(), ShouldEqual, 1920)
		So(meta.Height(), ShouldEqual, 1080)
		So(meta.FileSizeBytes(), ShouldEqual, 2048)
	})

	Convey("An unknown content type is rejected", t, func() {
		_, err := NewContentMetadata(ContentType("image/bmp"), 100, 100, 100)

		So(errors.Is(err, ErrUnknownContentType), ShouldBeTrue)
	})

	Convey("Negative dimensions are rejected", t, func() {
		_, err := NewContentMetadata(ContentTypePNG, -1, 100, 100)
		So(errors.Is(err, ErrNegativeDimensions), ShouldBeTrue)

		_, err = NewContentMetadata(ContentTypePNG, 100, -1, 100)
		So(errors.Is(err, ErrNegativeDimensions), ShouldBeTrue)
	})

	Convey("A negative file size is rejected", t, func() {
		_, err := NewContentMetadata(ContentTypePNG, 100, 100, -1)

		So(errors.Is(err, ErrNegativeFileSize), ShouldBeTrue)
	})

	Convey("Zero dimensions are allowed", t, func() {
		meta, err := NewContentMetadata(ContentTypeGIF, 0, 0, 0)

		So(err, ShouldBeNil)
		So(meta.AspectRatio(), ShouldEqual, 0)
		So(meta.IsSquare(), ShouldBeTrue)
	})

	Convey("Orientation predicates follow the dimensions", t, func() {
		portrait := lo.Must(NewContentMetadata(ContentTypeJPEG, 1080, 1920, 1))
		landscape := lo.Must(NewContentMetadata(ContentTypeJPEG, 1920, 1080, 1))

		So(portrait.IsPortrait(), ShouldBeTrue)
		So(portrait.IsLandscape(), ShouldBeFalse)
		So(landscape.IsLandscape(), ShouldBeTrue)
		So(landscape.AspectRatio(), ShouldAlmostEqual, 16.0/9.0, 0.001)
	})

	Convey("File sizes convert to KB and MB", t, func() {
		meta := lo.Must(NewContentMetadata(ContentTypeMP4, 1, 1, 3*1024*1024))

		So(meta.FileSizeKB(), ShouldEqual, 3*1024)
		So(meta.FileSizeMB(), ShouldEqual, 3)
	})

	Convey("File extensions map from the content type", t, func() {
		So(lo.Must(NewContentMetadata(ContentTypeJPEG, 1, 1, 1)).FileExtension(), ShouldEqual, "jpg")
		So(lo.Must(NewContentMetadata(ContentTypePNG, 1, 1, 1)).FileExtension(), ShouldEqual, "png")
		So(lo.Must(NewContentMetadata(ContentTypeGIF, 1, 1, 1)).FileExtension(), ShouldEqual, "gif")
		So(lo.Must(NewContentMetadata(ContentTypeMP4, 1, 1, 1)).FileExtension(), ShouldEqual, "mp4")
		So(lo.Must(NewContentMetadata(ContentTypeWebM, 1, 1, 1)).FileExtension(), ShouldEqual, "")
	})

	Convey("Marshaling nests the dimensions", t, func() {
		meta := lo.Must(NewContentMetadata(ContentTypeJPEG, 800, 600, 1234))

		data, err := json.Marshal(meta)

		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, `{"content_type":"image/jpeg","dimensions":{"width":800,"height":600},"file_size_bytes":1234}`)
	})

	Convey("Unmarshaling re-validates the document", t, func() {
		var meta ContentMetadata

		So(json.Unmarshal([]byte(`{"content_type":"video/mp4","dimensions":{"width":640,"height":480},"file_size_bytes":99}`), &meta), ShouldBeNil)
		So(meta.ContentType(), ShouldEqual, ContentTypeMP4)
		So(meta.Width(), ShouldEqual, 640)

		err := json.Unmarshal([]byte(`{"content_type":"image/png","dimensions":{"width":-5,"height":1},"file_size_bytes":1}`), &meta)
		So(errors.Is(err, ErrNegativeDimensions), ShouldBeTrue)
	})
}
