package gallery

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/galeriafora-cli/galeriafora/provider"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func testInfo() provider.Info {
	name := lo.Must(provider.NewName("danbooru"))
	return lo.Must(provider.NewInfo(
		name,
		[]provider.Capability{provider.CapabilityFetchLatest, provider.CapabilityUpload},
		mo.None[string](),
	))
}

func testMeta() ContentMetadata {
	return lo.Must(NewContentMetadata(ContentTypeJPEG, 800, 600, 1234))
}

func mustMedia(title string) Media {
	return lo.Must(NewMedia(
		"https://cdn.example.com/a.jpg",
		title,
		"",
		testMeta(),
		[]string{"landscape", "sunset"},
		MatureRatingPG,
		mo.None[AiMetadata](),
		testInfo(),
	))
}

func TestMedia(t *testing.T) {
	Convey("Constructing with valid fields succeeds", t, func() {
		media := mustMedia("Sunset")

		So(media.URL(), ShouldEqual, "https://cdn.example.com/a.jpg")
		So(media.Title(), ShouldEqual, "Sunset")
		So(media.Tags(), ShouldResemble, []string{"landscape", "sunset"})
		So(media.MatureRating(), ShouldEqual, MatureRatingPG)
		So(media.AiMetadata().IsAbsent(), ShouldBeTrue)
		So(media.Provider().Name().String(), ShouldEqual, "danbooru")
	})

	Convey("A url without scheme or host is rejected", t, func() {
		for _, raw := range []string{"", "not-a-url", "cdn.example.com/a.jpg", "https://", "https://cdn.example.com/a b.jpg"} {
			_, err := NewMedia(raw, "t", "", testMeta(), nil, MatureRatingPG, mo.None[AiMetadata](), testInfo())

			So(errors.Is(err, ErrMediaInvalidURL), ShouldBeTrue)
		}
	})

	Convey("A blank title is rejected", t, func() {
		for _, title := range []string{"", "   ", "\t\n"} {
			_, err := NewMedia("https://e.com/a", title, "", testMeta(), nil, MatureRatingPG, mo.None[AiMetadata](), testInfo())

			So(errors.Is(err, ErrMediaEmptyTitle), ShouldBeTrue)
		}
	})

	Convey("Length limits count runes, not bytes", t, func() {
		media, err := NewMedia(
			"https://e.com/a",
			strings.Repeat("日", MaxTitleLength),
			strings.Repeat("本", MaxDescriptionLength),
			testMeta(), nil, MatureRatingPG, mo.None[AiMetadata](), testInfo(),
		)
		So(err, ShouldBeNil)
		So(media.Title(), ShouldNotBeEmpty)

		_, err = NewMedia("https://e.com/a", strings.Repeat("日", MaxTitleLength+1), "", testMeta(), nil, MatureRatingPG, mo.None[AiMetadata](), testInfo())
		So(errors.Is(err, ErrMediaTitleTooLong), ShouldBeTrue)

		_, err = NewMedia("https://e.com/a", "t", strings.Repeat("本", MaxDescriptionLength+1), testMeta(), nil, MatureRatingPG, mo.None[AiMetadata](), testInfo())
		So(errors.Is(err, ErrMediaDescriptionTooLong), ShouldBeTrue)
	})

	Convey("More than the tag limit is rejected", t, func() {
		tags := make([]string, MaxTags+1)
		for i := range tags {
			tags[i] = "tag"
		}

		_, err := NewMedia("https://e.com/a", "t", "", testMeta(), tags, MatureRatingPG, mo.None[AiMetadata](), testInfo())

		So(errors.Is(err, ErrMediaTooManyTags), ShouldBeTrue)
	})

	Convey("Zero provider info is rejected", t, func() {
		_, err := NewMedia("https://e.com/a", "t", "", testMeta(), nil, MatureRatingPG, mo.None[AiMetadata](), provider.Info{})

		So(errors.Is(err, ErrMediaInvalidProvider), ShouldBeTrue)
	})

	Convey("Validation order reports the url before the title", t, func() {
		_, err := NewMedia("not a url", "", "", testMeta(), nil, MatureRatingPG, mo.None[AiMetadata](), provider.Info{})

		So(errors.Is(err, ErrMediaInvalidURL), ShouldBeTrue)
	})

	Convey("Tags are copied on construction and on read", t, func() {
		tags := []string{"a", "b"}
		media := lo.Must(NewMedia("https://e.com/a", "t", "", testMeta(), tags, MatureRatingPG, mo.None[AiMetadata](), testInfo()))

		tags[0] = "mutated"
		got := media.Tags()
		got[1] = "mutated"

		So(media.Tags(), ShouldResemble, []string{"a", "b"})
	})

	Convey("Equal compares all fields", t, func() {
		So(mustMedia("Sunset").Equal(mustMedia("Sunset")), ShouldBeTrue)
		So(mustMedia("Sunset").Equal(mustMedia("Sunrise")), ShouldBeFalse)

		withAi := lo.Must(NewMedia(
			"https://cdn.example.com/a.jpg", "Sunset", "", testMeta(),
			[]string{"landscape", "sunset"}, MatureRatingPG,
			mo.Some(AiGenerated()), testInfo(),
		))
		So(mustMedia("Sunset").Equal(withAi), ShouldBeFalse)
	})

	Convey("Marshaling emits the wire document", t, func() {
		data, err := json.Marshal(mustMedia("Sunset"))

		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, `{"url":"https://cdn.example.com/a.jpg","title":"Sunset","description":"","content_metadata":{"content_type":"image/jpeg","dimensions":{"width":800,"height":600},"file_size_bytes":1234},"tags":["landscape","sunset"],"mature_rating":"pg","ai_metadata":null,"provider":{"name":"danbooru","description":null,"capabilities":["fetch_latest","upload"]}}`)
	})

	Convey("Unmarshaling re-validates the document", t, func() {
		data := lo.Must(json.Marshal(mustMedia("Sunset")))

		var decoded Media
		So(json.Unmarshal(data, &decoded), ShouldBeNil)
		So(decoded.Equal(mustMedia("Sunset")), ShouldBeTrue)

		var invalid Media
		err := json.Unmarshal([]byte(strings.Replace(string(data), `"Sunset"`, `"  "`, 1)), &invalid)
		So(errors.Is(err, ErrMediaEmptyTitle), ShouldBeTrue)
	})
}
