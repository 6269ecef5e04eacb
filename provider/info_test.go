package provider

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func mustName(raw string) Name {
	return lo.Must(NewName(raw))
}

func TestNewInfo(t *testing.T) {
	Convey("Given a name and capabilities", t, func() {
		info, err := NewInfo(
			mustName("deviantart"),
			[]Capability{CapabilityFetchLatest, CapabilityUpload},
			mo.Some("Art community gallery"),
		)

		Convey("Then it constructs", func() {
			So(err, ShouldBeNil)
			So(info.Name().String(), ShouldEqual, "deviantart")
			So(info.Capabilities(), ShouldResemble, []Capability{CapabilityFetchLatest, CapabilityUpload})
			So(info.Description().MustGet(), ShouldEqual, "Art community gallery")
		})

		Convey("And capability membership is queryable", func() {
			So(info.HasCapability(CapabilityFetchLatest), ShouldBeTrue)
			So(info.HasCapability(CapabilityFetchByTags), ShouldBeFalse)
		})
	})

	Convey("Given a zero-value name", t, func() {
		_, err := NewInfo(Name{}, []Capability{CapabilityUpload}, mo.None[string]())

		Convey("Then construction fails", func() {
			So(errors.Is(err, ErrInfoEmptyName), ShouldBeTrue)
		})
	})

	Convey("Given no capabilities", t, func() {
		_, err := NewInfo(mustName("flickr"), nil, mo.None[string]())

		Convey("Then construction fails", func() {
			So(errors.Is(err, ErrInfoNoCapabilities), ShouldBeTrue)
		})
	})

	Convey("Given an unrecognized capability", t, func() {
		_, err := NewInfo(mustName("flickr"), []Capability{Capability("teleport")}, mo.None[string]())

		Convey("Then construction fails", func() {
			So(errors.Is(err, ErrInfoInvalidCapability), ShouldBeTrue)
		})
	})
}

func TestInfoEqual(t *testing.T) {
	Convey("Capability order does not affect identity", t, func() {
		a := lo.Must(NewInfo(mustName("flickr"), []Capability{CapabilityFetchLatest, CapabilityUpload}, mo.None[string]()))
		b := lo.Must(NewInfo(mustName("flickr"), []Capability{CapabilityUpload, CapabilityFetchLatest}, mo.None[string]()))
		c := lo.Must(NewInfo(mustName("flickr"), []Capability{CapabilityUpload}, mo.None[string]()))

		So(a.Equal(b), ShouldBeTrue)
		So(a.Equal(c), ShouldBeFalse)
	})
}

func TestInfoJSON(t *testing.T) {
	Convey("Round-trip preserves the info", t, func() {
		original := lo.Must(NewInfo(
			mustName("civitai"),
			[]Capability{CapabilityFetchLatest, CapabilityFetchByTags},
			mo.Some("AI model sharing gallery"),
		))

		data, err := json.Marshal(original)
		So(err, ShouldBeNil)

		var decoded Info
		So(json.Unmarshal(data, &decoded), ShouldBeNil)
		So(decoded.Equal(original), ShouldBeTrue)
	})

	Convey("Capability wire strings appear verbatim", t, func() {
		info := lo.Must(NewInfo(mustName("civitai"), []Capability{CapabilityFetchByUser}, mo.None[string]()))

		data, err := json.Marshal(info)
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, `"fetch_by_user"`)
		So(string(data), ShouldContainSubstring, `"description":null`)
	})

	Convey("Decoding rejects an empty capability list", t, func() {
		var decoded Info
		err := json.Unmarshal([]byte(`{"name":"flickr","description":null,"capabilities":[]}`), &decoded)
		So(errors.Is(err, ErrInfoNoCapabilities), ShouldBeTrue)
	})
}
