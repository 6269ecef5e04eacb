package provider

import (
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCapability(t *testing.T) {
	Convey("Every enumerated capability is valid", t, func() {
		for _, c := range Capabilities() {
			So(c.Valid(), ShouldBeTrue)
		}
	})

	Convey("Wire strings are stable", t, func() {
		So(CapabilityFetchLatest.String(), ShouldEqual, "fetch_latest")
		So(CapabilityFetchByUser.String(), ShouldEqual, "fetch_by_user")
		So(CapabilityFetchByTags.String(), ShouldEqual, "fetch_by_tags")
		So(CapabilityUpload.String(), ShouldEqual, "upload")
	})

	Convey("ParseCapability", t, func() {
		Convey("Accepts known wire strings", func() {
			c, err := ParseCapability("fetch_by_tags")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, CapabilityFetchByTags)
		})

		Convey("Rejects unknown values", func() {
			_, err := ParseCapability("teleport")
			So(errors.Is(err, ErrUnknownCapability), ShouldBeTrue)
		})
	})

	Convey("JSON decoding validates membership", t, func() {
		var c Capability
		So(json.Unmarshal([]byte(`"upload"`), &c), ShouldBeNil)
		So(c, ShouldEqual, CapabilityUpload)

		So(json.Unmarshal([]byte(`"warp"`), &c), ShouldNotBeNil)
	})
}
