package util

import (
	"testing"

	"github.com/galeriafora-cli/galeriafora/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "provider", "providers"), ShouldEqual, "1 provider")
		So(Quantify(3, "provider", "providers"), ShouldEqual, "3 providers")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("catalog"), ShouldEqual, "Catalog")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()

		Convey("Removes a file", func() {
			So(filesystem.API().WriteFile("victim.json", []byte("{}"), 0644), ShouldBeNil)
			So(Delete("victim.json"), ShouldBeNil)

			exists, err := filesystem.API().Exists("victim.json")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})

		Convey("Removes a directory tree", func() {
			So(filesystem.API().MkdirAll("victims/nested", 0755), ShouldBeNil)
			So(Delete("victims"), ShouldBeNil)

			exists, err := filesystem.API().DirExists("victims")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}
