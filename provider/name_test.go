package provider

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewName(t *testing.T) {
	Convey("Given a valid raw name", t, func() {
		name, err := NewName("exampleprovider")

		Convey("Then it constructs with the normalized value", func() {
			So(err, ShouldBeNil)
			So(name.String(), ShouldEqual, "exampleprovider")
		})
	})

	Convey("Normalization", t, func() {
		Convey("Lowercases the input", func() {
			name, err := NewName("ExampleProvider")
			So(err, ShouldBeNil)
			So(name.String(), ShouldEqual, "exampleprovider")
		})

		Convey("Strips surrounding whitespace", func() {
			name, err := NewName("  exampleprovider  ")
			So(err, ShouldBeNil)
			So(name.String(), ShouldEqual, "exampleprovider")
		})

		Convey("Strips non-alphanumeric characters", func() {
			name, err := NewName("example provider!@#")
			So(err, ShouldBeNil)
			So(name.String(), ShouldEqual, "exampleprovider")
		})

		Convey("Is idempotent", func() {
			raw := "  Deviant-Art!  "
			So(Normalize(Normalize(raw)), ShouldEqual, Normalize(raw))
		})
	})

	Convey("Given an empty raw name", t, func() {
		_, err := NewName("")

		Convey("Then construction fails", func() {
			So(errors.Is(err, ErrEmptyName), ShouldBeTrue)
		})
	})

	Convey("Given a whitespace-only raw name", t, func() {
		_, err := NewName("   ")

		Convey("Then construction fails", func() {
			So(errors.Is(err, ErrEmptyName), ShouldBeTrue)
		})
	})

	Convey("Given a raw name with only non-alphanumeric characters", t, func() {
		_, err := NewName("!@#$%")

		Convey("Then construction fails", func() {
			So(errors.Is(err, ErrNameNormalizesToEmpty), ShouldBeTrue)
		})
	})
}

func TestNameEquality(t *testing.T) {
	Convey("Names constructed from equivalent raw strings are equal", t, func() {
		a, err := NewName("DeviantArt")
		So(err, ShouldBeNil)

		b, err := NewName("deviant art")
		So(err, ShouldBeNil)

		c, err := NewName("civitai")
		So(err, ShouldBeNil)

		So(a == b, ShouldBeTrue)
		So(a == c, ShouldBeFalse)
	})

	Convey("EqualString re-normalizes the right-hand side", t, func() {
		name, err := NewName("deviantart")
		So(err, ShouldBeNil)

		So(name.EqualString("  DeviantArt  "), ShouldBeTrue)
		So(name.EqualString("deviant-art!"), ShouldBeTrue)
		So(name.EqualString("civitai"), ShouldBeFalse)
	})
}
