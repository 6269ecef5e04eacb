package gallery

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPage(t *testing.T) {
	Convey("A final page carries no cursor", t, func() {
		page, err := NewPage([]int{1, 2, 3}, mo.None[string](), false)

		So(err, ShouldBeNil)
		So(page.Items(), ShouldResemble, []int{1, 2, 3})
		So(page.Len(), ShouldEqual, 3)
		So(page.HasMore(), ShouldBeFalse)
		So(page.NextCursor().IsAbsent(), ShouldBeTrue)
	})

	Convey("A continued page carries a cursor", t, func() {
		page, err := NewPage([]int{1}, mo.Some("abc"), true)

		So(err, ShouldBeNil)
		So(page.HasMore(), ShouldBeTrue)
		So(page.NextCursor().MustGet(), ShouldEqual, "abc")
	})

	Convey("More items without a cursor is inconsistent", t, func() {
		_, err := NewPage([]int{1}, mo.None[string](), true)

		So(errors.Is(err, ErrPageMissingNextCursor), ShouldBeTrue)
	})

	Convey("A cursor without more items is inconsistent", t, func() {
		_, err := NewPage([]int{1}, mo.Some("abc"), false)

		So(errors.Is(err, ErrPageUnexpectedNextCursor), ShouldBeTrue)
	})

	Convey("An empty continued page is allowed", t, func() {
		page, err := NewPage([]int{}, mo.Some("abc"), true)

		So(err, ShouldBeNil)
		So(page.Len(), ShouldEqual, 0)
	})

	Convey("Items are copied on construction and on read", t, func() {
		items := []int{1, 2}
		page := lo.Must(NewPage(items, mo.None[string](), false))

		items[0] = 99
		got := page.Items()
		got[1] = 99

		So(page.Items(), ShouldResemble, []int{1, 2})
	})

	Convey("Marshaling emits the wire document", t, func() {
		final := lo.Must(NewPage([]int{1, 2}, mo.None[string](), false))
		continued := lo.Must(NewPage([]int{}, mo.Some("abc"), true))

		So(string(lo.Must(json.Marshal(final))), ShouldEqual, `{"items":[1,2],"next_cursor":null,"has_more":false}`)
		So(string(lo.Must(json.Marshal(continued))), ShouldEqual, `{"items":[],"next_cursor":"abc","has_more":true}`)
	})

	Convey("Unmarshaling re-validates the document", t, func() {
		var page Page[int]

		So(json.Unmarshal([]byte(`{"items":[7],"next_cursor":"n","has_more":true}`), &page), ShouldBeNil)
		So(page.Items(), ShouldResemble, []int{7})
		So(page.NextCursor().MustGet(), ShouldEqual, "n")

		err := json.Unmarshal([]byte(`{"items":[],"next_cursor":"n","has_more":false}`), &page)
		So(errors.Is(err, ErrPageUnexpectedNextCursor), ShouldBeTrue)
	})
}
