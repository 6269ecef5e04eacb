package fileprovider

import (
	"strconv"

	"github.com/galeriafora-cli/galeriafora/gallery"
	"github.com/samber/mo"
)

// paginate slices a window of size limit out of items starting at the
// offset encoded in cursor. The empty cursor means the start; any
// cursor returned on a page is a plain decimal offset into the same
// ordering.
func paginate(items []gallery.Media, limit int, cursor string) (gallery.Page[gallery.Media], error) {
	if limit <= 0 {
		return gallery.Page[gallery.Media]{}, ErrNonPositiveLimit
	}

	offset, err := parseCursor(cursor)
	if err != nil {
		return gallery.Page[gallery.Media]{}, err
	}

	if offset >= len(items) {
		return gallery.NewPage([]gallery.Media{}, mo.None[string](), false)
	}

	end := offset + limit
	if end >= len(items) {
		return gallery.NewPage(items[offset:], mo.None[string](), false)
	}

	return gallery.NewPage(items[offset:end], mo.Some(strconv.Itoa(end)), true)
}

func parseCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(cursor)
	if err != nil {
		return 0, ErrInvalidCursor.Because(err)
	}
	if offset < 0 {
		return 0, ErrInvalidCursor
	}
	return offset, nil
}
