package tui

import (
	"fmt"
	"strings"

	"github.com/galeriafora-cli/galeriafora/color"
	"github.com/galeriafora-cli/galeriafora/gallery"
	"github.com/galeriafora-cli/galeriafora/style"
)

// listItem wraps a media entity for terminal display.
type listItem struct {
	media gallery.Media
}

// Title renders the media title with its maturity tag.
func (t listItem) Title() string {
	title := t.media.Title()

	if rating := t.media.MatureRating(); rating != gallery.MatureRatingPG {
		title = fmt.Sprintf("%s %s", title, style.Tag(color.New("230"), color.Red)(rating.String()))
	}

	if ai, ok := t.media.AiMetadata().Get(); ok && ai.IsAiGenerated {
		title = fmt.Sprintf("%s %s", title, style.Faint("ai"))
	}

	return title
}

// Description renders the secondary line: tags when present, the
// resource URL otherwise.
func (t listItem) Description() string {
	if tags := t.media.Tags(); len(tags) > 0 {
		return style.Faint(strings.Join(tags, ", "))
	}
	return style.Faint(t.media.URL())
}

// FilterValue makes the list filterable by title.
func (t listItem) FilterValue() string {
	return t.media.Title()
}
