package tui

import "github.com/charmbracelet/bubbles/key"

// browseKeymap defines the keyboard interactions of the browser.
type browseKeymap struct {
	quit, forceQuit, openURL, loadMore key.Binding
}

func newBrowseKeymap() browseKeymap {
	return browseKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		openURL: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o", "open url"),
		),
		loadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "load more"),
		),
	}
}

// shortHelp lists the extra bindings shown in the list's help line.
func (k browseKeymap) shortHelp() []key.Binding {
	return []key.Binding{k.openURL, k.loadMore, k.quit}
}
