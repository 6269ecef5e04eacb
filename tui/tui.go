// Package tui implements the interactive gallery browser on top of
// Bubble Tea.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/galeriafora-cli/galeriafora/gallery"
)

// Options encapsulates the runtime configuration for the browser.
type Options struct {
	// Title is shown above the media list, usually the provider name.
	Title string

	// First is the initial page to display.
	First gallery.Page[gallery.Media]

	// Next fetches the page at the given cursor. Called when the user
	// asks for more results and the current page has them.
	Next func(cursor string) (gallery.Page[gallery.Media], error)
}

// Run initializes and executes the browser application loop.
func Run(options *Options) error {
	bubble := newBubble(options)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
