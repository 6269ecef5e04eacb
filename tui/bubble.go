package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/galeriafora-cli/galeriafora/gallery"
	"github.com/galeriafora-cli/galeriafora/open"
	"github.com/galeriafora-cli/galeriafora/style"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type pageLoadedMsg gallery.Page[gallery.Media]

type loadFailedMsg struct{ err error }

// browseBubble holds the browser state: the media list, the cursor of
// the next page and the loading indicator.
type browseBubble struct {
	listC    list.Model
	spinnerC spinner.Model
	keymap   browseKeymap

	nextCursor mo.Option[string]
	loading    bool
	lastError  error

	width, height int

	options *Options
}

func newBubble(options *Options) *browseBubble {
	keymap := newBrowseKeymap()

	delegate := list.NewDefaultDelegate()
	listC := list.New(
		lo.Map(options.First.Items(), func(m gallery.Media, _ int) list.Item {
			return listItem{media: m}
		}),
		delegate,
		0, 0,
	)
	listC.Title = options.Title
	listC.AdditionalShortHelpKeys = keymap.shortHelp

	return &browseBubble{
		listC:      listC,
		spinnerC:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		keymap:     keymap,
		nextCursor: options.First.NextCursor(),
		options:    options,
	}
}

func (b *browseBubble) Init() tea.Cmd {
	return b.spinnerC.Tick
}

// loadNext fetches the page behind the current cursor off the UI loop.
func (b *browseBubble) loadNext() tea.Cmd {
	cursor, ok := b.nextCursor.Get()
	if !ok || b.options.Next == nil {
		return nil
	}

	b.loading = true
	return func() tea.Msg {
		page, err := b.options.Next(cursor)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return pageLoadedMsg(page)
	}
}

func (b *browseBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
		b.listC.SetSize(msg.Width, msg.Height-1)

	case tea.KeyMsg:
		if b.listC.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, b.keymap.forceQuit), key.Matches(msg, b.keymap.quit):
			return b, tea.Quit

		case key.Matches(msg, b.keymap.openURL):
			if item, ok := b.listC.SelectedItem().(listItem); ok {
				b.lastError = open.Start(item.media.URL())
			}
			return b, nil

		case key.Matches(msg, b.keymap.loadMore):
			if !b.loading {
				return b, b.loadNext()
			}
			return b, nil
		}

	case pageLoadedMsg:
		b.loading = false
		page := gallery.Page[gallery.Media](msg)
		b.nextCursor = page.NextCursor()

		items := b.listC.Items()
		for _, m := range page.Items() {
			items = append(items, listItem{media: m})
		}
		return b, b.listC.SetItems(items)

	case loadFailedMsg:
		b.loading = false
		b.lastError = msg.err
		return b, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd
	}

	var cmd tea.Cmd
	b.listC, cmd = b.listC.Update(msg)
	return b, cmd
}

func (b *browseBubble) View() string {
	status := ""
	switch {
	case b.loading:
		status = fmt.Sprintf("%s fetching more", b.spinnerC.View())
	case b.lastError != nil:
		status = style.ErrorTitle("error") + " " + wordwrap.String(b.lastError.Error(), b.width)
	case b.nextCursor.IsPresent():
		status = style.Faint("more available, press m")
	}

	return b.listC.View() + "\n" + status
}
