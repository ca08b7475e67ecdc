// Package browse is a terminal browser for the topic comparison. Navigation
// goes through a router.Router, the same way the page follows its fragment.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/on-the-issues/internal/router"
	"github.com/ziadkadry99/on-the-issues/internal/topic"
	"github.com/ziadkadry99/on-the-issues/internal/view"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	// Below this width the two columns are stacked.
	sideBySideWidth = 80
)

// Model is the Bubble Tea model for the browser.
type Model struct {
	store       *topic.Store
	records     []topic.Record
	router      *router.Router
	unsubscribe func()

	selection router.Selection
	cursor    int
	editing   bool
	showAbout bool
	status    string

	input    textinput.Model
	viewport viewport.Model
	keys     keyMap
	help     help.Model
	width    int
	height   int
}

// New creates a browser over store and applies the initial fragment.
func New(store *topic.Store, fragment string) *Model {
	input := textinput.New()
	input.Prompt = "fragment: "
	input.Placeholder = "#topic_id"
	input.CharLimit = 120

	m := &Model{
		store:    store,
		records:  store.Records(),
		router:   router.New(store),
		input:    input,
		viewport: viewport.New(defaultWidth, defaultHeight),
		keys:     defaultKeys(),
		help:     help.New(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.unsubscribe = m.router.Subscribe(m.onSelection)
	m.resize()
	m.router.SetFragment(fragment)
	return m
}

// onSelection is the router subscription: it runs on every fragment change.
func (m *Model) onSelection(sel router.Selection) {
	m.selection = sel
	m.status = ""
	if sel.Found {
		for i, rec := range m.records {
			if rec.ID() == sel.ID {
				m.cursor = i
				break
			}
		}
	} else if sel.ID != "" {
		m.status = fmt.Sprintf("no topic %q", sel.ID)
	}
	m.refresh()
}

// Selection returns the current selection.
func (m *Model) Selection() router.Selection { return m.selection }

// Fragment returns the router's current fragment.
func (m *Model) Fragment() string { return m.router.Fragment() }

// Close detaches the model from its router.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateInput(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.About):
			m.showAbout = !m.showAbout
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			if m.showAbout {
				m.showAbout = false
				m.refresh()
			} else {
				m.router.Clear()
			}
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.records)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Open):
			if len(m.records) > 0 {
				m.showAbout = false
				m.router.Select(m.records[m.cursor].ID())
			}
			return m, nil
		case key.Matches(msg, m.keys.Fragment):
			m.editing = true
			m.input.SetValue("")
			return m, m.input.Focus()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// updateInput handles keys while the fragment prompt is open.
func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.editing = false
		m.input.Blur()
		m.showAbout = false
		m.router.SetFragment(strings.TrimSpace(m.input.Value()))
		return m, nil
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		return m, nil
	case tea.KeyCtrlC:
		m.Close()
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// resize fits the viewport between the header and the footer.
func (m *Model) resize() {
	h := m.height - lipgloss.Height(m.renderHeader()) - 2
	if h < 3 {
		h = 3
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
}

// refresh re-renders the scrollable body.
func (m *Model) refresh() {
	if m.showAbout {
		m.viewport.SetContent(m.renderAbout())
	} else {
		m.viewport.SetContent(m.renderDetail())
	}
	m.viewport.GotoTop()
}

func (m *Model) View() string {
	footer := m.help.View(m.keys)
	if m.editing {
		footer = m.input.View()
	} else if m.status != "" {
		footer = mutedStyle.Render(m.status) + "  " + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		footer,
	)
}

func (m *Model) renderHeader() string {
	title := m.store.Title()
	if m.selection.Found {
		title += ": " + m.selection.Record.Name
	}

	items := make([]string, 0, len(m.records))
	for i, rec := range m.records {
		name := rec.Name
		if m.selection.Found && rec.ID() == m.selection.ID {
			name = selectedStyle.Render(name)
		}
		if i == m.cursor {
			name = cursorStyle.Render("› ") + name
		} else {
			name = "  " + name
		}
		items = append(items, name)
	}
	nav := navStyle.Width(m.width).Render(strings.Join(items, "  "))
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), nav, "")
}

// renderDetail shows both columns of the selected topic. A miss shows a hint.
func (m *Model) renderDetail() string {
	if !m.selection.Found {
		return mutedStyle.Render("Select a topic above, or press # to enter a fragment.")
	}
	detail := view.BuildDetail(m.store, m.selection.Record)

	if m.width < sideBySideWidth {
		cols := make([]string, 0, len(detail.Columns))
		for _, col := range detail.Columns {
			cols = append(cols, renderColumn(col, m.width-2))
		}
		return lipgloss.JoinVertical(lipgloss.Left, cols...)
	}

	colWidth := m.width/2 - 2
	cols := make([]string, 0, len(detail.Columns))
	for _, col := range detail.Columns {
		cols = append(cols, renderColumn(col, colWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// renderColumn draws one side: its title, metadata and highlighted quotes.
// width excludes the column border.
func renderColumn(col view.Column, width int) string {
	inner := width - 2
	var parts []string

	heading := headingStyle.Render(col.Title)
	if col.URL != "" {
		heading += " " + mutedStyle.Render(col.URL)
	}
	parts = append(parts, heading)
	if len(col.Keywords) > 0 {
		parts = append(parts, mutedStyle.Render("Keywords: "+strings.Join(col.Keywords, ", ")))
	}
	if len(col.Excluded) > 0 {
		parts = append(parts, mutedStyle.Render("Excluding: "+strings.Join(col.Excluded, ", ")))
	}
	parts = append(parts, "")

	if len(col.Quotes) == 0 {
		parts = append(parts, mutedStyle.Render("No responses."))
	}
	for _, q := range col.Quotes {
		var sb strings.Builder
		for _, seg := range q.Segments {
			if seg.Match {
				sb.WriteString(matchStyle.Render(seg.Content))
			} else {
				sb.WriteString(seg.Content)
			}
		}
		parts = append(parts, quoteStyle.Width(inner-1).Render(sb.String()))
	}

	return columnStyle.Width(width).Render(strings.Join(parts, "\n"))
}

func (m *Model) renderAbout() string {
	about := strings.TrimSpace(m.store.About())
	if about == "" {
		about = "No description."
	}
	body := titleStyle.Render("About") + "\n\n" + about + "\n\n" + mutedStyle.Render("press ? or esc to close")
	return aboutStyle.Width(m.width - 2).Render(body)
}

// Run starts the browser on the terminal.
func Run(store *topic.Store, fragment string) error {
	m := New(store, fragment)
	defer m.Close()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
