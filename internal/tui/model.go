// Package tui is a terminal browser for the guide.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/bpguide/internal/guide"
	"github.com/ziadkadry99/bpguide/internal/view"
)

// Options configures the browser.
type Options struct {
	Title string
	// Style is a glamour standard style name; empty picks one from the terminal.
	Style string
	// Section is shown first instead of the registry default.
	Section string
}

// Model is the bubbletea model. It owns one view.State; the viewport line
// offset stands in for the page scroll offset, so the header is scrolled as
// soon as the first line leaves the screen.
type Model struct {
	opts     Options
	reg      *guide.Registry
	state    *view.State
	sections []guide.Section
	cursor   int

	viewport viewport.Model
	renderer *glamour.TermRenderer
	wrap     int
	width    int
	height   int
	ready    bool
	status   string
}

// New returns the initial model.
func New(reg *guide.Registry, opts Options) Model {
	m := Model{
		opts:     opts,
		reg:      reg,
		state:    view.New(reg, view.WithScrollThreshold(0), view.WithSection(opts.Section)),
		sections: reg.Catalog().Sections(),
	}
	m.cursor = m.indexOf(m.state.ActiveSectionID())
	return m
}

// Run starts the browser on the alternate screen and blocks until it exits.
func Run(reg *guide.Registry, opts Options) error {
	p := tea.NewProgram(New(reg, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// State exposes the view state.
func (m Model) State() *view.State { return m.state }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bodyHeight := max(m.height-3, 3)
		if !m.ready {
			m.viewport = viewport.New(m.contentWidth(), bodyHeight)
			m.ready = true
		} else {
			m.viewport.Height = bodyHeight
		}
		m.refresh(true)
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit

		case key.Matches(msg, keys.menu):
			m.state.ToggleSidebar()
			if m.state.SidebarOpen() {
				m.cursor = m.indexOf(m.state.ActiveSectionID())
			}
			m.refresh(true)
			return m, nil

		case key.Matches(msg, keys.close):
			if m.state.SidebarOpen() {
				m.state.CloseSidebar()
				m.refresh(true)
			}
			return m, nil

		case m.state.SidebarOpen() && key.Matches(msg, keys.up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case m.state.SidebarOpen() && key.Matches(msg, keys.down):
			if m.cursor < len(m.sections)-1 {
				m.cursor++
			}
			return m, nil

		case m.state.SidebarOpen() && key.Matches(msg, keys.open):
			prev := m.state.ActiveSectionID()
			if err := m.state.SelectSection(m.sections[m.cursor].ID); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.refresh(m.state.ActiveSectionID() == prev)
			return m, nil

		case key.Matches(msg, keys.accordion):
			i := int(msg.Runes[0] - '1')
			if _, err := m.state.ToggleAccordion(i); err != nil {
				m.status = fmt.Sprintf("no item %d in this section", i+1)
				return m, nil
			}
			m.refresh(true)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.state.ObserveScroll(m.viewport.YOffset)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := m.opts.Title
	if title == "" {
		title = "Oracle Unifier BP Guide"
	}
	hs := headerStyle
	if m.state.HeaderScrolled() {
		hs = scrolledHeaderStyle
	}
	header := hs.Render(fmt.Sprintf("📖 %s  ·  %s", title, m.state.Content().Title))

	body := m.viewport.View()
	if m.state.SidebarOpen() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), body)
	}

	footer := helpStyle.Render(helpLine(keys.help(m.state.SidebarOpen())))
	if m.status != "" {
		footer = errorStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) sidebarView() string {
	var sb strings.Builder
	current := m.sections[m.cursor].ID
	for _, g := range m.reg.Catalog().Groups() {
		cat := lipgloss.NewStyle().Bold(true).Foreground(categoryColors[g.Category.Color])
		sb.WriteString(cat.Render(strings.ToUpper(g.Category.Title)))
		sb.WriteString("\n")
		for _, s := range g.Sections {
			cursor := "  "
			if s.ID == current {
				cursor = "› "
			}
			line := fmt.Sprintf("%s %s", guide.Glyph(s.Icon), s.Title)
			style := itemStyle
			if s.ID == m.state.ActiveSectionID() {
				style = activeItemStyle
			}
			sb.WriteString(cursor + style.Render(line) + "\n")
		}
		sb.WriteString("\n")
	}
	return sidebarStyle.Height(m.viewport.Height).Render(strings.TrimRight(sb.String(), "\n"))
}

// refresh re-renders the active content into the viewport. With keepOffset
// unset the viewport returns to the top.
func (m *Model) refresh(keepOffset bool) {
	if !m.ready {
		return
	}
	w := m.contentWidth()
	if m.renderer == nil || m.wrap != w {
		style := glamour.WithAutoStyle()
		if m.opts.Style != "" {
			style = glamour.WithStandardStyle(m.opts.Style)
		}
		r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(w))
		if err != nil {
			m.status = err.Error()
			return
		}
		m.renderer, m.wrap = r, w
	}

	md := m.state.Content().Markdown(func(i int) bool { return m.state.Accordion(i).IsOpen() })
	out, err := m.renderer.Render(md)
	if err != nil {
		m.status = err.Error()
		out = md
	}

	offset := m.viewport.YOffset
	m.viewport.Width = w
	m.viewport.SetContent(out)
	if keepOffset {
		m.viewport.SetYOffset(offset)
	} else {
		m.viewport.GotoTop()
	}
	m.state.ObserveScroll(m.viewport.YOffset)
}

func (m Model) contentWidth() int {
	w := m.width
	if m.state.SidebarOpen() {
		w -= sidebarWidth + 3
	}
	return max(w-2, 20)
}

func (m Model) indexOf(id string) int {
	for i, s := range m.sections {
		if s.ID == id {
			return i
		}
	}
	return 0
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+dimStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  •  ")
}
