package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ziadkadry99/bpguide/internal/guide"
)

func newTestModel(t *testing.T, section string) Model {
	t.Helper()
	reg, err := guide.Load("", "")
	if err != nil {
		t.Fatalf("guide.Load: %v", err)
	}
	m := New(reg, Options{Title: "Test Guide", Style: "notty", Section: section})
	return send(t, m, tea.WindowSizeMsg{Width: 120, Height: 20})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitialView(t *testing.T) {
	m := newTestModel(t, "")
	st := m.State()
	if st.ActiveSectionID() != "introduction" || st.SidebarOpen() || st.HeaderScrolled() {
		t.Fatalf("unexpected initial state: active=%s sidebar=%v scrolled=%v",
			st.ActiveSectionID(), st.SidebarOpen(), st.HeaderScrolled())
	}
	out := m.View()
	if !strings.Contains(out, "Test Guide") {
		t.Error("header should show the title")
	}
	if !strings.Contains(out, "Oracle Unifier BP Master Guide") {
		t.Error("content should show the introduction")
	}
	if strings.Contains(out, "BP TYPES") {
		t.Error("sidebar should start closed")
	}
}

func TestNotReady(t *testing.T) {
	reg, err := guide.Load("", "")
	if err != nil {
		t.Fatal(err)
	}
	if got := New(reg, Options{}).View(); got != "Loading..." {
		t.Errorf("View() before sizing = %q", got)
	}
}

func TestSidebarToggle(t *testing.T) {
	m := newTestModel(t, "")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.State().SidebarOpen() {
		t.Fatal("tab should open the sidebar")
	}
	out := m.View()
	for _, cat := range []string{"OVERVIEW", "BP TYPES", "IMPLEMENTATION", "RESOURCES"} {
		if !strings.Contains(out, cat) {
			t.Errorf("sidebar missing category %s", cat)
		}
	}
	if strings.Index(out, "OVERVIEW") > strings.Index(out, "RESOURCES") {
		t.Error("categories out of order")
	}

	m = send(t, m, runes("m"))
	if m.State().SidebarOpen() {
		t.Error("m should close the sidebar again")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.State().SidebarOpen() {
		t.Error("esc should close the sidebar")
	}
}

func TestSelectFromSidebar(t *testing.T) {
	m := newTestModel(t, "")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	st := m.State()
	if st.ActiveSectionID() != "about" {
		t.Errorf("active = %s, want about", st.ActiveSectionID())
	}
	if st.SidebarOpen() {
		t.Error("selecting should close the sidebar")
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	m := newTestModel(t, "")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	for range 30 {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.sections)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.sections)-1)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State().ActiveSectionID() != "references" {
		t.Errorf("active = %s, want references", m.State().ActiveSectionID())
	}
}

func TestToggleAccordion(t *testing.T) {
	m := newTestModel(t, "foundations")

	m = send(t, m, runes("2"))
	if !m.State().Accordion(1).IsOpen() {
		t.Fatal("2 should open the second accordion")
	}
	if m.State().Accordion(0).IsOpen() {
		t.Error("first accordion should stay closed")
	}

	m = send(t, m, runes("2"))
	if m.State().Accordion(1).IsOpen() {
		t.Error("second press should close it")
	}

	m = send(t, m, runes("9"))
	if m.status == "" {
		t.Error("out of range accordion should set a status message")
	}
	if !strings.Contains(m.View(), "no item 9") {
		t.Error("status should be shown in the footer")
	}
}

func TestAccordionsResetOnNewSection(t *testing.T) {
	m := newTestModel(t, "faq")
	m = send(t, m, runes("1"))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.State().Accordion(0).IsOpen() {
		t.Error("reselecting the active section should keep accordion state")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State().ActiveSectionID() != "testimonials" {
		t.Fatalf("active = %s, want testimonials", m.State().ActiveSectionID())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State().Accordion(0).IsOpen() {
		t.Error("returning to faq should start with accordions closed")
	}
}

func TestScrollMarksHeader(t *testing.T) {
	m := newTestModel(t, "cost-bp")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	if !m.State().HeaderScrolled() {
		t.Fatal("paging down should scroll the header")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	if m.State().HeaderScrolled() {
		t.Error("back at the top the header should not be scrolled")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, "")
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
