// Package view holds the UI state owned by one root view: the active
// section, the sidebar and header flags, and the accordions of the content
// currently shown.
package view

import (
	"errors"
	"fmt"

	"github.com/ziadkadry99/bpguide/internal/guide"
)

var (
	// ErrUnknownSection is returned when selecting an id with no descriptor.
	ErrUnknownSection = errors.New("unknown section")
	// ErrNoAccordion is returned for an accordion index outside the active content.
	ErrNoAccordion = errors.New("no such accordion")
)

// DefaultScrollThreshold is the vertical offset, in pixels, past which the
// header is treated as scrolled.
const DefaultScrollThreshold = 10

// Option configures a State.
type Option func(*State)

// WithScrollThreshold overrides DefaultScrollThreshold.
func WithScrollThreshold(px int) Option {
	return func(s *State) { s.threshold = px }
}

// WithSection starts the state on id instead of the registry default.
// Unknown ids are ignored.
func WithSection(id string) Option {
	return func(s *State) {
		if s.reg.Catalog().Has(id) {
			s.active = id
		}
	}
}

// State is not safe for concurrent use; each root view owns one.
type State struct {
	reg       *guide.Registry
	threshold int

	active     string
	sidebar    bool
	scrolled   bool
	content    guide.Content
	accordions []Disclosure
}

// New returns the initial state: default section active, sidebar closed,
// header not scrolled.
func New(reg *guide.Registry, opts ...Option) *State {
	s := &State{
		reg:       reg,
		threshold: DefaultScrollThreshold,
		active:    reg.DefaultID(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

func (s *State) load() {
	s.content = s.reg.Resolve(s.active)
	s.accordions = make([]Disclosure, s.content.Accordions())
}

// ActiveSectionID returns the selected section.
func (s *State) ActiveSectionID() string { return s.active }

// SidebarOpen reports whether the navigation panel is shown on narrow viewports.
func (s *State) SidebarOpen() bool { return s.sidebar }

// HeaderScrolled reports whether the header uses its scrolled style.
func (s *State) HeaderScrolled() bool { return s.scrolled }

// Content returns the content block for the active section.
func (s *State) Content() guide.Content { return s.content }

// Accordions returns a copy of the accordion states of the active content.
func (s *State) Accordions() []Disclosure {
	out := make([]Disclosure, len(s.accordions))
	copy(out, s.accordions)
	return out
}

// Accordion returns the state of the i-th accordion, Closed when out of range.
func (s *State) Accordion(i int) Disclosure {
	if i < 0 || i >= len(s.accordions) {
		return Closed
	}
	return s.accordions[i]
}

// SelectSection makes id active and closes the sidebar. Accordion states
// are reset when the active id changes. Selecting an id that has no
// descriptor leaves the state untouched.
func (s *State) SelectSection(id string) error {
	if !s.reg.Catalog().Has(id) {
		return fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	s.sidebar = false
	if id == s.active {
		return nil
	}
	s.active = id
	s.load()
	return nil
}

// ToggleSidebar flips the sidebar.
func (s *State) ToggleSidebar() { s.sidebar = !s.sidebar }

// CloseSidebar closes the sidebar; used by the overlay behind it.
func (s *State) CloseSidebar() { s.sidebar = false }

// ObserveScroll records the current vertical offset.
func (s *State) ObserveScroll(offset int) {
	s.scrolled = offset > s.threshold
}

// ToggleAccordion flips the i-th accordion of the active content and returns its new state.
func (s *State) ToggleAccordion(i int) (Disclosure, error) {
	if i < 0 || i >= len(s.accordions) {
		return Closed, fmt.Errorf("%w: %d of %d", ErrNoAccordion, i, len(s.accordions))
	}
	s.accordions[i] = s.accordions[i].Toggle()
	return s.accordions[i], nil
}

// Snapshot is the serialisable form of a State.
type Snapshot struct {
	Active         string `json:"active"`
	SidebarOpen    bool   `json:"sidebar_open"`
	HeaderScrolled bool   `json:"header_scrolled"`
	Accordions     []bool `json:"accordions"`
}

// Snapshot captures the current state.
func (s *State) Snapshot() Snapshot {
	acc := make([]bool, len(s.accordions))
	for i, d := range s.accordions {
		acc[i] = d.IsOpen()
	}
	return Snapshot{
		Active:         s.active,
		SidebarOpen:    s.sidebar,
		HeaderScrolled: s.scrolled,
		Accordions:     acc,
	}
}
