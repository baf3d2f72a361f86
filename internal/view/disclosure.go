package view

// Disclosure is the open/closed state of one accordion. The zero value is Closed.
type Disclosure bool

const (
	Closed Disclosure = false
	Open   Disclosure = true
)

// Toggle returns the other state.
func (d Disclosure) Toggle() Disclosure { return !d }

// IsOpen reports whether the nested content is visible.
func (d Disclosure) IsOpen() bool { return bool(d) }

func (d Disclosure) String() string {
	if d {
		return "open"
	}
	return "closed"
}
