package view

import "testing"

func TestDisclosureCycle(t *testing.T) {
	var d Disclosure
	if d != Closed || d.IsOpen() {
		t.Fatal("zero value should be closed")
	}
	d = d.Toggle()
	if d != Open || d.String() != "open" {
		t.Errorf("after one toggle = %v, want open", d)
	}
	d = d.Toggle()
	if d != Closed || d.String() != "closed" {
		t.Errorf("after two toggles = %v, want closed", d)
	}
}
