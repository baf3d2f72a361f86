package progress

import (
	"bytes"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Description: "Exporting site", Out: &buf}
	r.Start(2)
	r.Update(1, "index.html")
	r.Update(2, "faq.html")
	r.Finish()

	want := "Exporting site: 2 pages\n[1/2] index.html\n[2/2] faq.html\nExporting site: done\n"
	if buf.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter("x").(*CIReporter); !ok {
		t.Error("NewReporter() should return a CIReporter when CI is set")
	}
}
