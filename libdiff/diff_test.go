package libdiff

import (
	"bytes"
	"strings"
	"testing"
)

func TestTextMarkers(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	from := "{port, 8080}.\n"
	to := "{port, 9090}.\n"
	if err := Text(buf, from, to, false); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "[-") || !strings.Contains(out, "{+") {
		t.Errorf("missing edit markers in %q", out)
	}
	if !strings.Contains(out, "{+9090+}") && !strings.Contains(out, "9090") {
		t.Errorf("insertion not shown in %q", out)
	}
	if !strings.HasPrefix(out, "{port, ") {
		t.Errorf("unchanged prefix not preserved in %q", out)
	}
}

func TestTextEqual(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Text(buf, "same\n", "same\n", false); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "same\n" {
		t.Errorf("equal inputs should render verbatim, got %q", got)
	}
}
