package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/vosi/pkg/vosi"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 8, "this is…"},
		{"multi\n  line\ttext", 40, "multi line text"},
		{"ab", 1, "a"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestOrDash(t *testing.T) {
	if orDash("") != "-" || orDash("x") != "x" {
		t.Error("orDash mismatch")
	}
}

func TestFormatAvailability(t *testing.T) {
	down := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	out := formatAvailability(&vosi.Availability{Available: false, DownAt: &down, Notes: []string{"maintenance"}})
	for _, want := range []string{"no", "Down at", "2024-01-02T03:04:05Z", "maintenance"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Up since") {
		t.Errorf("absent upSince printed:\n%s", out)
	}
}

func TestFormatTableNRows(t *testing.T) {
	n := int64(42)
	out := formatTable(&vosi.Table{Name: "t", NRows: &n, Columns: []vosi.Column{{Name: "c", Flags: []string{"indexed", "primary"}}}})
	for _, want := range []string{"(42 rows)", "indexed,primary"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestOutputFormat(t *testing.T) {
	tests := map[string]string{"": "dot", "a.dot": "dot", "a.gv": "dot", "a.SVG": "svg", "x/a.pdf": "pdf", "a.png": "png"}
	for in, want := range tests {
		got, err := outputFormat(in)
		if err != nil || got != want {
			t.Errorf("outputFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := outputFormat("a.jpg"); err == nil {
		t.Error("outputFormat(a.jpg) should fail")
	}
}
