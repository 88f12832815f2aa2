package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestCardKeepsWidth(t *testing.T) {
	out := Card{Title: "Today", Content: "one\na much longer line that will not fit in the card"}.Render(20)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 20 {
			t.Fatalf("line %d width = %d, want 20: %q", i, w, ansi.Strip(line))
		}
	}
	if !strings.Contains(ansi.Strip(lines[0]), "Today") {
		t.Fatalf("title missing from top border: %q", ansi.Strip(lines[0]))
	}
}

func TestCardWithoutTitle(t *testing.T) {
	out := ansi.Strip(Card{Content: "x", Dashed: true}.Render(8))
	if !strings.HasPrefix(out, "╭╌╌╌╌╌╌╮") {
		t.Fatalf("unexpected top border: %q", out)
	}
}

func TestProgressBarClamps(t *testing.T) {
	cases := []struct {
		pct    float64
		filled int
	}{
		{-5, 0},
		{0, 0},
		{33.3333, 3},
		{50, 5},
		{100, 10},
		{250, 10},
	}
	for _, tc := range cases {
		out := ansi.Strip(ProgressBar{Percent: tc.pct}.Render(10))
		if got := strings.Count(out, "█"); got != tc.filled {
			t.Errorf("pct %.1f: filled = %d, want %d", tc.pct, got, tc.filled)
		}
		if ansi.StringWidth(out) != 10 {
			t.Errorf("pct %.1f: width = %d", tc.pct, ansi.StringWidth(out))
		}
	}
	if (ProgressBar{Percent: 50}).Render(0) != "" {
		t.Error("zero width should render nothing")
	}
}

func TestBadgeAndCheckbox(t *testing.T) {
	if got := ansi.Strip(Badge{Text: "high", Outline: true}.Render()); got != "[high]" {
		t.Fatalf("outline badge = %q", got)
	}
	if got := ansi.Strip(Badge{Text: "12"}.Render()); strings.TrimSpace(got) != "12" {
		t.Fatalf("badge = %q", got)
	}
	if Checkbox(true) != "[x]" || Checkbox(false) != "[ ]" {
		t.Fatal("checkbox glyphs changed")
	}
}
