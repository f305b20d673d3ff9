package pattern

import (
	"strings"
	"testing"
)

func drawnPattern(t *testing.T, w, h int) *Pattern {
	t.Helper()
	p := New(w, h, WithSeed(42), WithGroup(GroupP1))
	p.Draw()
	return p
}

// overlayLines extracts the delimited text of every embedded line.
func overlayLines(rows []string) []string {
	var lines []string
	for _, row := range rows {
		start := strings.Index(row, MarkerOpen)
		if start < 0 {
			continue
		}
		rest := row[start+len(MarkerOpen):]
		if end := strings.Index(rest, MarkerClose); end >= 0 {
			rest = rest[:end]
		}
		lines = append(lines, rest)
	}
	return lines
}

func TestEmbedEmptyInputIsNoOp(t *testing.T) {
	p := drawnPattern(t, 40, 20)
	before := strings.Join(p.Rows(), "\n")
	p.Embed(nil)
	p.Embed([]string{})
	if after := strings.Join(p.Rows(), "\n"); after != before {
		t.Error("Embed with no lines modified the canvas")
	}
}

func TestEmbedWritesCenteredLine(t *testing.T) {
	p := drawnPattern(t, 40, 20)
	p.Embed([]string{"hello"})

	rows := p.Rows()
	// One line: spacing = max(3, 20/3) = 6, so the text lands on row 6.
	row := rows[6]
	marked := MarkerOpen + "hello" + MarkerClose
	idx := strings.Index(row, marked)
	if idx < 0 {
		t.Fatalf("row 6 does not contain %q: %q", marked, row)
	}
	if want := (40 - len([]rune(marked))) / 2; idx != want {
		t.Errorf("overlay starts at column %d, want %d", idx, want)
	}
}

func TestEmbedSelectsAtMostFive(t *testing.T) {
	input := []string{
		"line one", "line two", "line three", "line four",
		"line five", "line six", "line seven", "line eight",
	}
	p := drawnPattern(t, 60, 40)
	p.Embed(input)

	got := overlayLines(p.Rows())
	if len(got) == 0 || len(got) > 5 {
		t.Fatalf("embedded %d lines, want 1..5", len(got))
	}

	seen := make(map[string]bool)
	valid := make(map[string]bool)
	for _, l := range input {
		valid[l] = true
	}
	for _, l := range got {
		if seen[l] {
			t.Errorf("line %q embedded twice", l)
		}
		seen[l] = true
		if !valid[l] {
			t.Errorf("embedded line %q not from input", l)
		}
		if strings.TrimSpace(l) == "" {
			t.Error("embedded a blank line")
		}
	}
}

func TestEmbedSkipsBlankLines(t *testing.T) {
	p := drawnPattern(t, 40, 20)
	p.Embed([]string{"first", "   ", "third"})

	got := overlayLines(p.Rows())
	for _, l := range got {
		if strings.TrimSpace(l) == "" {
			t.Errorf("blank line embedded: %q", l)
		}
	}
}

func TestEmbedTruncatesAtWidth(t *testing.T) {
	p := drawnPattern(t, 12, 20)
	long := strings.Repeat("x", 30)
	p.Embed([]string{long})

	for _, row := range p.Rows() {
		if n := len([]rune(row)); n != 12 {
			t.Fatalf("row width %d after overlay, want 12", n)
		}
	}
	joined := strings.Join(p.Rows(), "\n")
	if !strings.Contains(joined, "<poem>") {
		t.Error("truncated overlay lost its opening delimiter")
	}
}

func TestEmbedStopsBeyondCanvas(t *testing.T) {
	// Rows land at (i+1)·spacing with spacing floored at 3; on a short
	// canvas the later lines fall outside and are dropped.
	p := drawnPattern(t, 40, 8)
	p.Embed([]string{"one", "two", "three", "four", "five"})

	got := overlayLines(p.Rows())
	if len(got) > 2 {
		t.Errorf("embedded %d lines on an 8-row canvas, want at most 2", len(got))
	}
}

func TestEmbedDeterministic(t *testing.T) {
	input := []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7"}
	a := drawnPattern(t, 50, 30)
	b := drawnPattern(t, 50, 30)
	a.Embed(input)
	b.Embed(input)
	if strings.Join(a.Rows(), "\n") != strings.Join(b.Rows(), "\n") {
		t.Error("identical seeds produced different overlays")
	}
}
