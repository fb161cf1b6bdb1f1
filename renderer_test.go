package suggest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

func TestNewRenderer(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	renderer := newRenderer(&output, ThemeDefault)

	if renderer == nil {
		t.Fatal("Expected non-nil renderer")
	}
	if renderer.output != &output {
		t.Error("Expected output to be set")
	}
	if renderer.colorScheme != ThemeDefault {
		t.Error("Expected color scheme to be set")
	}
	if renderer.lastLines != 0 {
		t.Errorf("Expected lastLines to be 0, got %d", renderer.lastLines)
	}
}

func TestRendererFirstFrame(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	renderer := newRenderer(&output, ThemePlain)

	err := renderer.render(frame{
		prefix:      "? Pick >",
		input:       "ap",
		suggestions: []string{"apple", "apricot"},
		width:       80,
		height:      24,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := ansi.EraseEntireLine + "\r" +
		"? Pick > ap\r\napple\r\napricot" +
		ansi.CursorUp(2) +
		ansi.CursorHorizontalAbsolute(12)
	if got := output.String(); got != expected {
		t.Errorf("render() wrote %q, want %q", got, expected)
	}
	if renderer.lastLines != 3 {
		t.Errorf("Expected lastLines to be 3, got %d", renderer.lastLines)
	}
}

func TestRendererErasesPreviousFrame(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	renderer := newRenderer(&output, ThemePlain)
	renderer.lastLines = 3

	if err := renderer.render(frame{prefix: "? Pick >", input: "a"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expectedClear := ansi.CursorDown(2) +
		ansi.EraseEntireLine + ansi.CursorUp(1) +
		ansi.EraseEntireLine + ansi.CursorUp(1) +
		ansi.EraseEntireLine + "\r"
	got := output.String()
	if !strings.HasPrefix(got, expectedClear) {
		t.Errorf("render() should start with %q, got %q", expectedClear, got)
	}
	if strings.Contains(got, ansi.CursorUp(1)+ansi.CursorHorizontalAbsolute(11)) {
		t.Error("a frame without suggestions must not move the cursor up")
	}
	if !strings.HasSuffix(got, "? Pick > a"+ansi.CursorHorizontalAbsolute(11)) {
		t.Errorf("unexpected frame %q", got)
	}
	if renderer.lastLines != 1 {
		t.Errorf("Expected lastLines to be 1, got %d", renderer.lastLines)
	}
}

func TestRendererFinishedFrame(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	renderer := newRenderer(&output, ThemePlain)
	renderer.lastLines = 3

	err := renderer.render(frame{
		prefix:      "✔ Pick >",
		input:       "ap",
		suggestions: []string{"apple", "apricot"},
		selected:    1,
		finished:    true,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got := output.String()
	if !strings.HasSuffix(got, "✔ Pick > ap\r\n") {
		t.Errorf("closing frame should end with the summary and a line break, got %q", got)
	}
	if strings.Contains(got, "apple") {
		t.Error("closing frame must not draw suggestions")
	}
	if renderer.lastLines != 2 {
		t.Errorf("Expected lastLines to be 2, got %d", renderer.lastLines)
	}
}

func TestRendererCursorColumnIgnoresEscapes(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	renderer := newRenderer(&output, ThemeDefault)

	prefix := ThemeDefault.Symbol(StatusPending) + " 名前 " + ThemeDefault.DefaultDelimiter()
	if err := renderer.render(frame{prefix: prefix, input: StylePassword("abc")}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// "? 名前 > ***" is 12 cells wide
	if !strings.HasSuffix(output.String(), ansi.CursorHorizontalAbsolute(13)) {
		t.Errorf("cursor should move to column 13, got %q", output.String())
	}
}

func TestRendererFitsSummaryToWidth(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	renderer := newRenderer(&output, ThemePlain)

	input := strings.Repeat("a", 27) + "xyz"
	err := renderer.render(frame{
		prefix:      "? Label >",
		input:       input,
		suggestions: []string{"apple"},
		width:       20,
		height:      10,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got := output.String()
	lines := strings.Split(ansi.Strip(got), "\r\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), lines)
	}
	summary := strings.TrimPrefix(lines[0], "\r")
	if w := ansi.StringWidth(summary); w > 19 {
		t.Errorf("summary should fit in 19 cells, got %d (%q)", w, summary)
	}
	if !strings.HasPrefix(summary, "? Label > …") {
		t.Errorf("input should be cut from the left behind the prefix, got %q", summary)
	}
	if !strings.HasSuffix(summary, "xyz") {
		t.Errorf("the end of the input should stay visible, got %q", summary)
	}
	if !strings.HasSuffix(got, ansi.CursorUp(1)+ansi.CursorHorizontalAbsolute(ansi.StringWidth(summary)+1)) {
		t.Errorf("cursor should return to the end of the summary, got %q", got)
	}
	if renderer.lastLines != 2 {
		t.Errorf("Expected lastLines to be 2, got %d", renderer.lastLines)
	}
}

func TestFitSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prefix   string
		input    string
		width    int
		expected string
	}{
		{name: "unknown width", prefix: "? Pick >", input: "apple", width: 0, expected: "? Pick > apple"},
		{name: "fits", prefix: "? Pick >", input: "apple", width: 80, expected: "? Pick > apple"},
		{name: "exactly one cell left", prefix: "? Pick >", input: "apple", width: 15, expected: "? Pick > apple"},
		{name: "input cut from the left", prefix: "? Pick >", input: "abcdefgh", width: 15, expected: "? Pick > …efgh"},
		{name: "wide character at the cut", prefix: "?", input: "a日本語", width: 9, expected: "? …本語"},
		{name: "prefix too wide", prefix: "? A very long label >", input: "abc", width: 10, expected: "? A very…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := fitSummary(tt.prefix, tt.input, tt.width); got != tt.expected {
				t.Errorf("fitSummary(%q, %q, %d) = %q, want %q", tt.prefix, tt.input, tt.width, got, tt.expected)
			}
		})
	}
}

func TestRendererHighlightsSelection(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	renderer := newRenderer(&output, ThemeDefault)

	err := renderer.render(frame{
		prefix:      "? Pick >",
		input:       "ap",
		suggestions: []string{"apple", "apricot"},
		selected:    1,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got := output.String()
	if !strings.Contains(got, ThemeDefault.Selected.ToANSI()+"apricot"+Reset()) {
		t.Errorf("selected suggestion should be highlighted, got %q", got)
	}
	if !strings.Contains(got, "\r\napple\r\n") {
		t.Errorf("unselected suggestion should be drawn as is, got %q", got)
	}
}

func TestRendererTruncatesLongSuggestions(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	renderer := newRenderer(&output, ThemePlain)

	long := strings.Repeat("x", 30) + "日本語"
	err := renderer.render(frame{
		prefix:      "?",
		suggestions: []string{long},
		width:       20,
		height:      10,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(ansi.Strip(output.String()), "\r\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), lines)
	}
	line := strings.TrimRight(lines[1], "\r")
	if w := runewidth.StringWidth(line); w > 19 {
		t.Errorf("suggestion should fit in 19 cells, got %d (%q)", w, line)
	}
	if !strings.HasSuffix(line, "…") {
		t.Errorf("truncated suggestion should end with an ellipsis, got %q", line)
	}
}

func TestRendererWindowFollowsSelection(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	renderer := newRenderer(&output, ThemePlain)

	suggestions := []string{"s0", "s1", "s2", "s3", "s4", "s5"}
	err := renderer.render(frame{
		prefix:      "?",
		suggestions: suggestions,
		selected:    4,
		limit:       3,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got := output.String()
	for _, want := range []string{"s2", "s3", "s4"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %s to be visible in %q", want, got)
		}
	}
	for _, hidden := range []string{"s0", "s1", "s5"} {
		if strings.Contains(got, hidden) {
			t.Errorf("expected %s to be scrolled out of %q", hidden, got)
		}
	}
	if renderer.lastLines != 4 {
		t.Errorf("Expected lastLines to be 4, got %d", renderer.lastLines)
	}
}

func TestVisibleWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		total     int
		selected  int
		rows      int
		wantStart int
		wantEnd   int
	}{
		{name: "no limit", total: 5, selected: 4, rows: 0, wantStart: 0, wantEnd: 5},
		{name: "fits", total: 3, selected: 2, rows: 5, wantStart: 0, wantEnd: 3},
		{name: "selection in first page", total: 10, selected: 2, rows: 3, wantStart: 0, wantEnd: 3},
		{name: "selection past first page", total: 10, selected: 5, rows: 3, wantStart: 3, wantEnd: 6},
		{name: "selection at the end", total: 10, selected: 9, rows: 3, wantStart: 7, wantEnd: 10},
		{name: "empty", total: 0, selected: 0, rows: 3, wantStart: 0, wantEnd: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			start, end := visibleWindow(tt.total, tt.selected, tt.rows)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("visibleWindow(%d, %d, %d) = [%d, %d), want [%d, %d)",
					tt.total, tt.selected, tt.rows, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestFrameRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		frame    frame
		expected int
	}{
		{name: "unknown size, no limit", frame: frame{}, expected: 0},
		{name: "terminal height caps", frame: frame{height: 24}, expected: 23},
		{name: "limit below height", frame: frame{height: 24, limit: 5}, expected: 5},
		{name: "limit above height", frame: frame{height: 4, limit: 10}, expected: 3},
		{name: "limit without height", frame: frame{limit: 7}, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.frame.rows(); got != tt.expected {
				t.Errorf("rows() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestRendererBell(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	renderer := newRenderer(&output, ThemeDefault)
	renderer.lastLines = 3

	if err := renderer.bell(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.String() != "\a" {
		t.Errorf("bell() wrote %q", output.String())
	}
	if renderer.lastLines != 3 {
		t.Error("bell() must not touch the frame bookkeeping")
	}
}
