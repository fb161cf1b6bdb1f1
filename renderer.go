package suggest

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// renderer repaints the prompt using relative cursor movement and line
// erasure only. It never reads the terminal back: lastLines is the only
// record of what is currently on screen.
//
// The renderer manages all visual aspects of the prompt including:
//   - The summary line (status symbol, label, delimiter and displayed input)
//   - The suggestion list below it with selection highlighting
//   - Scrolling the list when it is taller than the terminal or the limit
//   - Erasing exactly the lines the previous frame occupied
//
// Every drawn line is fitted to the terminal width so that one line written
// is one row on screen. Long input is cut from the left, keeping the end
// where typing happens visible; long suggestions are cut from the right.
// Without that the terminal would wrap them and lastLines would undercount.
//
// After an active frame the cursor sits on the first line of that frame,
// just past the summary, so typing appears in place. After a finished frame
// it sits at column 0 below the summary and the frame is left on screen.
type renderer struct {
	output      io.Writer    // Target output writer (typically stdout or colorable wrapper)
	colorScheme *ColorScheme // Color configuration for suggestion highlighting
	lastLines   int          // Lines drawn by the previous repaint
}

// frame is everything needed to draw one repaint.
type frame struct {
	prefix      string   // symbol, label and delimiter
	input       string   // replaced input as displayed
	suggestions []string // full suggestion list
	selected    int      // selection cursor into suggestions
	finished    bool
	width       int // terminal columns, 0 if unknown
	height      int // terminal rows, 0 if unknown
	limit       int // maximum suggestion rows, 0 for no limit
}

// newRenderer creates a new renderer with the given output and color scheme.
func newRenderer(output io.Writer, colorScheme *ColorScheme) *renderer {
	return &renderer{
		output:      output,
		colorScheme: colorScheme,
	}
}

// reset forgets the previous frame. Called when a new prompt starts below
// a finished one.
func (r *renderer) reset() {
	r.lastLines = 0
}

// render erases the previous frame and draws f in a single write.
func (r *renderer) render(f frame) error {
	var b strings.Builder
	b.WriteString(r.clearSequence())
	summary := fitSummary(f.prefix, f.input, f.width)

	if f.finished {
		b.WriteString(summary)
		b.WriteString("\r\n")
		if _, err := io.WriteString(r.output, b.String()); err != nil {
			return err
		}
		r.lastLines = 2
		return nil
	}

	lines := []string{summary}
	start, end := visibleWindow(len(f.suggestions), f.selected, f.rows())
	for i := start; i < end; i++ {
		lines = append(lines, r.suggestionLine(f.suggestions[i], i == f.selected, f.width))
	}

	b.WriteString(strings.Join(lines, "\r\n"))
	if len(lines) > 1 {
		b.WriteString(ansi.CursorUp(len(lines) - 1))
	}
	b.WriteString(ansi.CursorHorizontalAbsolute(ansi.StringWidth(lines[0]) + 1))

	if _, err := io.WriteString(r.output, b.String()); err != nil {
		return err
	}
	r.lastLines = len(lines)
	return nil
}

// bell signals an invalid edit without touching the frame.
func (r *renderer) bell() error {
	_, err := io.WriteString(r.output, "\a")
	return err
}

// clearSequence moves to the last line of the previous frame and erases
// upwards, leaving the cursor at column 0 of its first line. With no
// previous frame only the current line is erased.
func (r *renderer) clearSequence() string {
	var b strings.Builder
	n := max(r.lastLines, 1)
	if n > 1 {
		b.WriteString(ansi.CursorDown(n - 1))
	}
	for i := range n {
		b.WriteString(ansi.EraseEntireLine)
		if i < n-1 {
			b.WriteString(ansi.CursorUp(1))
		}
	}
	b.WriteString("\r")
	return b.String()
}

// fitSummary joins prefix and input into one line no wider than width-1
// cells, leaving room for the cursor. Input is cut from the left first; the
// prefix is only cut when it alone does not fit. width <= 1 means unknown.
func fitSummary(prefix, input string, width int) string {
	line := prefix + " " + input
	if width <= 1 {
		return line
	}
	limit := width - 1
	over := ansi.StringWidth(line) - limit
	if over <= 0 {
		return line
	}

	// A wide character straddling the cut is kept whole, so cut further
	// until the line fits.
	inputWidth := ansi.StringWidth(input)
	for cut := over + 1; cut < inputWidth; cut++ {
		line = prefix + " " + ansi.TruncateLeft(input, cut, "…")
		if ansi.StringWidth(line) <= limit {
			return line
		}
	}
	return ansi.Truncate(prefix+" "+input, limit, "…")
}

// suggestionLine paints one suggestion, truncated so it never wraps.
func (r *renderer) suggestionLine(s string, selected bool, width int) string {
	s = stripControl(s)
	if width > 1 && runewidth.StringWidth(s) > width-1 {
		s = runewidth.Truncate(s, width-1, "…")
	}
	if selected {
		return r.colorScheme.paint(r.colorScheme.Selected, s)
	}
	return r.colorScheme.paint(r.colorScheme.Suggestion, s)
}

// rows is the number of suggestion rows the frame may use.
func (f frame) rows() int {
	rows := f.limit
	if f.height > 1 && (rows <= 0 || rows > f.height-1) {
		rows = f.height - 1
	}
	return rows
}

// visibleWindow returns the [start, end) range of suggestions to draw so
// that selected stays visible. rows <= 0 means no limit.
func visibleWindow(total, selected, rows int) (start, end int) {
	if rows <= 0 || total <= rows {
		return 0, total
	}
	if selected >= rows {
		start = selected - rows + 1
	}
	return start, start + rows
}
