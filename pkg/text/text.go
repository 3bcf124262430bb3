// Package text is a small rich-text model: a Text is a list of Lines, a Line
// is a list of styled Spans. Widths are measured in terminal cells.
package text

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Alignment places a line horizontally inside the width it is rendered in.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment maps "left", "center" and "right" to an Alignment.
// Unknown names fall back to AlignLeft.
func ParseAlignment(s string) Alignment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignLeft
	}
}

// Span is a run of text sharing one style.
type Span struct {
	Content string
	Style   lipgloss.Style
}

// RawSpan creates an unstyled span.
func RawSpan(s string) Span {
	return Span{Content: s, Style: lipgloss.NewStyle()}
}

// StyledSpan creates a span with the given style.
func StyledSpan(s string, style lipgloss.Style) Span {
	return Span{Content: s, Style: style}
}

// Width returns the display width of the span's content.
func (s Span) Width() int {
	return runewidth.StringWidth(s.Content)
}

// Render renders the span, filling unset style properties from base.
func (s Span) Render(base lipgloss.Style) string {
	if s.Content == "" {
		return ""
	}
	return s.Style.Inherit(base).Render(s.Content)
}

// Line is a single row of spans. A nil Alignment defers to the widget that
// renders the line.
type Line struct {
	Spans     []Span
	Alignment *Alignment
}

// NewLine creates a line from spans.
func NewLine(spans ...Span) Line {
	return Line{Spans: spans}
}

// RawLine creates a line holding one unstyled span.
func RawLine(s string) Line {
	return NewLine(RawSpan(s))
}

// StyledLine creates a line holding one styled span.
func StyledLine(s string, style lipgloss.Style) Line {
	return NewLine(StyledSpan(s, style))
}

// Aligned returns a copy of l with its own alignment.
func (l Line) Aligned(a Alignment) Line {
	l.Alignment = &a
	return l
}

// Width returns the display width of the line.
func (l Line) Width() int {
	w := 0
	for _, s := range l.Spans {
		w += s.Width()
	}
	return w
}

// IsEmpty reports whether the line has no visible content.
func (l Line) IsEmpty() bool {
	return l.Width() == 0
}

// Plain returns the line's content without styling.
func (l Line) Plain() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Content)
	}
	return b.String()
}

// Render renders every span of the line, each inheriting from base.
func (l Line) Render(base lipgloss.Style) string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Render(base))
	}
	return b.String()
}

// Text is an ordered list of lines.
type Text struct {
	Lines []Line
}

// Raw creates unstyled text, one line per "\n" separated row.
func Raw(s string) Text {
	if s == "" {
		return Text{}
	}
	rows := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	lines := make([]Line, len(rows))
	for i, row := range rows {
		lines[i] = RawLine(row)
	}
	return Text{Lines: lines}
}

// Styled creates text where every row shares one style.
func Styled(s string, style lipgloss.Style) Text {
	t := Raw(s)
	for i := range t.Lines {
		for j := range t.Lines[i].Spans {
			t.Lines[i].Spans[j].Style = style
		}
	}
	return t
}

// FromLines creates text from lines.
func FromLines(lines ...Line) Text {
	return Text{Lines: lines}
}

// FromStrings creates unstyled text with one line per argument.
func FromStrings(rows ...string) Text {
	lines := make([]Line, len(rows))
	for i, row := range rows {
		lines[i] = RawLine(row)
	}
	return Text{Lines: lines}
}

// Width returns the width of the widest line.
func (t Text) Width() int {
	w := 0
	for _, l := range t.Lines {
		w = max(w, l.Width())
	}
	return w
}

// Height returns the number of lines.
func (t Text) Height() int {
	return len(t.Lines)
}

// Plain returns the text without styling, lines joined by "\n".
func (t Text) Plain() string {
	rows := make([]string, len(t.Lines))
	for i, l := range t.Lines {
		rows[i] = l.Plain()
	}
	return strings.Join(rows, "\n")
}
