package widget

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/sjoeboo/tuiconfirm/pkg/geometry"
	"github.com/sjoeboo/tuiconfirm/pkg/text"
)

// Wrap configures line wrapping for a Paragraph.
type Wrap struct {
	// Trim drops leading whitespace from wrapped rows.
	Trim bool
}

// Paragraph draws text inside an area, optionally framed by a Block.
type Paragraph struct {
	Text      text.Text
	Style     lipgloss.Style
	Alignment text.Alignment
	Wrap      *Wrap
	Block     *Block
}

// NewParagraph creates a left-aligned, non-wrapping paragraph.
func NewParagraph(t text.Text) Paragraph {
	return Paragraph{Text: t, Style: lipgloss.NewStyle()}
}

// WithBlock returns a copy of p framed by b.
func (p Paragraph) WithBlock(b Block) Paragraph {
	p.Block = &b
	return p
}

// WithWrap returns a copy of p that wraps long lines.
func (p Paragraph) WithWrap(w Wrap) Paragraph {
	p.Wrap = &w
	return p
}

// WithStyle returns a copy of p using style as the base for every span.
func (p Paragraph) WithStyle(style lipgloss.Style) Paragraph {
	p.Style = style
	return p
}

// WithAlignment returns a copy of p with the default line alignment set.
func (p Paragraph) WithAlignment(a text.Alignment) Paragraph {
	p.Alignment = a
	return p
}

// Rows returns the rendered rows the paragraph produces for a content width.
func (p Paragraph) Rows(width int) []string {
	var rows []string
	for _, line := range p.Text.Lines {
		rendered := line.Render(p.Style)
		if p.Wrap != nil {
			wrapped := text.Wrap(rendered, width, p.Wrap.Trim)
			if len(wrapped) == 0 {
				wrapped = []string{""}
			}
			rows = append(rows, wrapped...)
			continue
		}
		rows = append(rows, rendered)
	}
	return rows
}

// Render paints the paragraph into area. Rows that do not fit are dropped.
func (p Paragraph) Render(buf *cellbuf.Buffer, area geometry.Rect) {
	if buf == nil || area.IsEmpty() {
		return
	}

	inner := area
	if p.Block != nil {
		p.Block.Render(buf, area)
		inner = p.Block.Inner(area)
	}
	if inner.IsEmpty() {
		return
	}

	y := inner.Y
	for _, line := range p.Text.Lines {
		align := p.Alignment
		if line.Alignment != nil {
			align = *line.Alignment
		}
		single := Paragraph{Text: text.FromLines(line), Style: p.Style, Wrap: p.Wrap}
		for _, row := range single.Rows(inner.Width) {
			if y >= inner.Bottom() {
				return
			}
			offset := text.Offset(align, ansi.StringWidth(row), inner.Width)
			Paint(buf, inner.X+offset, y, inner.Width-offset, row)
			y++
		}
	}
}
