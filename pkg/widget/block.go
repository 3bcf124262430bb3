package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/sjoeboo/tuiconfirm/pkg/geometry"
	"github.com/sjoeboo/tuiconfirm/pkg/text"
)

// Block is a framed area: optional borders, a title on the top row and a
// background.
type Block struct {
	Title          text.Line
	TitleAlignment text.Alignment
	Borders        Borders
	BorderType     BorderType
	BorderStyle    lipgloss.Style
	// Style is laid down over the whole area before anything else; its
	// background is the block's background colour.
	Style   lipgloss.Style
	Padding Padding
}

// NewBlock returns a block with no borders, no title and no padding.
func NewBlock() Block {
	return Block{
		BorderStyle: lipgloss.NewStyle(),
		Style:       lipgloss.NewStyle(),
	}
}

// Inner returns the part of area left for content once borders and padding
// are taken away.
func (b Block) Inner(area geometry.Rect) geometry.Rect {
	return area.Inner(geometry.Margin{
		Left:   b.Borders.count(BordersLeft) + b.Padding.Left,
		Right:  b.Borders.count(BordersRight) + b.Padding.Right,
		Top:    b.Borders.count(BordersTop) + b.Padding.Top,
		Bottom: b.Borders.count(BordersBottom) + b.Padding.Bottom,
	})
}

// Render paints the background, the borders and the title into area.
func (b Block) Render(buf *cellbuf.Buffer, area geometry.Rect) {
	if buf == nil || area.IsEmpty() {
		return
	}

	Fill(buf, area, b.Style)
	b.renderBorders(buf, area)
	b.renderTitle(buf, area)
}

func (b Block) renderBorders(buf *cellbuf.Buffer, area geometry.Rect) {
	if b.Borders == BordersNone {
		return
	}
	glyphs := b.BorderType.Glyphs()
	style := b.BorderStyle.Inherit(b.Style)
	glyph := func(s string) string { return style.Render(s) }

	top, bottom := area.Y, area.Bottom()-1
	left, right := area.X, area.Right()-1

	if b.Borders.Has(BordersTop) {
		Paint(buf, left, top, area.Width, glyph(b.edge(glyphs.Top, glyphs.TopLeft, glyphs.TopRight, area.Width)))
	}
	if b.Borders.Has(BordersBottom) && (bottom != top || !b.Borders.Has(BordersTop)) {
		Paint(buf, left, bottom, area.Width, glyph(b.edge(glyphs.Bottom, glyphs.BottomLeft, glyphs.BottomRight, area.Width)))
	}

	firstRow, lastRow := top, bottom
	if b.Borders.Has(BordersTop) {
		firstRow++
	}
	if b.Borders.Has(BordersBottom) {
		lastRow--
	}
	for y := firstRow; y <= lastRow; y++ {
		if b.Borders.Has(BordersLeft) {
			Paint(buf, left, y, 1, glyph(glyphs.Left))
		}
		if b.Borders.Has(BordersRight) && right != left {
			Paint(buf, right, y, 1, glyph(glyphs.Right))
		}
	}
}

// edge builds a horizontal border row. Corners are only used where the
// adjoining vertical border exists.
func (b Block) edge(fill, leftCorner, rightCorner string, width int) string {
	if width <= 0 {
		return ""
	}
	if fill == "" {
		fill = " "
	}
	cells := make([]string, width)
	for i := range cells {
		cells[i] = fill
	}
	if b.Borders.Has(BordersLeft) && leftCorner != "" {
		cells[0] = leftCorner
	}
	if width > 1 && b.Borders.Has(BordersRight) && rightCorner != "" {
		cells[width-1] = rightCorner
	}
	return strings.Join(cells, "")
}

func (b Block) renderTitle(buf *cellbuf.Buffer, area geometry.Rect) {
	if b.Title.IsEmpty() {
		return
	}
	row := area.Inner(geometry.Margin{
		Left:  b.Borders.count(BordersLeft),
		Right: b.Borders.count(BordersRight),
	})
	if row.Width <= 0 {
		return
	}

	rendered := b.Title.Render(b.BorderStyle.Inherit(b.Style))
	rendered = ansi.Truncate(rendered, row.Width, "")
	align := b.TitleAlignment
	if b.Title.Alignment != nil {
		align = *b.Title.Alignment
	}
	offset := text.Offset(align, ansi.StringWidth(rendered), row.Width)
	Paint(buf, row.X+offset, area.Y, row.Width-offset, rendered)
}
