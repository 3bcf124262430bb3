// Package widget draws blocks and paragraphs onto a cellbuf.Buffer.
package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/sjoeboo/tuiconfirm/pkg/geometry"
)

// Clear blanks every cell of rect.
func Clear(buf *cellbuf.Buffer, rect geometry.Rect) {
	if buf == nil || rect.IsEmpty() {
		return
	}
	buf.ClearRect(rect.Bounds())
}

// Fill paints every cell of rect as a space rendered with style, which is
// how a background colour is laid down.
func Fill(buf *cellbuf.Buffer, rect geometry.Rect, style lipgloss.Style) {
	if buf == nil || rect.IsEmpty() {
		return
	}
	row := style.Render(strings.Repeat(" ", rect.Width))
	for y := rect.Y; y < rect.Bottom(); y++ {
		Paint(buf, rect.X, y, rect.Width, row)
	}
}

// Paint writes a single rendered row at (x, y), clipped to width cells. Only
// the cells the row covers are touched.
func Paint(buf *cellbuf.Buffer, x, y, width int, row string) {
	if buf == nil || width <= 0 || row == "" {
		return
	}
	w := min(width, ansi.StringWidth(row))
	if w <= 0 {
		return
	}
	cellbuf.SetContentRect(buf, row, cellbuf.Rect(x, y, w, 1))
}

// Render converts a buffer into a string suitable for a bubbletea View.
func Render(buf *cellbuf.Buffer) string {
	if buf == nil {
		return ""
	}
	return strings.ReplaceAll(cellbuf.Render(buf), "\r\n", "\n")
}

// NewCanvas creates a width x height buffer pre-filled with background, the
// host's own rendered view.
func NewCanvas(background string, width, height int) *cellbuf.Buffer {
	buf := cellbuf.NewBuffer(max(0, width), max(0, height))
	if background != "" && width > 0 && height > 0 {
		cellbuf.SetContent(buf, background)
	}
	return buf
}
