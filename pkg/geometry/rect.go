// Package geometry provides the rectangle and layout primitives used to place
// dialogs and popups inside a host's drawing area.
package geometry

import (
	"fmt"

	"github.com/charmbracelet/x/cellbuf"
)

// Rect is an axis-aligned area measured in terminal cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a Rect, treating negative sizes as zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(0, width), Height: max(0, height)}
}

// Area returns the number of cells covered by the rect.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// IsEmpty reports whether the rect covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the first column to the right of the rect.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row below the rect.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Contains reports whether other lies entirely within r.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Margin shrinks a rect from each side.
type Margin struct {
	Left, Right, Top, Bottom int
}

// Inner returns r shrunk by m. Over-large margins collapse the rect to zero
// size instead of producing a negative one.
func (r Rect) Inner(m Margin) Rect {
	horizontal := m.Left + m.Right
	vertical := m.Top + m.Bottom
	if horizontal > r.Width || vertical > r.Height {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{
		X:      r.X + m.Left,
		Y:      r.Y + m.Top,
		Width:  r.Width - horizontal,
		Height: r.Height - vertical,
	}
}

// Bounds converts r into the rectangle type used by cellbuf.
func (r Rect) Bounds() cellbuf.Rectangle {
	return cellbuf.Rect(r.X, r.Y, r.Width, r.Height)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(x=%d, y=%d, w=%d, h=%d)", r.X, r.Y, r.Width, r.Height)
}
