package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Borders selects which sides of a Block get a border.
type Borders uint8

const (
	BordersTop Borders = 1 << iota
	BordersRight
	BordersBottom
	BordersLeft

	BordersNone Borders = 0
	BordersAll          = BordersTop | BordersRight | BordersBottom | BordersLeft
)

// Has reports whether every side in side is set.
func (b Borders) Has(side Borders) bool {
	return b&side == side
}

func (b Borders) count(side Borders) int {
	if b.Has(side) {
		return 1
	}
	return 0
}

// BorderType selects the glyph set used to draw borders.
type BorderType int

const (
	BorderPlain BorderType = iota
	BorderRounded
	BorderDouble
	BorderThick
	BorderASCII
	BorderHidden
)

// ParseBorderType maps a config name to a BorderType. Unknown names fall back
// to BorderPlain.
func ParseBorderType(s string) BorderType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rounded":
		return BorderRounded
	case "double":
		return BorderDouble
	case "thick":
		return BorderThick
	case "ascii":
		return BorderASCII
	case "hidden":
		return BorderHidden
	default:
		return BorderPlain
	}
}

func (t BorderType) String() string {
	switch t {
	case BorderRounded:
		return "rounded"
	case BorderDouble:
		return "double"
	case BorderThick:
		return "thick"
	case BorderASCII:
		return "ascii"
	case BorderHidden:
		return "hidden"
	default:
		return "plain"
	}
}

// Glyphs returns the lipgloss border set for t.
func (t BorderType) Glyphs() lipgloss.Border {
	switch t {
	case BorderRounded:
		return lipgloss.RoundedBorder()
	case BorderDouble:
		return lipgloss.DoubleBorder()
	case BorderThick:
		return lipgloss.ThickBorder()
	case BorderASCII:
		return lipgloss.ASCIIBorder()
	case BorderHidden:
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

// Padding is the blank space kept between a block's borders and its content.
type Padding struct {
	Left, Right, Top, Bottom int
}

// UniformPadding pads every side by n cells.
func UniformPadding(n int) Padding {
	return Padding{Left: n, Right: n, Top: n, Bottom: n}
}

// Horizontal returns the total left and right padding.
func (p Padding) Horizontal() int { return p.Left + p.Right }

// Vertical returns the total top and bottom padding.
func (p Padding) Vertical() int { return p.Top + p.Bottom }
