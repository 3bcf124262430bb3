package geometry

import "fmt"

// Direction is the axis along which Split divides an area.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

type constraintKind int

const (
	kindLength constraintKind = iota
	kindMin
	kindMax
	kindPercentage
)

// Constraint sizes one segment of a Split.
type Constraint struct {
	kind  constraintKind
	value int
}

// Length is a segment of exactly n cells.
func Length(n int) Constraint { return Constraint{kind: kindLength, value: max(0, n)} }

// Min is a segment of at least n cells that absorbs leftover space.
func Min(n int) Constraint { return Constraint{kind: kindMin, value: max(0, n)} }

// Max is a segment of at most n cells.
func Max(n int) Constraint { return Constraint{kind: kindMax, value: max(0, n)} }

// Percentage is a segment sized as a share of the split area.
func Percentage(p int) Constraint { return Constraint{kind: kindPercentage, value: clamp(p, 0, 100)} }

func (c Constraint) String() string {
	switch c.kind {
	case kindMin:
		return fmt.Sprintf("Min(%d)", c.value)
	case kindMax:
		return fmt.Sprintf("Max(%d)", c.value)
	case kindPercentage:
		return fmt.Sprintf("Percentage(%d)", c.value)
	default:
		return fmt.Sprintf("Length(%d)", c.value)
	}
}

// Split divides area along dir into one rect per constraint.
//
// Segments are sized in order, each clamped to what is still available, so
// earlier constraints win when the area is too small. Space left over after
// every segment got its base size goes to the Min segments; with no Min
// segment it stays unused at the end. The returned rects are contiguous and
// never exceed area.
func Split(area Rect, dir Direction, constraints ...Constraint) []Rect {
	total := max(0, area.Height)
	if dir == Horizontal {
		total = max(0, area.Width)
	}

	sizes := make([]int, len(constraints))
	remaining := total
	for i, c := range constraints {
		base := c.value
		if c.kind == kindPercentage {
			base = total * c.value / 100
		}
		sizes[i] = min(base, remaining)
		remaining -= sizes[i]
	}

	if remaining > 0 {
		var flexible []int
		for i, c := range constraints {
			if c.kind == kindMin {
				flexible = append(flexible, i)
			}
		}
		if len(flexible) > 0 {
			share := remaining / len(flexible)
			extra := remaining % len(flexible)
			for n, i := range flexible {
				sizes[i] += share
				if n == 0 {
					sizes[i] += extra
				}
			}
		}
	}

	rects := make([]Rect, len(constraints))
	offset := 0
	for i, size := range sizes {
		if dir == Horizontal {
			rects[i] = Rect{X: area.X + offset, Y: area.Y, Width: size, Height: max(0, area.Height)}
		} else {
			rects[i] = Rect{X: area.X, Y: area.Y + offset, Width: max(0, area.Width), Height: size}
		}
		offset += size
	}
	return rects
}
