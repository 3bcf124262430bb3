package geometry

// CenteredRectWithSize returns a rect of the requested size centered inside
// area. The size is clamped to the area so the result never leaves it.
//
// Leftover space is split with floor division: when it is odd the extra cell
// ends up after the content, so the content leans toward the top/left.
func CenteredRectWithSize(width, height int, area Rect) Rect {
	width = clamp(width, 0, max(0, area.Width))
	height = clamp(height, 0, max(0, area.Height))

	remainingWidth := max(0, area.Width) - width
	remainingHeight := max(0, area.Height) - height

	rows := Split(area, Vertical,
		Max(remainingHeight/2),
		Length(height),
		Max(remainingHeight/2),
	)
	return Split(rows[1], Horizontal,
		Max(remainingWidth/2),
		Length(width),
		Max(remainingWidth/2),
	)[1]
}

// CenteredRect returns a rect covering percentX by percentY percent of area,
// centered inside it.
func CenteredRect(percentX, percentY int, area Rect) Rect {
	percentX = clamp(percentX, 0, 100)
	percentY = clamp(percentY, 0, 100)

	rows := Split(area, Vertical,
		Percentage((100-percentY)/2),
		Percentage(percentY),
		Percentage((100-percentY)/2),
	)
	return Split(rows[1], Horizontal,
		Percentage((100-percentX)/2),
		Percentage(percentX),
		Percentage((100-percentX)/2),
	)[1]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
