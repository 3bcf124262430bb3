package text

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"
)

// Wrap breaks a rendered (possibly ANSI styled) row into rows no wider than
// width, preferring word boundaries. With trim set, whitespace at the start
// of every produced row is dropped.
func Wrap(rendered string, width int, trim bool) []string {
	if width <= 0 {
		return nil
	}
	if ansi.StringWidth(rendered) <= width {
		if trim {
			return []string{trimLeft(rendered)}
		}
		return []string{rendered}
	}

	rows := strings.Split(cellbuf.Wrap(rendered, width, ""), "\n")
	if trim {
		for i, row := range rows {
			rows[i] = trimLeft(row)
		}
	}
	return rows
}

// trimLeft removes leading whitespace cells while keeping escape sequences.
func trimLeft(row string) string {
	plain := ansi.Strip(row)
	lead := ansi.StringWidth(plain) - ansi.StringWidth(strings.TrimLeftFunc(plain, unicode.IsSpace))
	if lead == 0 {
		return row
	}
	return ansi.TruncateLeft(row, lead, "")
}

// Offset returns the column at which content of the given width starts when
// aligned inside avail cells.
func Offset(a Alignment, width, avail int) int {
	if width >= avail {
		return 0
	}
	switch a {
	case AlignCenter:
		return (avail - width) / 2
	case AlignRight:
		return avail - width
	default:
		return 0
	}
}
