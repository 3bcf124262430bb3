package confirm

import (
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/sjoeboo/tuiconfirm/pkg/geometry"
	"github.com/sjoeboo/tuiconfirm/pkg/text"
	"github.com/sjoeboo/tuiconfirm/pkg/widget"
)

const (
	horizontalPadding = 2
	verticalPadding   = 2
	minDialogWidth    = 40
)

// Dialog is the look of a confirmation dialog. It holds no state of its own
// and can be reused across frames and dialogs.
type Dialog struct {
	background     lipgloss.Style
	borders        widget.Borders
	borderType     widget.BorderType
	borderStyle    lipgloss.Style
	titleAlignment text.Alignment
	buttonStyle    lipgloss.Style
	selectedStyle  lipgloss.Style
	textStyle      lipgloss.Style
}

// NewDialog returns a rounded, fully bordered dialog with white text and the
// selected button in bold underlined yellow.
func NewDialog() Dialog {
	return Dialog{
		background:     lipgloss.NewStyle(),
		borders:        widget.BordersAll,
		borderType:     widget.BorderRounded,
		borderStyle:    lipgloss.NewStyle(),
		titleAlignment: text.AlignCenter,
		buttonStyle:    lipgloss.NewStyle(),
		selectedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true).Underline(true),
		textStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	}
}

// Background sets the style laid under the whole dialog; usually only its
// background colour matters.
func (d Dialog) Background(style lipgloss.Style) Dialog {
	d.background = style
	return d
}

func (d Dialog) Borders(b widget.Borders) Dialog {
	d.borders = b
	return d
}

func (d Dialog) BorderType(t widget.BorderType) Dialog {
	d.borderType = t
	return d
}

func (d Dialog) BorderStyle(style lipgloss.Style) Dialog {
	d.borderStyle = style
	return d
}

func (d Dialog) TitleAlignment(a text.Alignment) Dialog {
	d.titleAlignment = a
	return d
}

func (d Dialog) ButtonStyle(style lipgloss.Style) Dialog {
	d.buttonStyle = style
	return d
}

func (d Dialog) SelectedButtonStyle(style lipgloss.Style) Dialog {
	d.selectedStyle = style
	return d
}

func (d Dialog) TextStyle(style lipgloss.Style) Dialog {
	d.textStyle = style
	return d
}

// Layout is where each part of a dialog goes.
type Layout struct {
	// Area is the whole dialog, borders included.
	Area geometry.Rect
	// Text is the region the message is wrapped into, before padding.
	Text geometry.Rect
	// Buttons is the button row region at the bottom of Area.
	Buttons geometry.Rect
	Yes     geometry.Rect
	// No is empty when the dialog has no "no" button.
	No geometry.Rect
}

// Size returns the width and height the dialog asks for before it is fitted
// into an area.
//
// The width fits the longest text line or both buttons, whichever is wider,
// with two cells of padding on each side, and is never below 40. The height
// is the text plus a spacer row, the vertical padding and the button row.
func (d Dialog) Size(s *State) (width, height int) {
	buttons := s.YesButton().Footprint()
	if no, ok := s.NoButton(); ok {
		buttons += no.Footprint()
	}
	minWidth := buttons + horizontalPadding*2

	width = minWidth
	if body := s.Text(); body.Height() > 0 {
		width = body.Width() + horizontalPadding*2
	}
	width = max(width, minWidth, minDialogWidth)
	height = s.Text().Height() + 1 + verticalPadding*2 + 1
	return width, height
}

// Layout computes the dialog's geometry inside area without drawing.
func (d Dialog) Layout(area geometry.Rect, s *State) Layout {
	width, height := d.Size(s)
	centered := geometry.CenteredRectWithSize(width, height, area)

	rows := geometry.Split(centered, geometry.Vertical, geometry.Min(1), geometry.Max(2))
	l := Layout{Area: centered, Text: rows[0], Buttons: rows[1]}

	yes := s.YesButton().Footprint()
	no, hasNo := s.NoButton()
	if hasNo {
		total := yes + no.Footprint()
		margin := max(0, l.Buttons.Width-total) / 2
		cols := geometry.Split(l.Buttons, geometry.Horizontal,
			geometry.Length(margin),
			geometry.Max(yes),
			geometry.Max(no.Footprint()),
			geometry.Length(margin),
		)
		l.Yes, l.No = cols[1], cols[2]
		return l
	}

	margin := max(0, l.Buttons.Width-yes) / 2
	cols := geometry.Split(l.Buttons, geometry.Horizontal,
		geometry.Length(margin),
		geometry.Max(yes),
		geometry.Length(margin),
	)
	l.Yes = cols[1]
	l.No = geometry.NewRect(l.Buttons.X, l.Buttons.Y, 0, 0)
	return l
}

// Render draws the dialog for s centered in area. It does not check whether
// s is open and never modifies it.
func (d Dialog) Render(buf *cellbuf.Buffer, area geometry.Rect, s *State) {
	if buf == nil || s == nil || area.IsEmpty() {
		return
	}
	l := d.Layout(area, s)
	if l.Area.IsEmpty() {
		return
	}

	widget.Clear(buf, l.Area)

	block := widget.NewBlock()
	block.Title = s.Title()
	block.TitleAlignment = d.titleAlignment
	block.Borders = d.borders
	block.BorderType = d.borderType
	block.BorderStyle = d.borderStyle
	block.Style = d.background
	block.Render(buf, l.Area)

	padding := widget.NewBlock()
	padding.Padding = widget.Padding{
		Left:   horizontalPadding,
		Right:  horizontalPadding,
		Top:    verticalPadding,
		Bottom: verticalPadding,
	}
	body := widget.NewParagraph(s.Text()).
		WithStyle(d.textStyle.Inherit(d.background)).
		WithWrap(widget.Wrap{Trim: true})
	body.Render(buf, padding.Inner(l.Text))

	yesSelected := s.YesSelected()
	d.renderButton(buf, l.Yes, s.YesButton(), yesSelected)
	if no, ok := s.NoButton(); ok {
		d.renderButton(buf, l.No, no, !yesSelected)
	}
}

// renderButton draws " label " on the first row of rect with the control
// character underlined.
func (d Dialog) renderButton(buf *cellbuf.Buffer, rect geometry.Rect, b ButtonLabel, selected bool) {
	if rect.IsEmpty() {
		return
	}
	base := d.buttonStyle
	if selected {
		base = d.selectedStyle
	}
	base = base.Inherit(d.background)
	style := b.Style().Inherit(base)

	line := text.NewLine(text.StyledSpan(" ", base))
	label := b.Label()
	if i := b.controlIndex(); i >= 0 {
		_, size := utf8.DecodeRuneInString(label[i:])
		line.Spans = append(line.Spans,
			text.StyledSpan(label[:i], style),
			text.StyledSpan(label[i:i+size], style.Underline(true)),
			text.StyledSpan(label[i+size:], style),
		)
	} else {
		line.Spans = append(line.Spans, text.StyledSpan(label, style))
	}
	line.Spans = append(line.Spans, text.StyledSpan(" ", base))

	widget.Paint(buf, rect.X, rect.Y, rect.Width, line.Render(lipgloss.NewStyle()))
}

// View draws the dialog over background, a frame of the given size, and
// returns the result. A closed dialog returns background unchanged.
func (d Dialog) View(background string, width, height int, s *State) string {
	if s == nil || !s.IsOpened() || width <= 0 || height <= 0 {
		return background
	}
	buf := widget.NewCanvas(background, width, height)
	d.Render(buf, geometry.NewRect(0, 0, width, height), s)
	return widget.Render(buf)
}
