// Package popup draws a centered, non-interactive message box over a host
// view. Model adds an optional timeout for bubbletea programs.
package popup

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/sjoeboo/tuiconfirm/pkg/geometry"
	"github.com/sjoeboo/tuiconfirm/pkg/text"
	"github.com/sjoeboo/tuiconfirm/pkg/widget"
)

// Message is an informational box. Like confirm.Dialog it is a value: every
// setter returns a modified copy.
type Message struct {
	title          text.Line
	message        text.Text
	background     lipgloss.Style
	borders        widget.Borders
	borderType     widget.BorderType
	borderStyle    lipgloss.Style
	titleAlignment text.Alignment
	textAlignment  text.Alignment
	textStyle      lipgloss.Style
	padding        widget.Padding
}

// New creates a borderless message with two cells of padding on each side.
func New(title, message string) Message {
	return NewWithText(text.RawLine(title), text.Raw(message))
}

// NewWithText is New for styled content.
func NewWithText(title text.Line, message text.Text) Message {
	return Message{
		title:       title,
		message:     message,
		background:  lipgloss.NewStyle(),
		borderStyle: lipgloss.NewStyle(),
		textStyle:   lipgloss.NewStyle(),
		padding:     widget.UniformPadding(2),
	}
}

func (m Message) Background(style lipgloss.Style) Message {
	m.background = style
	return m
}

func (m Message) Borders(b widget.Borders) Message {
	m.borders = b
	return m
}

func (m Message) BorderType(t widget.BorderType) Message {
	m.borderType = t
	return m
}

func (m Message) BorderStyle(style lipgloss.Style) Message {
	m.borderStyle = style
	return m
}

func (m Message) TitleAlignment(a text.Alignment) Message {
	m.titleAlignment = a
	return m
}

func (m Message) TextAlignment(a text.Alignment) Message {
	m.textAlignment = a
	return m
}

func (m Message) TextStyle(style lipgloss.Style) Message {
	m.textStyle = style
	return m
}

func (m Message) Padding(p widget.Padding) Message {
	m.padding = p
	return m
}

func (m Message) Title() text.Line { return m.title }
func (m Message) Text() text.Text  { return m.message }

// Size returns the box size before it is fitted into an area. Both
// dimensions are rounded up to an even number of cells.
func (m Message) Size() (width, height int) {
	width = m.message.Width() + m.padding.Horizontal() + 2
	height = m.message.Height() + m.padding.Vertical() + 1
	return roundEven(width), roundEven(height)
}

// Area returns where the box goes inside area.
func (m Message) Area(area geometry.Rect) geometry.Rect {
	width, height := m.Size()
	return geometry.CenteredRectWithSize(width, height+1, area)
}

// Render draws the box centered in area.
func (m Message) Render(buf *cellbuf.Buffer, area geometry.Rect) {
	if buf == nil || area.IsEmpty() {
		return
	}
	box := m.Area(area)
	if box.IsEmpty() {
		return
	}

	block := widget.NewBlock()
	block.Title = m.title
	block.TitleAlignment = m.titleAlignment
	block.Borders = m.borders
	block.BorderType = m.borderType
	block.BorderStyle = m.borderStyle
	block.Style = m.background
	block.Padding = m.padding

	widget.Clear(buf, box)
	widget.NewParagraph(m.message).
		WithStyle(m.textStyle.Inherit(m.background)).
		WithAlignment(m.textAlignment).
		WithBlock(block).
		Render(buf, box)
}

// View draws the box over background, a frame of the given size.
func (m Message) View(background string, width, height int) string {
	if width <= 0 || height <= 0 {
		return background
	}
	buf := widget.NewCanvas(background, width, height)
	m.Render(buf, geometry.NewRect(0, 0, width, height))
	return widget.Render(buf)
}

func roundEven(n int) int {
	if n%2 == 1 {
		return n + 1
	}
	return n
}
