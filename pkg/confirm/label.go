// Package confirm implements a yes/no confirmation dialog for bubbletea
// programs: a key-driven State, a stateless Dialog renderer and the
// ButtonLabel type both share.
package confirm

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ErrEmptyLabel is returned when a button label is parsed from "".
var ErrEmptyLabel = errors.New("confirm: empty button label")

// mnemonicPattern finds a single letter, digit or underscore in parentheses.
var mnemonicPattern = regexp.MustCompile(`\(([\p{L}\p{N}_])\)`)

// ButtonLabel is the text of a dialog button and the key that activates it.
type ButtonLabel struct {
	label   string
	control rune
	style   lipgloss.Style
}

// NewButtonLabel creates a label with an explicit control key. No parsing is
// done; label is displayed as given.
func NewButtonLabel(label string, control rune) ButtonLabel {
	return ButtonLabel{
		label:   label,
		control: unicode.ToLower(control),
		style:   lipgloss.NewStyle(),
	}
}

// ParseButtonLabel derives the control key from s. A parenthesized character
// such as "(Y)es" or "S(ì)" becomes the control and s is kept as is.
// Otherwise the first character is the control and is wrapped in
// parentheses: "No" becomes "(N)o".
func ParseButtonLabel(s string) (ButtonLabel, error) {
	if s == "" {
		return ButtonLabel{}, ErrEmptyLabel
	}

	if m := mnemonicPattern.FindStringSubmatch(s); m != nil {
		r, _ := utf8.DecodeRuneInString(m[1])
		return NewButtonLabel(s, r), nil
	}

	first, size := utf8.DecodeRuneInString(s)
	return NewButtonLabel("("+string(first)+")"+s[size:], first), nil
}

// MustParseButtonLabel is like ParseButtonLabel but panics on error. It is
// meant for labels fixed at compile time.
func MustParseButtonLabel(s string) ButtonLabel {
	b, err := ParseButtonLabel(s)
	if err != nil {
		panic(err)
	}
	return b
}

// YesButton is the stock "(Y)es" button, highlighted in yellow.
func YesButton() ButtonLabel {
	return NewButtonLabel("(Y)es", 'y').WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("3")))
}

// NoButton is the stock "(N)o" button.
func NoButton() ButtonLabel {
	return NewButtonLabel("(N)o", 'n')
}

func (b ButtonLabel) Label() string         { return b.label }
func (b ButtonLabel) Control() rune         { return b.control }
func (b ButtonLabel) Style() lipgloss.Style { return b.style }

// WithStyle returns a copy of b drawn with style.
func (b ButtonLabel) WithStyle(style lipgloss.Style) ButtonLabel {
	b.style = style
	return b
}

// Width is the display width of the label in cells.
func (b ButtonLabel) Width() int {
	return runewidth.StringWidth(b.label)
}

// Footprint is the number of cells the button takes in the button row: the
// label plus one blank cell on each side.
func (b ButtonLabel) Footprint() int {
	return b.Width() + 2
}

// Matches reports whether pressing r activates the button. Case is ignored.
func (b ButtonLabel) Matches(r rune) bool {
	return b.control != 0 && unicode.ToLower(r) == b.control
}

// controlIndex returns the byte offset of the control character inside the
// label, preferring a parenthesized occurrence, or -1.
func (b ButtonLabel) controlIndex() int {
	for _, loc := range mnemonicPattern.FindAllStringSubmatchIndex(b.label, -1) {
		r, _ := utf8.DecodeRuneInString(b.label[loc[2]:])
		if unicode.ToLower(r) == b.control {
			return loc[2]
		}
	}
	return strings.IndexFunc(b.label, func(r rune) bool {
		return unicode.ToLower(r) == b.control
	})
}

func (b ButtonLabel) String() string {
	return b.label
}
