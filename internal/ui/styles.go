package ui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	darkmode "github.com/thiagokokada/dark-mode-go"

	"github.com/sjoeboo/tuiconfirm/internal/config"
	"github.com/sjoeboo/tuiconfirm/pkg/confirm"
	"github.com/sjoeboo/tuiconfirm/pkg/popup"
	"github.com/sjoeboo/tuiconfirm/pkg/text"
	"github.com/sjoeboo/tuiconfirm/pkg/widget"
)

// Theme represents the current color scheme
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	// ThemeAuto follows the OS appearance setting
	ThemeAuto  Theme = "auto"
)

// detectDarkMode reports whether the OS prefers a dark appearance
var detectDarkMode = darkmode.IsDarkMode

// resolveTheme maps a configured theme name to a palette. "auto" asks the OS
// and falls back to dark when it cannot tell.
func resolveTheme(name string) Theme {
	switch Theme(name) {
	case ThemeLight:
		return ThemeLight
	case ThemeAuto:
		dark, err := detectDarkMode()
		if err == nil && !dark {
			return ThemeLight
		}
	}
	return ThemeDark
}

// currentTheme holds the active theme (set at init)
var currentTheme Theme = ThemeDark

type palette struct {
	Bg, Surface, Border, Text, TextDim lipgloss.Color
	Accent, Cyan, Yellow, Red          lipgloss.Color
}

// Dark Theme - Oasis Lagoon
var darkColors = palette{
	Bg:      lipgloss.Color("#101825"), // bg.core
	Surface: lipgloss.Color("#22385C"), // bg.surface
	Border:  lipgloss.Color("#264870"), // mid-navy
	Text:    lipgloss.Color("#D9E6FA"), // fg.core
	TextDim: lipgloss.Color("#8FB0D0"), // blue-gray dim
	Accent:  lipgloss.Color("#58B8FD"), // lagoon primary blue
	Cyan:    lipgloss.Color("#68C0B6"), // terminal cyan/teal
	Yellow:  lipgloss.Color("#F0E68C"), // khaki
	Red:     lipgloss.Color("#FF7979"), // terminal red
}

// Light Theme - Oasis Dawn
var lightColors = palette{
	Bg:      lipgloss.Color("#EEF4FF"), // lagoon[50]
	Surface: lipgloss.Color("#D0E8FE"), // lagoon[100]
	Border:  lipgloss.Color("#B2DCFE"), // lagoon[200]
	Text:    lipgloss.Color("#10426d"), // dark navy text
	TextDim: lipgloss.Color("#1f3f71"),
	Accent:  lipgloss.Color("#1670AD"), // lagoon[800]
	Cyan:    lipgloss.Color("#064658"),
	Yellow:  lipgloss.Color("#6b2e00"),
	Red:     lipgloss.Color("#663021"),
}

// Active color variables (set by InitTheme)
var (
	ColorBg      lipgloss.Color
	ColorSurface lipgloss.Color
	ColorBorder  lipgloss.Color
	ColorText    lipgloss.Color
	ColorTextDim lipgloss.Color
	ColorAccent  lipgloss.Color
	ColorCyan    lipgloss.Color
	ColorYellow  lipgloss.Color
	ColorRed     lipgloss.Color
)

// Styles derived from the palette
var (
	TitleStyle      lipgloss.Style
	DimStyle        lipgloss.Style
	StatusStyle     lipgloss.Style
	FrameStyle      lipgloss.Style
	HelpKeyStyle    lipgloss.Style
	HelpDescStyle   lipgloss.Style
	DialogBgStyle   lipgloss.Style
	DialogBorder    lipgloss.Style
	DialogTitle     lipgloss.Style
	DialogText      lipgloss.Style
	DialogButton    lipgloss.Style
	DialogButtonSel lipgloss.Style
	PopupBgStyle    lipgloss.Style
	PopupBorder     lipgloss.Style
	PopupText       lipgloss.Style
)

// themeMu protects global color/style variables during live theme switches.
var themeMu sync.RWMutex

// InitTheme sets the active color palette based on theme name.
// Must be called before any UI rendering.
func InitTheme(theme string) {
	ApplyTheme(config.ThemeSettings{Name: theme})
}

// ApplyTheme sets the palette from config, including colour overrides.
func ApplyTheme(settings config.ThemeSettings) {
	theme := resolveTheme(settings.Name)

	themeMu.Lock()
	defer themeMu.Unlock()

	p := darkColors
	if theme == ThemeLight {
		p = lightColors
	}
	currentTheme = theme
	if settings.Accent != "" {
		p.Accent = lipgloss.Color(settings.Accent)
	}
	if settings.Background != "" {
		p.Surface = lipgloss.Color(settings.Background)
	}

	ColorBg = p.Bg
	ColorSurface = p.Surface
	ColorBorder = p.Border
	ColorText = p.Text
	ColorTextDim = p.TextDim
	ColorAccent = p.Accent
	ColorCyan = p.Cyan
	ColorYellow = p.Yellow
	ColorRed = p.Red

	// Reinitialize styles with new colors
	initStyles()
}

// GetCurrentTheme returns the active theme
func GetCurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

func init() {
	// Default to dark theme at package init
	InitTheme("dark")
}

func initStyles() {
	TitleStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	DimStyle = lipgloss.NewStyle().Foreground(ColorTextDim)
	StatusStyle = lipgloss.NewStyle().Foreground(ColorText).Blink(true)
	FrameStyle = lipgloss.NewStyle().Foreground(ColorBorder)
	HelpKeyStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorTextDim)

	DialogBgStyle = lipgloss.NewStyle().Background(ColorSurface)
	DialogBorder = lipgloss.NewStyle().Foreground(ColorAccent)
	DialogTitle = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	DialogText = lipgloss.NewStyle().Foreground(ColorText)
	DialogButton = lipgloss.NewStyle().Foreground(ColorTextDim)
	DialogButtonSel = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true).Underline(true)

	PopupBgStyle = lipgloss.NewStyle().Background(ColorYellow)
	PopupBorder = lipgloss.NewStyle().Foreground(ColorRed)
	PopupText = lipgloss.NewStyle().Foreground(ColorBg)
}

// ConfirmDialog returns the dialog renderer for the active theme.
func ConfirmDialog(border widget.BorderType) confirm.Dialog {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return confirm.NewDialog().
		Background(DialogBgStyle).
		Borders(widget.BordersAll).
		BorderType(border).
		BorderStyle(DialogBorder).
		ButtonStyle(DialogButton).
		SelectedButtonStyle(DialogButtonSel).
		TextStyle(DialogText)
}

// DialogTitleLine styles a dialog title for the active theme.
func DialogTitleLine(title string) text.Line {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return text.StyledLine(title, DialogTitle)
}

// PopupMessage builds a themed popup from the popup settings.
func PopupMessage(title, body string, settings config.PopupSettings) popup.Message {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return popup.New(title, body).
		Background(PopupBgStyle).
		Borders(widget.BordersAll).
		BorderType(settings.Border()).
		BorderStyle(PopupBorder).
		TextStyle(PopupText).
		TitleAlignment(settings.TitleAlign()).
		TextAlignment(settings.TextAlign()).
		Padding(widget.UniformPadding(settings.PaddingCells()))
}
