package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sjoeboo/tuiconfirm/pkg/confirm"
	"github.com/sjoeboo/tuiconfirm/pkg/popup"
)

// Overlay is the common interface of everything drawn over the main view.
// The App routes keys to the topmost visible overlay first.
type Overlay interface {
	// IsVisible reports whether the overlay is currently shown.
	IsVisible() bool

	// Hide dismisses the overlay without a result.
	Hide()

	// Compose draws the overlay over background. Called only when
	// IsVisible() is true.
	Compose(background string) string

	// HandleKey processes a key event. Returns the resulting command and whether
	// the key was consumed (true = stop further processing).
	HandleKey(key tea.KeyMsg) (cmd tea.Cmd, consumed bool)

	// SetSize informs the overlay of the current terminal dimensions.
	SetSize(width, height int)
}

// ConfirmOverlay shows a confirmation dialog.
type ConfirmOverlay struct {
	state  *confirm.State
	dialog confirm.Dialog
	width  int
	height int
}

// NewConfirmOverlay wraps state, drawn with dialog.
func NewConfirmOverlay(state *confirm.State, dialog confirm.Dialog) *ConfirmOverlay {
	return &ConfirmOverlay{state: state, dialog: dialog}
}

func (o *ConfirmOverlay) State() *confirm.State      { return o.state }
func (o *ConfirmOverlay) SetDialog(d confirm.Dialog) { o.dialog = d }
func (o *ConfirmOverlay) IsVisible() bool            { return o.state.IsOpened() }
func (o *ConfirmOverlay) SetSize(width, height int)  { o.width, o.height = width, height }

func (o *ConfirmOverlay) Compose(background string) string {
	return o.dialog.View(background, o.width, o.height, o.state)
}

// Show opens the dialog.
func (o *ConfirmOverlay) Show() {
	o.state.Open()
}

// Hide closes the dialog without notifying its listener.
func (o *ConfirmOverlay) Hide() {
	o.state.Close()
}

func (o *ConfirmOverlay) HandleKey(key tea.KeyMsg) (tea.Cmd, bool) {
	return nil, o.state.Handle(key)
}

// PopupOverlay shows popup messages. Esc or Enter dismisses the current one.
type PopupOverlay struct {
	model  popup.Model
	width  int
	height int
}

func NewPopupOverlay(model popup.Model) *PopupOverlay {
	return &PopupOverlay{model: model}
}

// Show displays msg for timeout; zero keeps it until dismissed.
func (o *PopupOverlay) Show(msg popup.Message, timeout time.Duration) tea.Cmd {
	return o.model.Show(msg, timeout)
}

func (o *PopupOverlay) Hide()                     { o.model.Dismiss() }
func (o *PopupOverlay) IsVisible() bool           { return o.model.Visible() }
func (o *PopupOverlay) SetSize(width, height int) { o.width, o.height = width, height }

func (o *PopupOverlay) Compose(background string) string {
	return o.model.View(background, o.width, o.height)
}

// Update forwards timeouts to the popup model.
func (o *PopupOverlay) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	o.model, cmd = o.model.Update(msg)
	return cmd
}

func (o *PopupOverlay) HandleKey(key tea.KeyMsg) (tea.Cmd, bool) {
	if !o.model.Visible() {
		return nil, false
	}
	switch key.Type {
	case tea.KeyEsc, tea.KeyEnter:
		o.model.Dismiss()
		return nil, true
	}
	return nil, false
}
