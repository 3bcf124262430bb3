package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sjoeboo/tuiconfirm/pkg/confirm"
	"github.com/sjoeboo/tuiconfirm/pkg/popup"
)

// Prompt asks a single question and quits with the answer. It backs the
// confirm command.
type Prompt struct {
	overlay *ConfirmOverlay
	results chan confirm.Result
	choice  confirm.Choice
	done    bool
}

// NewPrompt opens state and routes its result back into the program.
func NewPrompt(state *confirm.State, dialog confirm.Dialog) *Prompt {
	results := confirm.NewListener(1)
	state.SetListener(results).Open()
	return &Prompt{
		overlay: NewConfirmOverlay(state, dialog),
		results: results,
	}
}

// Choice is the answer; Dismissed until the dialog closes.
func (p *Prompt) Choice() confirm.Choice { return p.choice }

func (p *Prompt) Init() tea.Cmd {
	return confirm.WaitForResult(p.results)
}

func (p *Prompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.overlay.SetSize(msg.Width, msg.Height)

	case confirm.ResultMsg:
		if msg.ID == p.overlay.State().ID() {
			p.choice = msg.Choice
			p.done = true
			return p, tea.Quit
		}
		return p, confirm.WaitForResult(p.results)

	case tea.KeyMsg:
		// ctrl+c always leaves, even a modal dialog
		if msg.Type == tea.KeyCtrlC {
			p.overlay.Hide()
			p.choice = confirm.Dismissed
			p.done = true
			return p, tea.Quit
		}
		p.overlay.HandleKey(msg)
	}
	return p, nil
}

func (p *Prompt) View() string {
	if p.done {
		return ""
	}
	return p.overlay.Compose("")
}

// Notice shows one popup message and quits when it expires or on any key.
// It backs the popup command.
type Notice struct {
	overlay *PopupOverlay
	message popup.Message
	timeout time.Duration
}

func NewNotice(msg popup.Message, timeout time.Duration) *Notice {
	return &Notice{
		overlay: NewPopupOverlay(newPopupModel()),
		message: msg,
		timeout: timeout,
	}
}

func (n *Notice) Init() tea.Cmd {
	return n.overlay.Show(n.message, n.timeout)
}

func (n *Notice) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		n.overlay.SetSize(msg.Width, msg.Height)
		return n, nil
	case tea.KeyMsg:
		n.overlay.Hide()
		return n, tea.Quit
	}

	cmd := n.overlay.Update(msg)
	if !n.overlay.IsVisible() {
		return n, tea.Quit
	}
	return n, cmd
}

func (n *Notice) View() string {
	if !n.overlay.IsVisible() {
		return ""
	}
	return n.overlay.Compose("")
}
