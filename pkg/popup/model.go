package popup

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ExpiredMsg is sent when a popup shown with a timeout runs out. Messages from
// earlier Show calls are ignored.
type ExpiredMsg struct {
	seq int
}

// Model shows one Message at a time and hides it after a timeout or on
// Dismiss.
type Model struct {
	message Message
	visible bool
	seq     int
	log     *slog.Logger
}

// NewModel creates a hidden popup model.
func NewModel() Model {
	return Model{log: slog.New(slog.DiscardHandler)}
}

// WithLogger returns a copy of m logging to l.
func (m Model) WithLogger(l *slog.Logger) Model {
	if l != nil {
		m.log = l
	}
	return m
}

// Show displays msg, replacing any popup already shown. With a positive
// timeout the returned command hides it again; otherwise it stays until
// Dismiss and the command is nil.
func (m *Model) Show(msg Message, timeout time.Duration) tea.Cmd {
	m.seq++
	m.message = msg
	m.visible = true
	m.log.Debug("popup_shown", slog.String("title", msg.Title().Plain()), slog.Duration("timeout", timeout))

	if timeout <= 0 {
		return nil
	}
	seq := m.seq
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return ExpiredMsg{seq: seq}
	})
}

// Dismiss hides the popup. Pending timeouts are invalidated.
func (m *Model) Dismiss() {
	if m.visible {
		m.log.Debug("popup_dismissed")
	}
	m.seq++
	m.visible = false
}

func (m Model) Visible() bool    { return m.visible }
func (m Model) Message() Message { return m.message }

// Update handles ExpiredMsg.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if e, ok := msg.(ExpiredMsg); ok && e.seq == m.seq && m.visible {
		m.visible = false
		m.log.Debug("popup_expired")
	}
	return m, nil
}

// View draws the popup over background when visible.
func (m Model) View(background string, width, height int) string {
	if !m.visible {
		return background
	}
	return m.message.View(background, width, height)
}
