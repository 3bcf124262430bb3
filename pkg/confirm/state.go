package confirm

import (
	"log/slog"
	"math/rand/v2"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sjoeboo/tuiconfirm/pkg/text"
)

// ID identifies a dialog in the results it sends.
type ID uint16

// NewID returns a random dialog ID. IDs are not checked for uniqueness.
func NewID() ID {
	return ID(rand.N(1 << 16))
}

// State is the mutable half of a confirmation dialog: what it shows, whether
// it is open and which button is selected. It is driven by Handle and drawn
// by a Dialog.
//
// State is not safe for concurrent use; it belongs to the UI loop.
type State struct {
	id          ID
	title       text.Line
	text        text.Text
	modal       bool
	opened      bool
	yesSelected bool
	yesButton   ButtonLabel
	noButton    *ButtonLabel
	listener    chan<- Result
	keys        KeyMap
	log         *slog.Logger
}

// NewState creates a closed, dismissible dialog with "Yes" and "No" buttons.
func NewState(id ID, title, body string) *State {
	return NewStateWithText(id, text.RawLine(title), text.Raw(body))
}

// NewStateWithText is NewState for styled content.
func NewStateWithText(id ID, title text.Line, body text.Text) *State {
	no := NewButtonLabel("No", 'n')
	return &State{
		id:          id,
		title:       title,
		text:        body,
		yesSelected: true,
		yesButton:   NewButtonLabel("Yes", 'y'),
		noButton:    &no,
		keys:        DefaultKeyMap(),
		log:         slog.New(slog.DiscardHandler),
	}
}

// DefaultState creates an empty dialog with a random ID.
func DefaultState() *State {
	return NewState(NewID(), "", "")
}

func (s *State) SetTitle(title string) *State {
	s.title = text.RawLine(title)
	return s
}

func (s *State) SetTitleLine(title text.Line) *State {
	s.title = title
	return s
}

func (s *State) SetText(body string) *State {
	s.text = text.Raw(body)
	return s
}

func (s *State) SetBody(body text.Text) *State {
	s.text = body
	return s
}

// SetListener sets the channel results are sent to. nil removes it.
func (s *State) SetListener(ch chan<- Result) *State {
	s.listener = ch
	return s
}

func (s *State) SetYesButton(b ButtonLabel) *State {
	s.yesButton = b
	return s
}

func (s *State) SetNoButton(b ButtonLabel) *State {
	s.noButton = &b
	return s
}

// RemoveNoButton turns the dialog into a single-button acknowledgement.
func (s *State) RemoveNoButton() *State {
	s.noButton = nil
	return s
}

// SetModal makes Esc unable to close the dialog.
func (s *State) SetModal(modal bool) *State {
	s.modal = modal
	return s
}

// SetYesSelected sets which button Enter picks.
func (s *State) SetYesSelected(yes bool) *State {
	s.yesSelected = yes
	return s
}

func (s *State) SetKeyMap(k KeyMap) *State {
	s.keys = k
	return s
}

// SetLogger routes state transitions to l at debug level. nil restores the
// discard logger.
func (s *State) SetLogger(l *slog.Logger) *State {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	s.log = l
	return s
}

// Open shows the dialog. It does not notify the listener.
func (s *State) Open() *State {
	if !s.opened {
		s.log.Debug("dialog_opened", slog.Int("id", int(s.id)), slog.Bool("modal", s.modal))
	}
	s.opened = true
	return s
}

// Close hides the dialog. It does not notify the listener.
func (s *State) Close() *State {
	if s.opened {
		s.log.Debug("dialog_closed", slog.Int("id", int(s.id)))
	}
	s.opened = false
	return s
}

func (s *State) ID() ID                 { return s.id }
func (s *State) IsOpened() bool         { return s.opened }
func (s *State) IsModal() bool          { return s.modal }
func (s *State) Title() text.Line       { return s.title }
func (s *State) Text() text.Text        { return s.text }
func (s *State) YesButton() ButtonLabel { return s.yesButton }
func (s *State) KeyMap() KeyMap         { return s.keys }

// NoButton returns the "no" button and whether the dialog has one.
func (s *State) NoButton() (ButtonLabel, bool) {
	if s.noButton == nil {
		return ButtonLabel{}, false
	}
	return *s.noButton, true
}

// YesSelected reports whether Enter would answer yes. It is always true for
// a dialog without a "no" button.
func (s *State) YesSelected() bool {
	return s.noButton == nil || s.yesSelected
}

// HandleMsg is Handle for arbitrary bubbletea messages. Anything other than a
// key press is ignored.
func (s *State) HandleMsg(msg tea.Msg) bool {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	return s.Handle(km)
}

// Handle feeds a key press to an open dialog and reports whether the key was
// consumed.
//
// A button's control key or Enter closes the dialog with an answer; yes is
// checked first when both buttons share a control. Esc closes a dismissible
// dialog without one. Left and Right move the selection when there is a "no"
// button. A modal dialog consumes every key, even those it does not use; a
// dismissible one lets them through. A closed dialog consumes nothing.
func (s *State) Handle(msg tea.KeyMsg) bool {
	if !s.opened {
		return false
	}

	if r, ok := singleRune(msg); ok {
		if s.yesButton.Matches(r) {
			s.finish(Yes)
			return true
		}
		if s.noButton != nil && s.noButton.Matches(r) {
			s.finish(No)
			return true
		}
	}

	switch {
	case key.Matches(msg, s.keys.Dismiss):
		if s.modal {
			return true
		}
		s.finish(Dismissed)
		return true
	case key.Matches(msg, s.keys.Accept):
		s.finish(choiceOf(s.YesSelected()))
		return true
	case s.noButton != nil && key.Matches(msg, s.keys.Left):
		s.yesSelected = true
		return true
	case s.noButton != nil && key.Matches(msg, s.keys.Right):
		s.yesSelected = false
		return true
	}
	return s.modal
}

// singleRune returns the character a key press typed. Pasted text and
// Alt combinations never count.
func singleRune(msg tea.KeyMsg) (rune, bool) {
	if msg.Alt || msg.Paste {
		return 0, false
	}
	switch {
	case msg.Type == tea.KeySpace:
		return ' ', true
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		return msg.Runes[0], true
	}
	return 0, false
}

func (s *State) finish(c Choice) {
	s.opened = false
	s.log.Debug("dialog_answered", slog.Int("id", int(s.id)), slog.String("choice", c.String()))
	s.notify(Result{ID: s.id, Choice: c})
}

// notify delivers r without blocking the UI loop. When the listener has no
// room the send is handed to a goroutine, so a live receiver still gets every
// result. Only a missing or closed listener drops it.
func (s *State) notify(r Result) {
	ch := s.listener
	if ch == nil {
		return
	}
	defer func() {
		if recover() != nil {
			s.log.Debug("listener_closed", slog.Int("id", int(r.ID)))
		}
	}()
	select {
	case ch <- r:
	default:
		s.log.Debug("listener_busy", slog.Int("id", int(r.ID)))
		go func() {
			// The listener may be closed before the receiver catches up
			defer func() { _ = recover() }()
			ch <- r
		}()
	}
}
