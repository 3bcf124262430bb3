package confirm

import tea "github.com/charmbracelet/bubbletea"

// Choice is how a dialog was closed.
type Choice int

const (
	// Dismissed means the dialog was closed without an answer (Esc).
	Dismissed Choice = iota
	Yes
	No
)

// Bool returns the answer and whether there was one.
func (c Choice) Bool() (value, ok bool) {
	switch c {
	case Yes:
		return true, true
	case No:
		return false, true
	default:
		return false, false
	}
}

func (c Choice) String() string {
	switch c {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "dismissed"
	}
}

func choiceOf(yes bool) Choice {
	if yes {
		return Yes
	}
	return No
}

// Result is sent to a dialog's listener when it closes.
type Result struct {
	ID     ID
	Choice Choice
}

// NewListener creates a channel suitable for State.SetListener. Several
// dialogs may share one listener; Result.ID tells them apart. Results that
// do not fit the buffer are delivered once the receiver drains it, so the
// buffer size only decides how many are sent without a helper goroutine.
func NewListener(buffer int) chan Result {
	return make(chan Result, max(0, buffer))
}

// ResultMsg delivers a Result into a bubbletea update loop.
type ResultMsg Result

// WaitForResult returns a command that blocks until ch yields a result. It
// returns nil once ch is closed. Re-issue it after every ResultMsg.
func WaitForResult(ch <-chan Result) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return ResultMsg(r)
	}
}
