package confirm

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	leftKey  = tea.KeyMsg{Type: tea.KeyLeft}
	rightKey = tea.KeyMsg{Type: tea.KeyRight}
	upKey    = tea.KeyMsg{Type: tea.KeyUp}
)

func newOpenState(t *testing.T) (*State, chan Result) {
	t.Helper()
	ch := NewListener(4)
	s := NewState(7, "Quit", "Are you sure?").SetListener(ch).Open()
	require.True(t, s.IsOpened())
	return s, ch
}

func requireResult(t *testing.T, ch chan Result, want Choice) {
	t.Helper()
	select {
	case r := <-ch:
		assert.Equal(t, ID(7), r.ID)
		assert.Equal(t, want, r.Choice)
	default:
		t.Fatalf("no result sent, want %v", want)
	}
}

func requireNoResult(t *testing.T, ch chan Result) {
	t.Helper()
	select {
	case r := <-ch:
		t.Fatalf("unexpected result %+v", r)
	default:
	}
}

func TestNewState_Defaults(t *testing.T) {
	s := NewState(1, "Title", "Body")

	assert.Equal(t, ID(1), s.ID())
	assert.False(t, s.IsOpened())
	assert.False(t, s.IsModal())
	assert.True(t, s.YesSelected())
	assert.Equal(t, "Title", s.Title().Plain())
	assert.Equal(t, "Body", s.Text().Plain())
	assert.Equal(t, "Yes", s.YesButton().Label())
	assert.Equal(t, 'y', s.YesButton().Control())

	no, ok := s.NoButton()
	require.True(t, ok)
	assert.Equal(t, "No", no.Label())
	assert.Equal(t, 'n', no.Control())
}

func TestDefaultState(t *testing.T) {
	s := DefaultState()

	assert.Equal(t, 0, s.Text().Height())
	assert.True(t, s.Title().IsEmpty())
	assert.False(t, s.IsOpened())
}

func TestHandle_Closed(t *testing.T) {
	ch := NewListener(1)
	s := NewState(7, "Quit", "").SetListener(ch).SetModal(true)

	for _, k := range []tea.KeyMsg{escKey, enterKey, runeKey('y'), runeKey('x')} {
		assert.False(t, s.Handle(k))
	}
	requireNoResult(t, ch)
}

func TestHandle_EscDismisses(t *testing.T) {
	s, ch := newOpenState(t)

	assert.True(t, s.Handle(escKey))
	assert.False(t, s.IsOpened())
	requireResult(t, ch, Dismissed)
}

func TestHandle_EscIgnoredWhenModal(t *testing.T) {
	s, ch := newOpenState(t)
	s.SetModal(true)

	assert.True(t, s.Handle(escKey))
	assert.True(t, s.IsOpened())
	requireNoResult(t, ch)
}

func TestHandle_ControlKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want Choice
	}{
		{"yes", runeKey('y'), Yes},
		{"yes upper", runeKey('Y'), Yes},
		{"no", runeKey('n'), No},
		{"no upper", runeKey('N'), No},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ch := newOpenState(t)
			assert.True(t, s.Handle(tt.key))
			assert.False(t, s.IsOpened())
			requireResult(t, ch, tt.want)
		})
	}
}

func TestHandle_ControlKeysWorkWhenModal(t *testing.T) {
	s, ch := newOpenState(t)
	s.SetModal(true)

	assert.True(t, s.Handle(runeKey('n')))
	assert.False(t, s.IsOpened())
	requireResult(t, ch, No)
}

func TestHandle_YesWinsSharedControl(t *testing.T) {
	s, ch := newOpenState(t)
	s.SetYesButton(NewButtonLabel("Okay", 'o')).SetNoButton(NewButtonLabel("Oops", 'o'))

	assert.True(t, s.Handle(runeKey('o')))
	requireResult(t, ch, Yes)
}

func TestHandle_SelectionToggle(t *testing.T) {
	s, ch := newOpenState(t)

	assert.True(t, s.Handle(rightKey))
	assert.False(t, s.YesSelected())
	assert.True(t, s.Handle(rightKey))
	assert.False(t, s.YesSelected())
	assert.True(t, s.Handle(enterKey))
	requireResult(t, ch, No)

	s.Open()
	assert.True(t, s.Handle(leftKey))
	assert.True(t, s.YesSelected())
	assert.True(t, s.Handle(enterKey))
	requireResult(t, ch, Yes)
}

func TestHandle_SingleButtonAlwaysYes(t *testing.T) {
	s, ch := newOpenState(t)
	s.RemoveNoButton().SetYesSelected(false)

	_, ok := s.NoButton()
	assert.False(t, ok)
	assert.True(t, s.YesSelected())

	assert.False(t, s.Handle(rightKey))
	assert.False(t, s.Handle(runeKey('n')))
	assert.True(t, s.YesSelected())
	assert.True(t, s.IsOpened())

	assert.True(t, s.Handle(enterKey))
	requireResult(t, ch, Yes)
}

func TestHandle_OtherKeysFollowModality(t *testing.T) {
	s, ch := newOpenState(t)

	assert.False(t, s.Handle(runeKey('x')))
	assert.False(t, s.Handle(upKey))
	assert.False(t, s.Handle(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}, Alt: true}))
	assert.True(t, s.IsOpened())

	s.SetModal(true)
	assert.True(t, s.Handle(runeKey('x')))
	assert.True(t, s.Handle(upKey))
	assert.True(t, s.IsOpened())
	requireNoResult(t, ch)
}

func TestHandle_CustomButtons(t *testing.T) {
	s, ch := newOpenState(t)
	s.SetYesButton(MustParseButtonLabel("S(ì)")).SetNoButton(MustParseButtonLabel("Nein"))

	assert.False(t, s.Handle(runeKey('y')))
	assert.True(t, s.Handle(runeKey('Ì')))
	requireResult(t, ch, Yes)
}

func TestHandleMsg_IgnoresNonKeys(t *testing.T) {
	s, ch := newOpenState(t)
	s.SetModal(true)

	assert.False(t, s.HandleMsg(tea.WindowSizeMsg{Width: 10, Height: 10}))
	assert.True(t, s.HandleMsg(runeKey('y')))
	requireResult(t, ch, Yes)
}

func TestOpenClose_Idempotent(t *testing.T) {
	ch := NewListener(4)
	s := NewState(7, "", "").SetListener(ch)

	s.Close()
	assert.False(t, s.IsOpened())
	s.Open().Open()
	assert.True(t, s.IsOpened())
	s.Close().Close()
	assert.False(t, s.IsOpened())
	requireNoResult(t, ch)
}

func TestNotify_DropTolerant(t *testing.T) {
	t.Run("no listener", func(t *testing.T) {
		s := NewState(7, "", "").Open()
		assert.True(t, s.Handle(runeKey('y')))
		assert.False(t, s.IsOpened())
	})

	t.Run("unbuffered listener", func(t *testing.T) {
		ch := NewListener(0)
		s := NewState(7, "", "").SetListener(ch).Open()
		assert.True(t, s.Handle(enterKey))
		assert.False(t, s.IsOpened())

		select {
		case r := <-ch:
			assert.Equal(t, Result{ID: 7, Choice: Yes}, r)
		case <-time.After(time.Second):
			t.Fatal("result lost on unbuffered listener")
		}
	})

	t.Run("listener closed while full", func(t *testing.T) {
		ch := NewListener(1)
		ch <- Result{ID: 1}
		s := NewState(7, "", "").SetListener(ch).Open()
		assert.True(t, s.Handle(runeKey('n')))
		assert.NotPanics(t, func() { close(ch) })
	})

	t.Run("closed listener", func(t *testing.T) {
		ch := NewListener(1)
		close(ch)
		s := NewState(7, "", "").SetListener(ch).Open()
		assert.NotPanics(t, func() { s.Handle(escKey) })
		assert.False(t, s.IsOpened())
	})
}

func TestSharedListener(t *testing.T) {
	ch := NewListener(4)
	a := NewState(1, "", "").SetListener(ch).Open()
	b := NewState(2, "", "").SetListener(ch).Open()

	b.Handle(runeKey('n'))
	a.Handle(enterKey)

	assert.Equal(t, Result{ID: 2, Choice: No}, <-ch)
	assert.Equal(t, Result{ID: 1, Choice: Yes}, <-ch)
}

func TestSharedListener_MoreResultsThanBuffer(t *testing.T) {
	ch := NewListener(1)
	a := NewState(1, "", "").SetListener(ch).Open()
	b := NewState(2, "", "").SetListener(ch).Open()

	a.Handle(runeKey('y'))
	b.Handle(runeKey('n'))

	var got []Result
	for len(got) < 2 {
		select {
		case r := <-ch:
			got = append(got, r)
		case <-time.After(time.Second):
			t.Fatalf("got %v, want two results", got)
		}
	}
	assert.ElementsMatch(t, []Result{{ID: 1, Choice: Yes}, {ID: 2, Choice: No}}, got)
}

func TestHandle_SpaceControl(t *testing.T) {
	s, ch := newOpenState(t)
	s.SetYesButton(MustParseButtonLabel(" ok"))
	require.Equal(t, ' ', s.YesButton().Control())

	assert.True(t, s.Handle(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}))
	requireResult(t, ch, Yes)
}

func TestHandle_PasteIsNotAnAnswer(t *testing.T) {
	s, ch := newOpenState(t)

	assert.False(t, s.Handle(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}, Paste: true}))
	assert.True(t, s.IsOpened())
	requireNoResult(t, ch)
}

func TestSetLogger_RecordsTransitions(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := NewState(7, "", "").SetLogger(logger).Open()
	s.Handle(runeKey('n'))

	assert.Contains(t, out.String(), "dialog_opened")
	assert.Contains(t, out.String(), "choice=no")

	assert.NotPanics(t, func() { s.SetLogger(nil).Open() })
}

func TestChoice_Bool(t *testing.T) {
	v, ok := Yes.Bool()
	assert.True(t, v)
	assert.True(t, ok)

	v, ok = No.Bool()
	assert.False(t, v)
	assert.True(t, ok)

	_, ok = Dismissed.Bool()
	assert.False(t, ok)

	assert.Equal(t, "dismissed", Dismissed.String())
}

func TestWaitForResult(t *testing.T) {
	ch := NewListener(1)
	ch <- Result{ID: 3, Choice: Yes}

	msg := WaitForResult(ch)()
	assert.Equal(t, ResultMsg{ID: 3, Choice: Yes}, msg)

	close(ch)
	assert.Nil(t, WaitForResult(ch)())
}

func TestNewID_InRange(t *testing.T) {
	seen := map[ID]bool{}
	for range 32 {
		seen[NewID()] = true
	}
	assert.Greater(t, len(seen), 1)
}
