package ui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/sjoeboo/tuiconfirm/internal/config"
	"github.com/sjoeboo/tuiconfirm/internal/logging"
	"github.com/sjoeboo/tuiconfirm/pkg/confirm"
	"github.com/sjoeboo/tuiconfirm/pkg/geometry"
	"github.com/sjoeboo/tuiconfirm/pkg/popup"
	"github.com/sjoeboo/tuiconfirm/pkg/text"
	"github.com/sjoeboo/tuiconfirm/pkg/widget"
)

// ConfigMsg carries a reloaded config into the App.
type ConfigMsg struct {
	Config *config.Config
}

type appKeyMap struct {
	Confirm key.Binding
	Popup   key.Binding
	Quit    key.Binding
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "open dialog"),
		),
		Popup: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle popup"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Popup, k.Quit}
}

func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// App is the demo host: a framed status screen that opens a confirmation
// dialog on "p" and reports the answer in a popup.
type App struct {
	cfg     *config.Config
	keys    appKeyMap
	help    help.Model
	confirm *ConfirmOverlay
	popup   *PopupOverlay
	results chan confirm.Result
	status  string
	width   int
	height  int
	log     *slog.Logger
}

// NewApp creates the demo host. A nil cfg uses the defaults.
func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	log := logging.ForComponent(logging.CompUI)

	results := confirm.NewListener(1)
	state := confirm.NewState(confirm.NewID(), "", "").
		SetLogger(logging.ForComponent(logging.CompDialog))

	a := &App{
		cfg:     cfg,
		keys:    defaultAppKeyMap(),
		help:    help.New(),
		confirm: NewConfirmOverlay(state, ConfirmDialog(cfg.Dialog.Border())),
		popup:   NewPopupOverlay(newPopupModel()),
		results: results,
		log:     log,
	}
	a.help.Styles.ShortKey = HelpKeyStyle
	a.help.Styles.ShortDesc = HelpDescStyle
	return a
}

// Init starts listening for dialog results.
func (a *App) Init() tea.Cmd {
	return confirm.WaitForResult(a.results)
}

// Status is the text shown in the middle of the screen.
func (a *App) Status() string {
	switch {
	case a.confirm.IsVisible():
		return "Confirm dialog is being shown..."
	case a.status != "":
		return a.status
	default:
		return "Press `p` to open the dialog"
	}
}

// Confirm exposes the dialog overlay.
func (a *App) Confirm() *ConfirmOverlay { return a.confirm }

// Popup exposes the popup overlay.
func (a *App) Popup() *PopupOverlay { return a.popup }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.confirm.SetSize(msg.Width, msg.Height)
		a.popup.SetSize(msg.Width, msg.Height)
		return a, nil

	case confirm.ResultMsg:
		return a, a.handleResult(confirm.Result(msg))

	case ConfigMsg:
		a.applyConfig(msg.Config)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	return a, a.popup.Update(msg)
}

func (a *App) handleResult(r confirm.Result) tea.Cmd {
	wait := confirm.WaitForResult(a.results)
	if r.ID != a.confirm.State().ID() {
		return wait
	}

	a.status = fmt.Sprintf("Dialog closed with result: %s", r.Choice)
	a.log.Info("dialog_result", slog.Int("id", int(r.ID)), slog.String("choice", r.Choice.String()))

	msg := PopupMessage(" Result ", a.status, a.cfg.Popup)
	return tea.Batch(wait, a.popup.Show(msg, a.cfg.Popup.Timeout()))
}

// handleKey routes a key to the topmost visible overlay first. A non-modal
// dialog lets keys it does not know fall through to the host.
func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	for _, o := range a.overlays() {
		if !o.IsVisible() {
			continue
		}
		if cmd, consumed := o.HandleKey(msg); consumed {
			return cmd
		}
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Confirm):
		a.openConfirm()
	case key.Matches(msg, a.keys.Popup):
		if a.popup.IsVisible() {
			a.popup.Hide()
			return nil
		}
		return a.popup.Show(PopupMessage(" Loading ",
			"Example popup showing a loading message\nThe operation was successful",
			a.cfg.Popup), 0)
	}
	return nil
}

func (a *App) openConfirm() {
	state := a.confirm.State()
	state.SetTitleLine(DialogTitleLine(" Please Select ")).
		SetBody(text.FromStrings(
			"Are you sure you want to delete all files?",
			"This action cannot be undone.",
		)).
		SetListener(a.results)

	if err := a.cfg.Dialog.Apply(state); err != nil {
		a.log.Warn("dialog_config_invalid", slog.String("error", err.Error()))
		a.status = fmt.Sprintf("Invalid dialog config: %v", err)
		return
	}
	a.confirm.Show()
}

func (a *App) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	a.cfg = cfg
	ApplyTheme(cfg.Theme)
	a.help.Styles.ShortKey = HelpKeyStyle
	a.help.Styles.ShortDesc = HelpDescStyle
	a.confirm.SetDialog(ConfirmDialog(cfg.Dialog.Border()))
	a.log.Info("config_applied", slog.String("theme", cfg.Theme.Name))
}

func newPopupModel() popup.Model {
	return popup.NewModel().WithLogger(logging.ForComponent(logging.CompPopup))
}

// overlays lists the overlays topmost first.
func (a *App) overlays() []Overlay {
	return []Overlay{a.popup, a.confirm}
}

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}

	buf := cellbuf.NewBuffer(a.width, a.height)
	area := geometry.NewRect(0, 0, a.width, a.height)

	frame := widget.NewBlock()
	frame.Title = text.StyledLine(" Demo ", TitleStyle)
	frame.Borders = widget.BordersAll
	frame.BorderStyle = FrameStyle
	frame.Render(buf, area)

	rows := geometry.Split(frame.Inner(area), geometry.Vertical,
		geometry.Percentage(33), geometry.Percentage(34), geometry.Percentage(33))
	status := widget.NewParagraph(text.Styled(a.Status(), StatusStyle)).
		WithAlignment(text.AlignCenter).
		WithWrap(widget.Wrap{Trim: true})
	status.Render(buf, rows[1])

	if inner := frame.Inner(area); !inner.IsEmpty() {
		widget.Paint(buf, inner.X+1, inner.Bottom()-1, inner.Width-1, a.help.View(a.keys))
	}

	view := widget.Render(buf)
	// Bottom to top
	for i := len(a.overlays()) - 1; i >= 0; i-- {
		if o := a.overlays()[i]; o.IsVisible() {
			view = o.Compose(view)
		}
	}
	return view
}
