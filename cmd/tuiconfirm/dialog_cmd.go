package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sjoeboo/tuiconfirm/internal/config"
	"github.com/sjoeboo/tuiconfirm/internal/logging"
	"github.com/sjoeboo/tuiconfirm/internal/ui"
	"github.com/sjoeboo/tuiconfirm/pkg/confirm"
	"github.com/sjoeboo/tuiconfirm/pkg/text"
)

// dialogFlags are the flags shared by every command that builds a dialog.
// Empty labels and unset switches keep the config file's values.
type dialogFlags struct {
	title     string
	body      string
	yes       string
	no        string
	single    bool
	modal     bool
	defaultNo bool
}

func (f *dialogFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.title, "title", "t", " Confirm ", "dialog title")
	fl.StringVarP(&f.body, "text", "m", "Are you sure?", `dialog text; "\n" starts a new line`)
	fl.StringVar(&f.yes, "yes", "", `yes button label, e.g. "(O)verwrite"`)
	fl.StringVar(&f.no, "no", "", "no button label")
	fl.BoolVar(&f.single, "single", false, "show only the yes button")
	fl.BoolVar(&f.modal, "modal", false, "ignore Esc")
	fl.BoolVar(&f.defaultNo, "default-no", false, "preselect the no button")
}

// settings merges the flags over base.
func (f dialogFlags) settings(base config.DialogSettings) config.DialogSettings {
	if f.yes != "" {
		base.YesLabel = f.yes
	}
	if f.no != "" {
		base.NoLabel = f.no
	}
	base.SingleButton = base.SingleButton || f.single
	base.Modal = base.Modal || f.modal
	base.DefaultNo = base.DefaultNo || f.defaultNo
	return base
}

// state builds a closed dialog state from the flags and base.
func (f dialogFlags) state(base config.DialogSettings) (*confirm.State, error) {
	s := confirm.NewState(confirm.NewID(), "", "").
		SetTitleLine(ui.DialogTitleLine(f.title)).
		SetBody(text.Raw(unescapeNewlines(f.body))).
		SetLogger(logging.ForComponent(logging.CompDialog))
	if err := f.settings(base).Apply(s); err != nil {
		return nil, err
	}
	return s, nil
}

func unescapeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

// Exit statuses of the confirm command
const (
	exitYes       = 0
	exitNo        = 1
	exitDismissed = 2
)

func exitStatus(c confirm.Choice) int {
	switch c {
	case confirm.Yes:
		return exitYes
	case confirm.No:
		return exitNo
	default:
		return exitDismissed
	}
}

var confirmFlags dialogFlags

var confirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Ask a yes/no question",
	Long: `Ask a yes/no question and print the answer.

Exit status is 0 for yes, 1 for no and 2 when the dialog was dismissed.`,
	Example: `  tuiconfirm confirm --title " Delete " --text "Delete 3 files?" --yes "(D)elete" --no "(K)eep"`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := confirmFlags.state(cfg.Dialog)
		if err != nil {
			return fmt.Errorf("invalid button: %w", err)
		}
		merged := confirmFlags.settings(cfg.Dialog)

		prompt := ui.NewPrompt(state, ui.ConfirmDialog(merged.Border()))
		p := tea.NewProgram(prompt, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
		if _, err := p.Run(); err != nil {
			return err
		}

		choice := prompt.Choice()
		logging.ForComponent(logging.CompCLI).Info("confirm_answered", "choice", choice.String())
		fmt.Fprintln(cmd.OutOrStdout(), choice)
		if code := exitStatus(choice); code != exitYes {
			return exitCode(code)
		}
		return nil
	},
}

func init() {
	confirmFlags.register(confirmCmd)
	rootCmd.AddCommand(confirmCmd)
}
