package main

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sjoeboo/tuiconfirm/internal/ui"
)

var (
	popupTitle   string
	popupText    string
	popupTimeout time.Duration
)

var popupCmd = &cobra.Command{
	Use:   "popup",
	Short: "Show a message until it times out or a key is pressed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout := cfg.Popup.Timeout()
		if cmd.Flags().Changed("timeout") {
			timeout = popupTimeout
		}

		msg := ui.PopupMessage(popupTitle, unescapeNewlines(popupText), cfg.Popup)
		p := tea.NewProgram(ui.NewNotice(msg, timeout), tea.WithAltScreen(), tea.WithOutput(os.Stderr))
		_, err := p.Run()
		return err
	},
}

func init() {
	popupCmd.Flags().StringVarP(&popupTitle, "title", "t", " Message ", "popup title")
	popupCmd.Flags().StringVarP(&popupText, "text", "m", "", `message text; "\n" starts a new line`)
	popupCmd.Flags().DurationVar(&popupTimeout, "timeout", 0, "hide after this long (default from config; 0 waits for a key)")
	rootCmd.AddCommand(popupCmd)
}
