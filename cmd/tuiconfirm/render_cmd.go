package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sjoeboo/tuiconfirm/internal/config"
	"github.com/sjoeboo/tuiconfirm/internal/ui"
)

var (
	renderFlags  dialogFlags
	renderWidth  int
	renderHeight int
	renderPopup  bool
)

// terminalSize returns the size of stdout, or 80x24 when it is not a
// terminal. Explicit values win.
func terminalSize(width, height int) (int, int) {
	if width > 0 && height > 0 {
		return width, height
	}
	w, h := 80, 24
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if tw, th, err := term.GetSize(fd); err == nil {
			w, h = tw, th
		}
	}
	if width > 0 {
		w = width
	}
	if height > 0 {
		h = height
	}
	return w, h
}

// renderDialog draws one frame of the dialog described by f.
func renderDialog(f dialogFlags, settings config.DialogSettings, width, height int) (string, error) {
	state, err := f.state(settings)
	if err != nil {
		return "", err
	}
	state.Open()
	dialog := ui.ConfirmDialog(f.settings(settings).Border())
	return dialog.View("", width, height, state), nil
}

// renderPopupFrame draws one frame of a popup holding f's title and text.
func renderPopupFrame(f dialogFlags, settings config.PopupSettings, width, height int) string {
	msg := ui.PopupMessage(f.title, unescapeNewlines(f.body), settings)
	return msg.View("", width, height)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print a single frame of a dialog or popup",
	Long: `Print a single frame of a dialog or popup without reading input.

The size defaults to the terminal size, or 80x24 when stdout is not a terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		width, height := terminalSize(renderWidth, renderHeight)

		var frame string
		if renderPopup {
			frame = renderPopupFrame(renderFlags, cfg.Popup, width, height)
		} else {
			var err error
			if frame, err = renderDialog(renderFlags, cfg.Dialog, width, height); err != nil {
				return fmt.Errorf("invalid button: %w", err)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), frame)
		return nil
	},
}

func init() {
	renderFlags.register(renderCmd)
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "frame width (default terminal width)")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "frame height (default terminal height)")
	renderCmd.Flags().BoolVar(&renderPopup, "popup", false, "render a popup message instead of a dialog")
	rootCmd.AddCommand(renderCmd)
}
