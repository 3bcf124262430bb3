package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sjoeboo/tuiconfirm/internal/config"
	"github.com/sjoeboo/tuiconfirm/internal/logging"
	"github.com/sjoeboo/tuiconfirm/internal/ui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Interactive demo: press p for a dialog, m for a popup",
	Long: `Interactive demo of the dialog and the popup.

Changes to the config file are picked up while the demo runs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	log := logging.ForComponent(logging.CompCLI)

	p := tea.NewProgram(ui.NewApp(cfg), tea.WithAltScreen())

	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})

	watcher, err := config.NewWatcher(cfgPath)
	if err != nil {
		// The demo works without live reload
		log.Warn("config_watch_unavailable", "path", cfgPath, "error", err)
	} else {
		g.Go(func() error { return watcher.Run(ctx) })
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case updated := <-watcher.Updates():
					config.Set(updated)
					p.Send(ui.ConfigMsg{Config: updated})
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		crash := filepath.Join(os.TempDir(), "tuiconfirm-crash.log")
		if dumpErr := logging.DumpRingBuffer(crash); dumpErr == nil {
			fmt.Fprintf(os.Stderr, "Recent log written to %s\n", crash)
		}
		return err
	}
	return nil
}
