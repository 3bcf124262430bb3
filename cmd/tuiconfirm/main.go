package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/sjoeboo/tuiconfirm/internal/config"
	"github.com/sjoeboo/tuiconfirm/internal/logging"
	"github.com/sjoeboo/tuiconfirm/internal/ui"
)

// Version is set at build time
var Version = "0.1.0"

var (
	flagDebug  bool
	flagConfig string

	// Loaded by the root command before any subcommand runs
	cfg     *config.Config
	cfgPath string
)

func init() {
	initColorProfile()

	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default $TUICONFIRM_CONFIG_DIR/config.toml)")
}

// initColorProfile configures lipgloss color profile based on terminal capabilities.
func initColorProfile() {
	// TUICONFIRM_COLOR: truecolor, 256, 16, none
	if colorEnv := os.Getenv("TUICONFIRM_COLOR"); colorEnv != "" {
		switch strings.ToLower(colorEnv) {
		case "truecolor", "true", "24bit":
			lipgloss.SetColorProfile(termenv.TrueColor)
			return
		case "256", "ansi256":
			lipgloss.SetColorProfile(termenv.ANSI256)
			return
		case "16", "ansi", "basic":
			lipgloss.SetColorProfile(termenv.ANSI)
			return
		case "none", "off", "ascii":
			lipgloss.SetColorProfile(termenv.Ascii)
			return
		}
	}

	colorTerm := os.Getenv("COLORTERM")
	if colorTerm == "truecolor" || colorTerm == "24bit" {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}

	// Leave everything else to lipgloss's own detection, which also
	// honours NO_COLOR and non-terminal output
}

var rootCmd = &cobra.Command{
	Use:   "tuiconfirm",
	Short: "Confirmation dialogs and popup messages for the terminal",
	Long: `tuiconfirm - ask a yes/no question or show a short message in the terminal.

Buttons take a mnemonic key from their label: "(O)verwrite" answers on "o",
a label without parentheses answers on its first character.`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// loadConfig reads the config file and sets up logging and the theme. A broken
// config file is reported and the defaults are used.
func loadConfig(cmd *cobra.Command, args []string) error {
	path := flagConfig
	if path == "" {
		var err error
		if path, err = config.Path(); err != nil {
			return err
		}
	}

	loaded, err := config.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	config.Set(loaded)
	cfg, cfgPath = loaded, path

	logging.Init(loaded.Logs.LoggingConfig(flagDebug))
	log := logging.ForComponent(logging.CompCLI)
	log.Debug("command_start", "command", cmd.Name(), "config", path)
	if len(loaded.Unknown) > 0 {
		log.Info("config_unknown_keys", "keys", strings.Join(loaded.Unknown, ","))
	}

	ui.ApplyTheme(loaded.Theme)
	return nil
}

// exitCode makes a command end the process with the given status without
// printing anything.
type exitCode int

func (c exitCode) Error() string { return fmt.Sprintf("exit status %d", int(c)) }

func main() {
	err := rootCmd.Execute()
	logging.Shutdown()
	if err == nil {
		return
	}
	var code exitCode
	if errors.As(err, &code) {
		os.Exit(int(code))
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
