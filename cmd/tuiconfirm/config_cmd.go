package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const exampleConfig = `# tuiconfirm configuration

[theme]
# dark, light or auto (follow the OS setting)
name = "dark"
# accent = "#58B8FD"
# background = "#22385C"

[dialog]
modal = false
yes_label = "(Y)es"
no_label = "(N)o"
single_button = false
default_no = false
# plain, rounded, double, thick, ascii or hidden
border_type = "rounded"

[popup]
# 0 keeps the popup until a key is pressed
timeout_ms = 3000
padding = 2
text_alignment = "center"
title_alignment = "center"
border_type = "rounded"

[logs]
# dir = "~/.local/state/tuiconfirm"
level = "info"
format = "json"
max_size_mb = 10
max_backups = 3
max_age_days = 14
compress = false
`

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), cfgPath)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if err := writeExampleConfig(cfgPath, force); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfgPath)
		return nil
	},
}

// writeExampleConfig creates path with the example config. An existing file
// is only replaced when force is set.
func writeExampleConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, []byte(exampleConfig), 0o644)
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
	configCmd.AddCommand(configPathCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}
