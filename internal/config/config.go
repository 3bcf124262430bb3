// Package config loads the user's config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/sjoeboo/tuiconfirm/internal/logging"
	"github.com/sjoeboo/tuiconfirm/pkg/confirm"
	"github.com/sjoeboo/tuiconfirm/pkg/text"
	"github.com/sjoeboo/tuiconfirm/pkg/widget"
)

// FileName is the name of the config file inside Dir.
const FileName = "config.toml"

// EnvDir overrides the config directory.
const EnvDir = "TUICONFIRM_CONFIG_DIR"

// Config is the decoded config.toml.
type Config struct {
	Theme  ThemeSettings  `toml:"theme"`
	Dialog DialogSettings `toml:"dialog"`
	Popup  PopupSettings  `toml:"popup"`
	Logs   LogSettings    `toml:"logs"`

	// Unknown lists keys present in the file that nothing reads
	Unknown []string `toml:"-"`
}

// ThemeSettings selects colours.
type ThemeSettings struct {
	// Name is "dark", "light" or "auto" (follow the OS setting)
	// Default: dark
	Name string `toml:"name"`

	// Accent overrides the selected-button colour (any lipgloss colour)
	Accent string `toml:"accent"`

	// Background is the dialog and popup background colour. Empty keeps the
	// terminal background.
	Background string `toml:"background"`
}

// DialogSettings configures confirmation dialogs.
type DialogSettings struct {
	// Modal stops Esc from closing the dialog
	// Default: false
	Modal bool `toml:"modal"`

	// YesLabel and NoLabel are parsed like "(Y)es": the parenthesized
	// character is the key, otherwise the first one is
	// Default: "Yes" / "No"
	YesLabel string `toml:"yes_label"`
	NoLabel  string `toml:"no_label"`

	// SingleButton removes the "no" button
	SingleButton bool `toml:"single_button"`

	// DefaultNo preselects the "no" button
	DefaultNo bool `toml:"default_no"`

	// BorderType is plain, rounded, double, thick, ascii or hidden
	// Default: rounded
	BorderType string `toml:"border_type"`
}

// PopupSettings configures popup messages.
type PopupSettings struct {
	// TimeoutMS hides the popup after this many milliseconds; 0 keeps it
	// until dismissed
	// Default: 0
	TimeoutMS int `toml:"timeout_ms"`

	// Padding is the blank space around the message on every side
	// Default: 2
	Padding *int `toml:"padding"`

	// TextAlignment and TitleAlignment are left, center or right
	// Default: center
	TextAlignment  string `toml:"text_alignment"`
	TitleAlignment string `toml:"title_alignment"`

	// BorderType as in DialogSettings
	// Default: rounded
	BorderType string `toml:"border_type"`
}

// LogSettings configures the debug log.
type LogSettings struct {
	// Dir enables file logging when set
	Dir string `toml:"dir"`

	// Level is debug, info, warn or error
	// Default: info
	Level string `toml:"level"`

	// Format is json or text
	// Default: json
	Format string `toml:"format"`

	MaxSizeMB  int  `toml:"max_size_mb"`
	MaxBackups int  `toml:"max_backups"`
	MaxAgeDays int  `toml:"max_age_days"`
	Compress   bool `toml:"compress"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Theme.Name == "" {
		c.Theme.Name = "dark"
	}
	if c.Dialog.YesLabel == "" {
		c.Dialog.YesLabel = "Yes"
	}
	if c.Dialog.NoLabel == "" {
		c.Dialog.NoLabel = "No"
	}
	if c.Dialog.BorderType == "" {
		c.Dialog.BorderType = "rounded"
	}
	if c.Popup.TimeoutMS < 0 {
		c.Popup.TimeoutMS = 0
	}
	if c.Popup.Padding == nil {
		p := 2
		c.Popup.Padding = &p
	}
	if c.Popup.TextAlignment == "" {
		c.Popup.TextAlignment = "center"
	}
	if c.Popup.TitleAlignment == "" {
		c.Popup.TitleAlignment = "center"
	}
	if c.Popup.BorderType == "" {
		c.Popup.BorderType = "rounded"
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Logs.Format == "" {
		c.Logs.Format = "json"
	}
}

// Dir returns the config directory: $TUICONFIRM_CONFIG_DIR, or tuiconfirm
// inside the user config dir.
func Dir() (string, error) {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(base, "tuiconfirm"), nil
}

// Path returns the path of config.toml.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// LoadFile decodes path. A missing file yields the defaults and no error. A
// file that does not parse yields the defaults together with the error, so
// callers can warn and carry on.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		cfg.Unknown = append(cfg.Unknown, key.String())
	}
	sort.Strings(cfg.Unknown)

	cfg.applyDefaults()
	return &cfg, nil
}

// Cache for the user config (loaded once per process)
var (
	cache   *Config
	cacheMu sync.RWMutex
)

// Load returns the user config, reading it on first use. Problems are logged
// and the defaults used instead.
func Load() *Config {
	cacheMu.RLock()
	if cache != nil {
		defer cacheMu.RUnlock()
		return cache
	}
	cacheMu.RUnlock()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	// Double-check after acquiring write lock
	if cache != nil {
		return cache
	}

	log := logging.ForComponent(logging.CompConfig)
	path, err := Path()
	if err != nil {
		log.Warn("config_path_failed", "error", err)
		cache = Default()
		return cache
	}

	cfg, err := LoadFile(path)
	if err != nil {
		log.Warn("config_invalid", "path", path, "error", err)
	}
	if len(cfg.Unknown) > 0 {
		log.Info("config_unknown_keys", "keys", strings.Join(cfg.Unknown, ","))
	}
	cache = cfg
	return cache
}

// Reload drops the cached config and reads it again.
func Reload() *Config {
	cacheMu.Lock()
	cache = nil
	cacheMu.Unlock()
	return Load()
}

// Set replaces the cached config, e.g. with one delivered by a Watcher.
func Set(cfg *Config) {
	cacheMu.Lock()
	cache = cfg
	cacheMu.Unlock()
}

// Buttons parses the configured labels. The no button is absent when
// SingleButton is set.
func (d DialogSettings) Buttons() (yes confirm.ButtonLabel, no *confirm.ButtonLabel, err error) {
	yes, err = confirm.ParseButtonLabel(d.YesLabel)
	if err != nil {
		return yes, nil, fmt.Errorf("yes_label: %w", err)
	}
	if d.SingleButton {
		return yes, nil, nil
	}
	n, err := confirm.ParseButtonLabel(d.NoLabel)
	if err != nil {
		return yes, nil, fmt.Errorf("no_label: %w", err)
	}
	return yes, &n, nil
}

// Apply configures s from the settings.
func (d DialogSettings) Apply(s *confirm.State) error {
	yes, no, err := d.Buttons()
	if err != nil {
		return err
	}
	s.SetYesButton(yes.WithStyle(s.YesButton().Style())).
		SetModal(d.Modal).
		SetYesSelected(!d.DefaultNo)
	if no != nil {
		s.SetNoButton(*no)
	} else {
		s.RemoveNoButton()
	}
	return nil
}

func (d DialogSettings) Border() widget.BorderType {
	return widget.ParseBorderType(d.BorderType)
}

// Timeout is TimeoutMS as a duration.
func (p PopupSettings) Timeout() time.Duration {
	return time.Duration(p.TimeoutMS) * time.Millisecond
}

func (p PopupSettings) PaddingCells() int {
	if p.Padding == nil {
		return 2
	}
	return max(0, *p.Padding)
}

func (p PopupSettings) TextAlign() text.Alignment  { return text.ParseAlignment(p.TextAlignment) }
func (p PopupSettings) TitleAlign() text.Alignment { return text.ParseAlignment(p.TitleAlignment) }
func (p PopupSettings) Border() widget.BorderType  { return widget.ParseBorderType(p.BorderType) }

// LoggingConfig converts the settings for logging.Init.
func (l LogSettings) LoggingConfig(debug bool) logging.Config {
	return logging.Config{
		LogDir:     expandHome(l.Dir),
		Level:      l.Level,
		Format:     l.Format,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
		Compress:   l.Compress,
		Debug:      debug,
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
