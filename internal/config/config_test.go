package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjoeboo/tuiconfirm/pkg/confirm"
	"github.com/sjoeboo/tuiconfirm/pkg/text"
	"github.com/sjoeboo/tuiconfirm/pkg/widget"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme.Name)
	assert.Equal(t, "Yes", cfg.Dialog.YesLabel)
	assert.Equal(t, "No", cfg.Dialog.NoLabel)
	assert.Equal(t, widget.BorderRounded, cfg.Dialog.Border())
	assert.Equal(t, 2, cfg.Popup.PaddingCells())
	assert.Equal(t, text.AlignCenter, cfg.Popup.TextAlign())
	assert.Equal(t, "info", cfg.Logs.Level)
}

func TestLoadFile_Values(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[theme]
name = "light"
accent = "#ff8800"

[dialog]
modal = true
yes_label = "(O)verwrite"
no_label = "Keep"
default_no = true
border_type = "double"

[popup]
timeout_ms = 1500
padding = 0
text_alignment = "left"

[logs]
level = "debug"
format = "text"
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.Theme.Name)
	assert.Equal(t, "#ff8800", cfg.Theme.Accent)
	assert.True(t, cfg.Dialog.Modal)
	assert.Equal(t, widget.BorderDouble, cfg.Dialog.Border())
	assert.Equal(t, 1500*time.Millisecond, cfg.Popup.Timeout())
	assert.Equal(t, 0, cfg.Popup.PaddingCells())
	assert.Equal(t, text.AlignLeft, cfg.Popup.TextAlign())
	assert.Equal(t, text.AlignCenter, cfg.Popup.TitleAlign())
	assert.Equal(t, widget.BorderRounded, cfg.Popup.Border())
	assert.Empty(t, cfg.Unknown)

	lc := cfg.Logs.LoggingConfig(false)
	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "text", lc.Format)
}

func TestLoadFile_InvalidFallsBackToDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[dialog\nmodal = ")

	cfg, err := LoadFile(path)
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "Yes", cfg.Dialog.YesLabel)
}

func TestLoadFile_UnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[dialog]
colour = "red"

[extra]
x = 1
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"dialog.colour", "extra", "extra.x"}, cfg.Unknown)
}

func TestDialogSettings_Apply(t *testing.T) {
	s := confirm.NewState(1, "t", "b")
	d := DialogSettings{Modal: true, YesLabel: "(O)verwrite", NoLabel: "Keep", DefaultNo: true}

	require.NoError(t, d.Apply(s))
	assert.True(t, s.IsModal())
	assert.False(t, s.YesSelected())
	assert.Equal(t, 'o', s.YesButton().Control())
	no, ok := s.NoButton()
	require.True(t, ok)
	assert.Equal(t, "(K)eep", no.Label())

	d.SingleButton = true
	require.NoError(t, d.Apply(s))
	_, ok = s.NoButton()
	assert.False(t, ok)
	assert.True(t, s.YesSelected())
}

func TestDialogSettings_ApplyRejectsEmptyLabel(t *testing.T) {
	err := DialogSettings{YesLabel: "", NoLabel: "No"}.Apply(confirm.NewState(1, "", ""))
	assert.ErrorIs(t, err, confirm.ErrEmptyLabel)
}

func TestLoad_UsesEnvDirAndCaches(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDir, dir)
	writeConfig(t, dir, "[theme]\nname = \"light\"\n")

	cfg := Reload()
	assert.Equal(t, "light", cfg.Theme.Name)

	writeConfig(t, dir, "[theme]\nname = \"dark\"\n")
	assert.Same(t, cfg, Load())
	assert.Equal(t, "dark", Reload().Theme.Name)

	Set(Default())
	assert.Equal(t, "dark", Load().Theme.Name)
}

func TestWatcher_DeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[dialog]\nmodal = false\n")

	w, err := NewWatcher(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Small delay to ensure watcher is ready
	time.Sleep(50 * time.Millisecond)
	writeConfig(t, dir, "[dialog]\nmodal = true\n")

	select {
	case cfg := <-w.Updates():
		assert.True(t, cfg.Dialog.Modal)
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for config reload")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	w, err := NewWatcher(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1"), 0o644))

	select {
	case cfg := <-w.Updates():
		t.Fatalf("unexpected reload: %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}
}
