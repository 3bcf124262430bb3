package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjoeboo/tuiconfirm/internal/config"
	"github.com/sjoeboo/tuiconfirm/pkg/confirm"
)

func TestUnescapeNewlines(t *testing.T) {
	assert.Equal(t, "one\ntwo", unescapeNewlines(`one\ntwo`))
	assert.Equal(t, "plain", unescapeNewlines("plain"))
}

func TestDialogFlags_Settings(t *testing.T) {
	base := config.Default().Dialog
	base.Modal = true

	got := dialogFlags{yes: "(O)verwrite", defaultNo: true}.settings(base)
	assert.Equal(t, "(O)verwrite", got.YesLabel)
	assert.Equal(t, "No", got.NoLabel)
	assert.True(t, got.Modal, "config switches stay on")
	assert.True(t, got.DefaultNo)
	assert.False(t, got.SingleButton)
}

func TestDialogFlags_State(t *testing.T) {
	f := dialogFlags{title: " Delete ", body: `Delete 3 files?\nThis cannot be undone.`, no: "(K)eep"}
	s, err := f.state(config.Default().Dialog)
	require.NoError(t, err)

	assert.False(t, s.IsOpened())
	assert.Equal(t, " Delete ", s.Title().Plain())
	assert.Equal(t, 2, s.Text().Height())
	no, ok := s.NoButton()
	require.True(t, ok)
	assert.Equal(t, 'k', no.Control())
}

func TestRenderDialog(t *testing.T) {
	f := dialogFlags{title: " Quit ", body: "Really quit?"}
	frame, err := renderDialog(f, config.Default().Dialog, 60, 12)
	require.NoError(t, err)

	plain := ansi.Strip(frame)
	assert.Contains(t, plain, " Quit ")
	assert.Contains(t, plain, "Really quit?")
	assert.Contains(t, plain, "(Y)es")
	assert.Contains(t, plain, "(N)o")
	assert.Len(t, strings.Split(frame, "\n"), 12)
}

func TestRenderDialog_InvalidLabel(t *testing.T) {
	settings := config.Default().Dialog
	settings.NoLabel = ""

	_, err := renderDialog(dialogFlags{}, settings, 60, 12)
	assert.ErrorIs(t, err, confirm.ErrEmptyLabel)

	// A single-button dialog never parses the no label
	_, err = renderDialog(dialogFlags{single: true}, settings, 60, 12)
	assert.NoError(t, err)
}

func TestRenderPopupFrame(t *testing.T) {
	frame := renderPopupFrame(dialogFlags{title: " Saved ", body: `All done\nBye`}, config.Default().Popup, 50, 14)

	plain := ansi.Strip(frame)
	assert.Contains(t, plain, "Saved")
	assert.Contains(t, plain, "All done")
	assert.Contains(t, plain, "Bye")
}

func TestExitStatus(t *testing.T) {
	assert.Equal(t, 0, exitStatus(confirm.Yes))
	assert.Equal(t, 1, exitStatus(confirm.No))
	assert.Equal(t, 2, exitStatus(confirm.Dismissed))

	var code exitCode
	require.True(t, errors.As(error(exitCode(2)), &code))
	assert.Equal(t, exitCode(2), code)
}

func TestTerminalSize_Explicit(t *testing.T) {
	w, h := terminalSize(100, 30)
	assert.Equal(t, 100, w)
	assert.Equal(t, 30, h)
}

func TestWriteExampleConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", config.FileName)

	require.NoError(t, writeExampleConfig(path, false))
	loaded, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Empty(t, loaded.Unknown)
	assert.Equal(t, "(Y)es", loaded.Dialog.YesLabel)
	assert.Equal(t, 3000, loaded.Popup.TimeoutMS)

	assert.Error(t, writeExampleConfig(path, false))
	assert.NoError(t, writeExampleConfig(path, true))
}

func TestRootCmd_Render(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvDir, dir)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"render", "--width", "60", "--height", "12", "--text", "From the CLI"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, ansi.Strip(out.String()), "From the CLI")
	assert.Equal(t, filepath.Join(dir, config.FileName), cfgPath)
}
