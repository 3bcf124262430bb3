package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_NoDirDiscards(t *testing.T) {
	Init(Config{Level: "debug"})
	t.Cleanup(Shutdown)

	assert.NotPanics(t, func() { ForComponent(CompDialog).Info("ignored") })
}

func TestInit_WritesJSONToFile(t *testing.T) {
	dir := t.TempDir()
	Init(Config{LogDir: dir, Level: "debug"})
	t.Cleanup(Shutdown)

	ForComponent(CompDialog).Debug("dialog_opened", slog.Int("id", 3))
	Shutdown()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"dialog_opened"`)
	assert.Contains(t, string(data), `"component":"dialog"`)
}

func TestInit_TextFormatAndLevel(t *testing.T) {
	dir := t.TempDir()
	Init(Config{LogDir: dir, Level: "warn", Format: "text"})
	t.Cleanup(Shutdown)

	log := ForComponent(CompConfig)
	log.Info("too_quiet")
	log.Warn("config_invalid")
	Shutdown()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "too_quiet")
	assert.Contains(t, string(data), "msg=config_invalid")
}

func TestDumpRingBuffer(t *testing.T) {
	dir := t.TempDir()
	Init(Config{LogDir: dir, Debug: true})
	t.Cleanup(Shutdown)

	ForComponent(CompUI).Debug("frame_rendered")
	dump := filepath.Join(dir, "crash", "ring.log")
	require.NoError(t, DumpRingBuffer(dump))

	data, err := os.ReadFile(dump)
	require.NoError(t, err)
	assert.Contains(t, string(data), "frame_rendered")
}

func TestLogger_BeforeInit(t *testing.T) {
	Shutdown()
	assert.NotNil(t, Logger())
	assert.NoError(t, DumpRingBuffer(filepath.Join(t.TempDir(), "none.log")))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}

func TestRingBuffer_KeepsNewestBytes(t *testing.T) {
	r := NewRingBuffer(8)

	_, _ = r.Write([]byte("abc"))
	assert.Equal(t, "abc", string(r.Bytes()))

	_, _ = r.Write([]byte("defgh"))
	assert.Equal(t, "abcdefgh", string(r.Bytes()))

	_, _ = r.Write([]byte("ij"))
	assert.Equal(t, "cdefghij", string(r.Bytes()))

	_, _ = r.Write([]byte("0123456789"))
	assert.Equal(t, "23456789", string(r.Bytes()))
}
