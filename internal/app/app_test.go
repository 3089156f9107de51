package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bondar-aleksandr/netdesk/internal/device"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", `
device:
  hostname: Lab1
  interfaces: [Fa0/1, Fa0/2]
data:
  output_folder: /tmp/out
server:
  listen: ":9090"
`)
	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Lab1", cfg.Device.Hostname)
	assert.Equal(t, []string{"Fa0/1", "Fa0/2"}, cfg.Device.Interfaces)
	assert.Equal(t, "/tmp/out", cfg.Data.OutputFolder)
	assert.Equal(t, ":9090", cfg.Server.Listen)

	// untouched sections keep their defaults
	assert.Equal(t, "devices.csv", cfg.Data.DevicesData)
	assert.Equal(t, []string{"Welcome to NetDeskOS v0.1", "Type: help"}, cfg.Terminal.Banner)
	assert.Equal(t, "console", cfg.Logger.Encoding)

	d := device.New(cfg.DeviceOptions()...)
	assert.Equal(t, "Lab1>", d.Prompt())
	assert.Len(t, d.Interfaces(), 2)
}

func TestReadConfigEmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "")
	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestReadConfigErrors(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, t.TempDir(), "config.yml", "device:\n  hostnme: typo\n")
	_, err = ReadConfig(path)
	assert.ErrorContains(t, err, "cannot parse app config file")
}

func TestNewAppAndCmdCache(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input")
	require.NoError(t, os.Mkdir(input, 0o755))
	writeFile(t, input, "devices.csv", "hostname,cmdFile\nSw1,a.txt\nSw2,a.txt\nSw3,b.txt\n")
	writeFile(t, input, "a.txt", "enable\nshow ip int brief\n")
	writeFile(t, input, "b.txt", "enable\n")
	cfgPath := writeFile(t, dir, "config.yml", `
logger:
  level: 1
  outputPath: [stderr]
data:
  input_folder: `+input+`
  output_folder: `+filepath.Join(dir, "out", "nested")+`
`)

	a, err := NewApp(cfgPath)
	require.NoError(t, err)

	entries, err := a.ReadInventory()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	require.NoError(t, a.BuildCmdCache(entries))
	assert.Len(t, a.CmdCache, 2)
	assert.Equal(t, []string{"enable", "show ip int brief"}, a.CmdCache["a.txt"].Commands)

	require.NoError(t, a.PrepareDirectory())
	assert.DirExists(t, filepath.Join(dir, "out", "nested"))
	require.NoError(t, a.PrepareDirectory())

	sess := a.NewSession(a.NewDevice())
	assert.Equal(t, "Switch>", sess.Prompt())
	assert.Len(t, sess.Lines(), 2)
}

func TestBuildCmdCacheMissingFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yml", "data:\n  input_folder: "+dir+"\n")
	a, err := NewApp(cfgPath)
	require.NoError(t, err)

	err = a.BuildCmdCache([]*device.Entry{{Hostname: "Sw1", CmdFile: "nope.txt"}})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
