package worker

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bondar-aleksandr/netdesk/internal/app"
	"github.com/bondar-aleksandr/netdesk/internal/device"
	"github.com/bondar-aleksandr/netdesk/internal/logger"
)

func testApp(t *testing.T, cmds map[string][]string) *app.App {
	t.Helper()
	cfg := app.DefaultConfig()
	cfg.Data.OutputFolder = t.TempDir()
	a := &app.App{
		Logger:   logger.Nop(),
		CmdCache: make(map[string]*app.Commands),
		Config:   cfg,
	}
	for name, lines := range cmds {
		a.CmdCache[name] = &app.Commands{Commands: lines}
	}
	return a
}

func TestDetectCliErrors(t *testing.T) {
	tests := []struct {
		output []string
		want   string
		found  bool
	}{
		{nil, "", false},
		{[]string{"Enter configuration commands, one per line. End with CNTL/Z."}, "", false},
		{[]string{"% Incomplete command."}, "% Incomplete command.", true},
		{[]string{"Interface  IP-Address", "% Unknown command: x"}, "% Unknown command: x", true},
	}
	for _, tt := range tests {
		got, found := DetectCliErrors(tt.output)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.found, found)
	}
}

func TestWorkerStoresTranscript(t *testing.T) {
	a := testApp(t, map[string][]string{
		"ok.txt": {"enable", "conf t", "hostname Access1", "end"},
	})
	e := &device.Entry{Hostname: "Sw1", CmdFile: "ok.txt"}

	var wg sync.WaitGroup
	wg.Add(1)
	w := NewWorker(context.Background(), e, &wg, a)
	w.Run()
	wg.Wait()

	assert.Equal(t, device.Ok, e.State)
	assert.Equal(t, "Access1#", w.Prompt())

	data, err := os.ReadFile(filepath.Join(a.Config.Data.OutputFolder, "Sw1_commandStatus.txt"))
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "Sw1> enable\n")
	assert.Contains(t, out, "Sw1# conf t\nEnter configuration commands, one per line. End with CNTL/Z.\n")
	assert.Contains(t, out, "Sw1(config)# hostname Access1\n")
	assert.Contains(t, out, "Access1(config)# end\n")
}

func TestWorkerMarksCliErrors(t *testing.T) {
	a := testApp(t, map[string][]string{
		"bad.txt": {"show version", "enable", "conf t", "hostname"},
	})
	e := &device.Entry{Hostname: "Sw2", CmdFile: "bad.txt"}

	var wg sync.WaitGroup
	wg.Add(1)
	NewWorker(context.Background(), e, &wg, a).Run()
	wg.Wait()

	assert.Equal(t, device.CmdPartiallyAccepted, e.State)
	data, err := os.ReadFile(filepath.Join(a.Config.Data.OutputFolder, "Sw2_commandStatus.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "% Unknown command in USER mode: show version")
	assert.Contains(t, string(data), "% Incomplete command.")
}

func TestWorkerMissingCommands(t *testing.T) {
	a := testApp(t, nil)
	e := &device.Entry{Hostname: "Sw3", CmdFile: "none.txt"}

	var wg sync.WaitGroup
	wg.Add(1)
	NewWorker(context.Background(), e, &wg, a).Run()
	wg.Wait()

	assert.Equal(t, device.Unknown, e.State)
	assert.NoFileExists(t, filepath.Join(a.Config.Data.OutputFolder, "Sw3_commandStatus.txt"))
}

func TestWorkerCanceled(t *testing.T) {
	a := testApp(t, map[string][]string{"ok.txt": {"enable"}})
	e := &device.Entry{Hostname: "Sw4", CmdFile: "ok.txt"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	w := NewWorker(ctx, e, &wg, a)
	w.Run()
	wg.Wait()

	assert.Equal(t, device.Canceled, e.State)
	assert.Equal(t, "Sw4>", w.Prompt())
}

func TestRunAllAndSummary(t *testing.T) {
	a := testApp(t, map[string][]string{
		"ok.txt":  {"enable", "show ip int brief"},
		"bad.txt": {"foo"},
	})
	entries := []*device.Entry{
		{Hostname: "Sw1", CmdFile: "ok.txt"},
		{Hostname: "Sw2", CmdFile: "bad.txt", Interfaces: "Fa0/1"},
	}

	reports := RunAll(context.Background(), a, entries)
	require.Len(t, reports, 2)
	assert.Equal(t, 2, reports[0].Commands)
	assert.Equal(t, "Sw1#", reports[0].Prompt)
	assert.Equal(t, device.Ok, reports[0].Entry.State)
	assert.Equal(t, "Sw2>", reports[1].Prompt)
	assert.Equal(t, device.CmdPartiallyAccepted, reports[1].Entry.State)

	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	summary := RenderSummary(reports, now)
	for _, s := range []string{"DEVICE", "COMMAND RUN STATUS", "Sw1#", "Success", "Commands accepted with errors", "12:00"} {
		assert.Contains(t, summary, s)
	}

	require.NoError(t, WriteSummary(a, summary))
	require.NoError(t, WriteSummary(a, summary))
	data, err := os.ReadFile(filepath.Join(a.Config.Data.OutputFolder, a.Config.Data.ResultsData))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "Sw2>"))
}
