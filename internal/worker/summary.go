package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/bondar-aleksandr/netdesk/internal/app"
	"github.com/bondar-aleksandr/netdesk/internal/device"
)

// Report is the outcome of one replay, used for the summary table
type Report struct {
	Entry    *device.Entry
	Commands int
	Prompt   string
}

// RunAll replays every inventory entry on its own device, concurrently
func RunAll(ctx context.Context, a *app.App, entries []*device.Entry) []Report {
	var wg sync.WaitGroup
	wg.Add(len(entries))

	workers := make([]*worker, 0, len(entries))
	for _, e := range entries {
		w := NewWorker(ctx, e, &wg, a)
		workers = append(workers, w)
		go w.Run()
	}
	wg.Wait()

	reports := make([]Report, 0, len(workers))
	for _, w := range workers {
		r := Report{Entry: w.entry, Prompt: w.Prompt()}
		if cmds, ok := a.CmdCache[w.entry.CmdFile]; ok {
			r.Commands = len(cmds.Commands)
		}
		reports = append(reports, r)
	}
	return reports
}

// RenderSummary draws the app summary table
func RenderSummary(reports []Report, now time.Time) string {
	tableString := &strings.Builder{}
	table := tablewriter.NewWriter(tableString)
	table.SetHeader([]string{"Device", "Commands", "Final prompt", "Command Run Status"})

	for _, r := range reports {
		table.Append([]string{r.Entry.Hostname, strconv.Itoa(r.Commands), r.Prompt, r.Entry.State})
	}
	table.SetFooter([]string{"", "", "", now.Format(time.RFC822)})
	table.Render()
	return tableString.String()
}

// WriteSummary appends the summary table to the results file
func WriteSummary(a *app.App, summary string) error {
	a.Logger.Info("Writing app summary output...")
	path := filepath.Join(a.Config.Data.OutputFolder, a.Config.Data.ResultsData)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("unable to create app summary output file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(summary); err != nil {
		return fmt.Errorf("unable to write app summary: %w", err)
	}
	a.Logger.Info("Writing app summary output done")
	return nil
}
