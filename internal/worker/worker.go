package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bondar-aleksandr/netdesk/internal/app"
	"github.com/bondar-aleksandr/netdesk/internal/device"
	"github.com/bondar-aleksandr/netdesk/internal/terminal"
)

// CommandResult is one replayed command with what the simulated device answered
type CommandResult struct {
	Prompt  string
	Command string
	Output  []string
}

// type describes worker, which is responsible for replaying a command file on a
// simulated device, processing, and storing the transcript
type worker struct {
	entry    *device.Entry
	session  *terminal.Session
	globalWg *sync.WaitGroup
	localWg  *sync.WaitGroup
	ctx      context.Context
	app      *app.App //pointer to parent app
}

// constructor for worker, every worker owns its own device
func NewWorker(ctx context.Context, e *device.Entry, wg *sync.WaitGroup, a *app.App) *worker {
	return &worker{
		ctx:      ctx,
		entry:    e,
		session:  terminal.NewSession(device.New(e.Options()...)),
		globalWg: wg,
		localWg:  &sync.WaitGroup{},
		app:      a,
	}
}

// main process for worker
func (w *worker) Run() {
	defer w.globalWg.Done()

	res, err := w.runCommands(w.ctx)
	if err != nil {
		return
	}

	w.localWg.Add(3)
	dataChan, errChan := w.processOutput(res)

	go func() {
		defer w.localWg.Done()
		for e := range errChan {
			w.app.Logger.Warnf("Got error, device: %q, cmd:%q, error: %q", e.Device, e.Cmd, e.Msg)
		}
	}()
	go w.storeOutput(dataChan)
	w.localWg.Wait()
}

// Prompt is the prompt the device ended the replay with
func (w *worker) Prompt() string {
	return w.session.Prompt()
}

// this func feeds command file lines into the device session
func (w *worker) runCommands(ctx context.Context) ([]CommandResult, error) {
	cmds, ok := w.app.CmdCache[w.entry.CmdFile]
	if !ok {
		w.entry.State = device.Unknown
		w.app.Logger.Errorf("No commands cached for %q, file %q", w.entry.Hostname, w.entry.CmdFile)
		return nil, fmt.Errorf("no commands for %q", w.entry.CmdFile)
	}

	w.app.Logger.Infof("Running commands for device %q...", w.entry.Hostname)
	results := make([]CommandResult, 0, len(cmds.Commands))
	for _, cmd := range cmds.Commands {
		select {
		case <-ctx.Done():
			w.entry.State = device.Canceled
			w.app.Logger.Warnf("Replay for device %q canceled after %d commands", w.entry.Hostname, len(results))
			return nil, ctx.Err()
		default:
		}
		prompt := w.session.Prompt()
		res := w.session.Submit(cmd)
		results = append(results, CommandResult{Prompt: prompt, Command: cmd, Output: res.OutputLines})
	}
	w.app.Logger.Infof("Sent commands to device %q successfully", w.entry.Hostname)
	return results, nil
}

// processes replay results, returns channel with formatted (for persistance) data and channel with errors
func (w *worker) processOutput(results []CommandResult) (chan string, chan device.DevError) {
	errChan := make(chan device.DevError, 10)
	dataChan := make(chan string)

	go func() {
		defer w.localWg.Done()
		defer close(errChan)
		defer close(dataChan)

		w.entry.State = device.Ok
		for _, r := range results {
			commandError, errFound := DetectCliErrors(r.Output)

			if errFound {
				w.entry.State = device.CmdPartiallyAccepted
				errChan <- device.DevError{Device: w.entry.Hostname, Cmd: r.Command, Msg: commandError}
			}

			row := fmt.Sprintf("%s %s\n", r.Prompt, r.Command)
			for _, l := range r.Output {
				row += l + "\n"
			}
			dataChan <- row
		}
	}()
	return dataChan, errChan
}

// this func stores the transcript to file
func (w *worker) storeOutput(inData chan string) {
	defer w.localWg.Done()
	w.app.Logger.Infof("Storing device %q data to file...", w.entry.Hostname)

	path := filepath.Join(w.app.Config.Data.OutputFolder, w.entry.Hostname+"_commandStatus.txt")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		w.app.Logger.Errorf("Unable to open output file for device %s because of: %s\nDevice output will not be stored!", w.entry.Hostname, err)
		// drain so processOutput is not blocked
		for range inData {
		}
		return
	}
	defer f.Close()
	writer := bufio.NewWriter(f)
	writer.WriteString(fmt.Sprintf("======================== %q =======================\n", time.Now().Format(time.RFC822)))

	for row := range inData {
		writer.WriteString(row)
	}

	err = writer.Flush()
	if err != nil {
		w.app.Logger.Errorf("Unable to write output for device %q to file %q\n because of:%q", w.entry.Hostname, f.Name(), err)
	} else {
		w.app.Logger.Infof("Stored device %q data to file successfully", w.entry.Hostname)
	}
}

// DetectCliErrors looks for an error in device output. Returns
// the error line and whether one was found
func DetectCliErrors(output []string) (string, bool) {
	for _, r := range output {
		if strings.HasPrefix(r, "%") {
			return r, true
		}
	}
	return "", false
}
