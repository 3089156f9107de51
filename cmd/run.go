package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bondar-aleksandr/netdesk/internal/worker"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay command files on simulated switches and store transcripts",
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.Logger.Sync()

		ctx, cancel := signalContext(a)
		defer cancel()

		if err := a.PrepareDirectory(); err != nil {
			return err
		}
		entries, err := a.ReadInventory()
		if err != nil {
			return err
		}
		if err := a.BuildCmdCache(entries); err != nil {
			return err
		}

		reports := worker.RunAll(ctx, a, entries)

		summary := worker.RenderSummary(reports, time.Now())
		if err := worker.WriteSummary(a, summary); err != nil {
			a.Logger.Error(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), summary)

		a.Logger.Infof("Finished! Time taken: %s", time.Since(start))
		return nil
	},
}
