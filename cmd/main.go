// netdesk - simulated switch CLI
//
// Subcommands:
//
//	netdesk shell   # interactive session on one simulated switch
//	netdesk run     # replay command files from the devices csv, one switch per row
//	netdesk serve   # JSON API for the browser desktop terminal
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bondar-aleksandr/netdesk/internal/app"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "netdesk",
	Short:         "Simulated network switch command line",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./config/config.yml", "path to config.yml")
	rootCmd.AddCommand(shellCmd, runCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadApp() (*app.App, error) {
	a, err := app.NewApp(configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to start: %w", err)
	}
	return a, nil
}

// signalContext is canceled on SIGINT/SIGTERM
func signalContext(a *app.App) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case s := <-quit:
			a.Logger.Errorf("Caught signal: %q, exiting...", s.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(quit)
	}()
	return ctx, cancel
}
