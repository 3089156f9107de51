package main

import (
	"github.com/spf13/cobra"

	"github.com/bondar-aleksandr/netdesk/internal/server"
	"github.com/bondar-aleksandr/netdesk/internal/terminal"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve terminal sessions to the browser desktop",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.Logger.Sync()

		ctx, cancel := signalContext(a)
		defer cancel()

		addr := a.Config.Server.Listen
		if listenAddr != "" {
			addr = listenAddr
		}
		sessions := terminal.NewRegistry(a.NewDevice, a.Config.Terminal.Banner...)
		return server.New(addr, a.Config.Server.AllowedOrigins, sessions, a.Logger).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&listenAddr, "listen", "l", "", "listen address, overrides server.listen")
}
