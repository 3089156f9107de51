package main

import (
	"github.com/spf13/cobra"

	"github.com/bondar-aleksandr/netdesk/internal/console"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive session on one simulated switch",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.Logger.Sync()

		// one device for the whole session
		sess := a.NewSession(a.NewDevice())
		return console.New(sess, a.Logger).Run()
	},
}
