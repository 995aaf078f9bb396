package cmd

import (
	"github.com/spf13/cobra"

	"github.com/clinicaortiz/clinica/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a new game right away",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.StartPlay)
	},
}
