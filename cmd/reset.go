package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the avatar, saved game and best score",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.prefs.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset prefs: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Datos del jugador borrados.")
		return nil
	},
}
