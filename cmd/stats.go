package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/clinicaortiz/clinica/internal/ui/layout"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the best score and recent games",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Mejor puntaje: %d\n", e.prefs.BestScore(ctx))
		if prog, ok := e.prefs.Progress(ctx); ok {
			fmt.Fprintf(out, "Partida guardada: nivel %d, caso %d, %d puntos, %d vidas\n",
				prog.Level+1, prog.Case+1, prog.Points, prog.Lives)
		}

		runs, err := e.store.RunRepo().Recent(ctx, limit)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Fprintln(out, "\nTodavía no hay partidas.")
			return nil
		}

		fmt.Fprintf(out, "\n%-16s  %-20s  %6s  %6s  %5s  %6s\n",
			"Fecha", "Jugador", "Puntos", "Nivel", "Vidas", "Tiempo")
		fmt.Fprintln(out, strings.Repeat("─", 68))
		for _, r := range runs {
			player := r.Player
			if len(player) > 20 {
				player = player[:17] + "..."
			}
			fmt.Fprintf(out, "%-16s  %-20s  %6d  %6d  %5d  %6s\n",
				r.EndedAt.Local().Format("2006-01-02 15:04"),
				player, r.Points, r.Level+1, r.Lives,
				layout.FormatClock(int(r.Duration()/time.Second)))
		}
		fmt.Fprintf(out, "\n%d partidas\n", len(runs))
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of recent games to show (0 for all)")
}
