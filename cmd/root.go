package cmd

import (
	"github.com/spf13/cobra"

	"github.com/clinicaortiz/clinica/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "clinica",
	Short: "Medical diagnosis quiz game",
	Long:  "Clínica Ortiz: talk to patients, read their file and pick the right diagnosis before you run out of lives.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.StartWelcome)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides CLINICA_DB)")
	flags.String("bank", "", "Question bank file, JSON or YAML (overrides CLINICA_BANK)")
	flags.Uint64("seed", 0, "Seed for case sampling, 0 picks a random one (overrides CLINICA_SEED)")
	flags.String("log-level", "", "Log level: debug, info, warn or error (overrides CLINICA_LOG_LEVEL)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(avatarCmd)
	rootCmd.AddCommand(versionCmd)
}
