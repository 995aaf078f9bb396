package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clinicaortiz/clinica/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect the question bank",
}

var bankStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the detected shape and case counts per level",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		raw, err := bank.Load(cfg.BankPath)
		if err != nil {
			return fmt.Errorf("load bank: %w", err)
		}

		st := bank.Describe(raw)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Shape: %s\n\n", st.Shape)
		fmt.Fprintf(out, "%-12s  %5s\n", "Level", "Cases")
		fmt.Fprintln(out, strings.Repeat("─", 19))
		for _, k := range st.SortedKeys() {
			fmt.Fprintf(out, "%-12s  %5d\n", k, st.PerLevel[k])
		}
		fmt.Fprintf(out, "\n%d levels, %d cases\n", st.Levels, st.Questions)
		return nil
	},
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the cases a new game would draw",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		raw, err := bank.Load(cfg.BankPath)
		if err != nil {
			return fmt.Errorf("load bank: %w", err)
		}

		var sampler bank.Sampler = bank.FirstN{}
		if !all {
			sampler = bank.NewSampler(cfg.Sampler, cfg.CasesPerLevel, cfg.Seed)
		}

		out := cmd.OutOrStdout()
		for _, lvl := range bank.Build(raw, sampler) {
			title := lvl.Title
			if title == "" {
				title = lvl.Key
			}
			fmt.Fprintf(out, "Nivel %d: %s\n", lvl.Number, title)
			for _, q := range lvl.Questions {
				question := q.Question
				if len(question) > 60 {
					question = question[:57] + "..."
				}
				fmt.Fprintf(out, "  %-8s  %-60s  %s\n", q.CaseID, question, q.Answers[q.CorrectIndex])
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	bankListCmd.Flags().Bool("all", false, "List every case instead of a sample")

	bankCmd.AddCommand(bankStatsCmd)
	bankCmd.AddCommand(bankListCmd)
}
