package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/clinicaortiz/clinica/internal/avatar"
)

var avatarCmd = &cobra.Command{
	Use:   "avatar",
	Short: "Show the saved doctor avatar",
	RunE: func(cmd *cobra.Command, args []string) error {
		base, _ := cmd.Flags().GetString("base-url")
		showOptions, _ := cmd.Flags().GetBool("options")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		s := e.prefs.Avatar(cmd.Context())
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, avatar.Portrait(s))
		fmt.Fprintf(out, "Dr. %s\n\n", s.Name)
		fmt.Fprintln(out, avatar.URL(base, s))

		if showOptions {
			values := avatar.Options(s, avatar.DoctorSeed)
			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			fmt.Fprintln(out)
			for _, k := range keys {
				fmt.Fprintf(out, "%-22s  %s\n", k, values.Get(k))
			}
		}
		return nil
	},
}

func init() {
	avatarCmd.Flags().String("base-url", avatar.DefaultRenderURL, "Avatar render endpoint")
	avatarCmd.Flags().Bool("options", false, "Also list every request option")
}
