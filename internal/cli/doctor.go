package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/leetadd/internal/config"
	"github.com/agentx-labs/leetadd/internal/doctor"
	"github.com/agentx-labs/leetadd/internal/publish"
)

// doctorRunner is nil outside tests, selecting the git binary.
var doctorRunner publish.Runner

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check git, repository and config health",
	Long:  `Run diagnostic checks on the environment leetadd publishes from.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Current()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Environment check:")
		checks := doctor.Run(cmd.Context(), out, doctor.Options{
			Root:       settings.Root,
			Remote:     settings.Remote,
			ConfigFile: configFile,
			Runner:     doctorRunner,
		})
		if n := doctor.Failed(checks); n > 0 {
			return fmt.Errorf("%d check(s) failed", n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
