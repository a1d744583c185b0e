package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/leetadd/internal/branding"
	"github.com/agentx-labs/leetadd/internal/config"
	"github.com/agentx-labs/leetadd/internal/leetcode"
)

const excerptLimit = 400

var lookupJSON bool

var lookupCmd = &cobra.Command{
	Use:   "lookup <leetcode_url>",
	Short: "Show LeetCode metadata for a problem URL",
	Long: `Fetch title, difficulty and topics for a problem from LeetCode and print the
command that would record it. Nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug, err := leetcode.SlugFromURL(args[0])
		if err != nil {
			return err
		}

		settings := config.Current()
		client := leetcode.New(settings.LeetCode.Endpoint, settings.LeetCode.Timeout, logger)
		p, err := client.Question(cmd.Context(), slug)
		if err != nil {
			return fmt.Errorf("looking up %s: %w", slug, err)
		}

		out := cmd.OutOrStdout()
		if lookupJSON {
			data, err := json.MarshalIndent(p, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling problem: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "#%d %s (%s)\n", p.ID, p.Title, p.Difficulty)
		fmt.Fprintln(out, p.Link)
		if len(p.Topics) > 0 {
			fmt.Fprintf(out, "Topics: %s\n", strings.Join(p.Topics, ", "))
		}
		if p.Content != "" {
			fmt.Fprintf(out, "\n%s\n", excerpt(p.Content, excerptLimit))
		}
		if tier, err := p.Tier(); err == nil {
			fmt.Fprintf(out, "\nRecord it with:\n  %s %s %q %s\n", branding.CLIName(), tier, p.Title, p.Link)
		}
		return nil
	},
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(lookupCmd)
}

// excerpt cuts s to at most limit runes, ending with an ellipsis when cut.
func excerpt(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return strings.TrimSpace(string(r[:limit])) + "..."
}
