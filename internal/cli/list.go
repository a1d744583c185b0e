package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/leetadd/internal/config"
	"github.com/agentx-labs/leetadd/internal/index"
	"github.com/agentx-labs/leetadd/internal/problem"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list [difficulty]",
	Short: "List recorded problems",
	Long:  `List the problems recorded in each <difficulty>/README.md, in the order they were added.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry is one recorded problem for display.
type listEntry struct {
	Difficulty string `json:"difficulty"`
	index.Record
}

func runList(cmd *cobra.Command, args []string) error {
	tiers := problem.Difficulties
	if len(args) == 1 {
		d, err := problem.ParseDifficulty(args[0])
		if err != nil {
			return err
		}
		tiers = []problem.Difficulty{d}
	}

	entries, err := collectEntries(config.Current().Root, tiers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling entries: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No problems recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DIFFICULTY\tNAME\tSOLVED\tURL")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Difficulty, e.Name, e.Solved, e.URL)
	}
	return w.Flush()
}

func collectEntries(root string, tiers []problem.Difficulty) ([]listEntry, error) {
	entries := []listEntry{}
	for _, d := range tiers {
		records, err := index.ReadFile(index.Path(root, d))
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			entries = append(entries, listEntry{Difficulty: d.String(), Record: r})
		}
	}
	return entries, nil
}
