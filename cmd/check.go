package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/on-the-issues/internal/topic"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the topic dataset and summarize it",
	Long: `Loads the topic dataset, reports every validation problem (blank names,
identifier collisions, blank keywords), and prints one line per topic.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("json", false, "print the summary as JSON")
	rootCmd.AddCommand(checkCmd)
}

// topicSummary is one row of the check output.
type topicSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Friends  int    `json:"friends"`
	Source   int    `json:"source"`
	Keywords int    `json:"keywords"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	rows := make([]topicSummary, 0, store.Len())
	for _, rec := range store.Records() {
		rows = append(rows, topicSummary{
			ID:       rec.ID(),
			Name:     rec.Name,
			Friends:  len(rec.Friends.Responses),
			Source:   len(rec.Source.Responses),
			Keywords: len(rec.Friends.Keywords) + len(rec.Source.Keywords),
		})
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	fmt.Printf("%s: %d topic(s) in %s\n\n", store.Title(), store.Len(), cfg.DataFile)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tNAME\t%s\t%s\tKEYWORDS\n",
		store.Label(topic.SideFriends).Title, store.Label(topic.SideSource).Title)
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", r.ID, r.Name, r.Friends, r.Source, r.Keywords)
	}
	return w.Flush()
}
