package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/on-the-issues/internal/browse"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the comparison in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := loadStore(cfg)
		if err != nil {
			return err
		}
		fragment, _ := cmd.Flags().GetString("topic")
		return browse.Run(store, fragment)
	},
}

func init() {
	browseCmd.Flags().String("topic", "", "initial fragment, e.g. #minimum_wage")
	rootCmd.AddCommand(browseCmd)
}
