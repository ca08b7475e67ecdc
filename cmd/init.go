package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/on-the-issues/internal/config"
	"github.com/ziadkadry99/on-the-issues/internal/topic"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize onissues configuration with an interactive wizard",
	Long: `Runs an interactive wizard that writes .onissues.yml, then creates a
starter topic dataset at the configured path if none exists yet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		return writeStarter(cfg.DataFile)
	},
}

// writeStarter writes the embedded starter dataset unless path already exists.
func writeStarter(path string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Dataset %s already exists, leaving it unchanged.\n", path)
		return nil
	}
	if err := os.WriteFile(path, topic.Starter(), 0o644); err != nil {
		return fmt.Errorf("writing starter dataset: %w", err)
	}
	fmt.Printf("Starter dataset written to %s\n", path)
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
