package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/on-the-issues/internal/config"
)

var (
	cfgFile string
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "onissues",
	Short: "Topic-indexed comparison of two sets of opinions",
	Long: `On The Issues renders a single page that compares what friends and
classmates said about a list of topics with quotes pulled from scraped
articles. It builds the static page, serves a live preview, prepares the
scraped side from local article files, and exposes the dataset to terminal
and MCP clients.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
