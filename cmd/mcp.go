package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/on-the-issues/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the topic dataset to AI agents: listing topics, reading both columns of a topic, highlighting text and searching quotes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := loadStore(cfg)
		if err != nil {
			return err
		}

		mcpserver.Version = Version

		// stdout carries the protocol.
		fmt.Fprintf(os.Stderr, "onissues MCP server started on stdio (data=%s, topics=%d)\n", cfg.DataFile, store.Len())

		srv := mcpserver.NewServer(store)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
