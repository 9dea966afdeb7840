package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/saree-gallery/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing saree search and lookup tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signalContext()
		defer stop()

		// Stdout carries the protocol, so no progress bar here.
		cat, _, buildErr := buildCatalog(ctx, cfg, false)
		if buildErr != nil {
			if ctx.Err() != nil {
				return buildErr
			}
			fmt.Fprintf(os.Stderr, "Warning: catalog build failed: %v\n", buildErr)
			fmt.Fprintf(os.Stderr, "Every tool will report this error.\n")
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		if cat != nil {
			fmt.Fprintf(os.Stderr, "gallery MCP server started on stdio (source=%s, sarees=%d)\n", cfg.Source, cat.Len())
		}

		srv := mcpserver.NewServer(cat, buildErr)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
