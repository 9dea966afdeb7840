package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	verbose  bool
	logLevel string

	logCloser = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Searchable image gallery for a saree collection",
	Long: `Gallery builds a catalog of sarees from a static image tree (a local
directory or a hosted base URL), then publishes it as a searchable static
site with a photo viewer. The same catalog can be previewed locally or
exposed to AI agents via MCP.`,
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logCloser()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".gallery.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
}
