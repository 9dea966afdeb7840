package cmd

import (
	"github.com/spf13/cobra"
	"github.com/ziadkadry99/saree-gallery/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize gallery configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to describe where your collection lives and generates a .gallery.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
