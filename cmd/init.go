package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nkuebler/portfolio/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize portfolio configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site and writes portfolio.yml (or the file named by --config).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
