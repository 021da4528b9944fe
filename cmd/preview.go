package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nkuebler/portfolio/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the home marquee in the terminal",
	Long:  `Runs the marquee engine over the project titles in the terminal. Use left/right to drag, h to hover, q to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Context())
		if err != nil {
			return err
		}
		s, err := loadContent(cfg)
		if err != nil {
			return err
		}

		titles := make([]string, 0, len(s.Projects))
		for _, p := range s.Projects {
			titles = append(titles, p.Title)
		}
		return preview.Run(s.Title, titles, cfg.MarqueeOptions())
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
