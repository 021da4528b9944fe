package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkuebler/portfolio/internal/progress"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Generate the static portfolio site",
	Long:  `Renders every page, the stylesheet, the client loader and the gallery manifest, then copies media from public_dir.`,
	RunE:  runSite,
}

func init() {
	siteCmd.Flags().String("output", "", "override output directory (defaults to output_dir)")
	siteCmd.Flags().String("title", "", "override the site title")
	siteCmd.Flags().String("owner", "", "override the site owner")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	s, err := loadContent(cfg)
	if err != nil {
		return err
	}
	title, _ := cmd.Flags().GetString("title")
	owner, _ := cmd.Flags().GetString("owner")
	s.ApplyOverrides(title, owner)

	outputDir, _ := cmd.Flags().GetString("output")
	opts := siteOptions(cfg, outputDir, progress.NewReporter(), false)

	pageCount, err := buildSite(ctx, s, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Static site generated: %s (%d pages)\n", opts.OutputDir, pageCount)
	return nil
}
