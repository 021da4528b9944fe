package cmd

import (
	"context"
	"fmt"

	"github.com/nkuebler/portfolio/internal/config"
	"github.com/nkuebler/portfolio/internal/content"
	"github.com/nkuebler/portfolio/internal/logging"
	"github.com/nkuebler/portfolio/internal/progress"
	"github.com/nkuebler/portfolio/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
// Without --verbose the logger level follows log_level.
func loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `portfolio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	if !verbose {
		logging.FromContext(ctx).SetLevel(logging.ParseLevel(cfg.LogLevel))
	}
	return cfg, nil
}

// loadContent reads the content file and applies the configured title and
// owner.
func loadContent(cfg *config.Config) (*content.Site, error) {
	s, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, err
	}
	s.ApplyOverrides(cfg.Site.Title, cfg.Site.Owner)
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content %s: %w", cfg.ContentFile, err)
	}
	return s, nil
}

// siteOptions maps the config onto generator options.
func siteOptions(cfg *config.Config, outputDir string, rep progress.Reporter, liveReload bool) site.Options {
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	return site.Options{
		OutputDir:    outputDir,
		PublicDir:    cfg.PublicDir,
		ContentDir:   cfg.ContentDir,
		Include:      cfg.Assets.Include,
		Exclude:      cfg.Assets.Exclude,
		WasmPath:     cfg.Client.Wasm,
		WasmExecPath: cfg.Client.WasmExec,
		Marquee:      cfg.MarqueeOptions(),
		Intro:        cfg.IntroTiming(),
		LiveReload:   liveReload,
		Reporter:     rep,
	}
}

// buildSite generates the site and logs how long it took.
func buildSite(ctx context.Context, s *content.Site, opts site.Options) (int, error) {
	logger := logging.FromContext(ctx)
	opts.Logger = logger

	gen, err := site.New(s, opts)
	if err != nil {
		return 0, err
	}
	timer := logging.Start(logger)
	n, err := gen.Generate(ctx)
	if err != nil {
		return 0, fmt.Errorf("generating site: %w", err)
	}
	timer.Done("site generated", "pages", n, "dir", opts.OutputDir)
	return n, nil
}
