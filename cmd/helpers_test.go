package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/nkuebler/portfolio/internal/config"
	"github.com/nkuebler/portfolio/internal/logging"
	"github.com/nkuebler/portfolio/internal/progress"
)

func withConfigFile(t *testing.T, contents string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yml")
	if contents != "" {
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	old := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = old })
}

func TestLoadConfigAppliesLogLevel(t *testing.T) {
	withConfigFile(t, "log_level: warn\n")

	logger := logging.New(&bytes.Buffer{}, log.InfoLevel)
	ctx := logging.WithLogger(context.Background(), logger)

	cfg, err := loadConfig(ctx)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if logger.GetLevel() != log.WarnLevel {
		t.Errorf("logger level = %v, want warn", logger.GetLevel())
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	withConfigFile(t, "server:\n  port: 0\n")

	_, err := loadConfig(context.Background())
	if err == nil || !strings.Contains(err.Error(), "server.port") {
		t.Fatalf("loadConfig error = %v, want server.port error", err)
	}
}

func TestLoadContentOverrides(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ContentFile = filepath.Join(t.TempDir(), "missing.yml")
	cfg.Site.Title = "Studio K"

	s, err := loadContent(cfg)
	if err != nil {
		t.Fatalf("loadContent: %v", err)
	}
	if s.Title != "Studio K" {
		t.Errorf("Title = %q, want Studio K", s.Title)
	}
	if len(s.Projects) == 0 {
		t.Error("expected built-in projects")
	}
}

func TestSiteOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Marquee.BaseSpeed = 90
	cfg.Client.WasmExec = "wasm_exec.js"

	opts := siteOptions(cfg, "", progress.Nop{}, true)
	if opts.OutputDir != cfg.OutputDir {
		t.Errorf("OutputDir = %q, want %q", opts.OutputDir, cfg.OutputDir)
	}
	if opts.Marquee.BaseSpeed != 90 {
		t.Errorf("Marquee.BaseSpeed = %v, want 90", opts.Marquee.BaseSpeed)
	}
	if opts.WasmExecPath != "wasm_exec.js" || opts.WasmPath != "portfolio.wasm" {
		t.Errorf("client paths = %q, %q", opts.WasmPath, opts.WasmExecPath)
	}
	if !opts.LiveReload {
		t.Error("LiveReload not carried over")
	}
	if opts.Intro.Duration != cfg.IntroTiming().Duration {
		t.Errorf("Intro.Duration = %v", opts.Intro.Duration)
	}

	if got := siteOptions(cfg, "out", progress.Nop{}, false).OutputDir; got != "out" {
		t.Errorf("override OutputDir = %q, want out", got)
	}
}

func TestBuildSite(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ContentFile = ""
	cfg.ContentDir = filepath.Join(dir, "content")
	cfg.PublicDir = filepath.Join(dir, "public")
	cfg.OutputDir = filepath.Join(dir, "dist")
	cfg.Client.Wasm = ""

	s, err := loadContent(cfg)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.New(&buf, log.DebugLevel))
	n, err := buildSite(ctx, s, siteOptions(cfg, "", progress.Nop{}, false))
	if err != nil {
		t.Fatalf("buildSite: %v", err)
	}
	if n < 6 {
		t.Errorf("pages = %d, want at least 6", n)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "index.html")); err != nil {
		t.Errorf("index.html: %v", err)
	}
	if !strings.Contains(buf.String(), "site generated") {
		t.Errorf("log missing timer line:\n%s", buf.String())
	}
}
