package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nkuebler/portfolio/internal/config"
	"github.com/nkuebler/portfolio/internal/logging"
	"github.com/nkuebler/portfolio/internal/progress"
	"github.com/nkuebler/portfolio/internal/reload"
	"github.com/nkuebler/portfolio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and serve it locally with live reload",
	Long: `Generates the site, serves it with clean URLs plus the gallery and stage APIs,
and rebuilds and reloads open pages when content or media change.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port for the local server (defaults to server.port)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("no-reload", false, "disable live reload")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger := logging.FromContext(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}
	if open, _ := cmd.Flags().GetBool("open"); open {
		cfg.Server.Open = true
	}
	if noReload, _ := cmd.Flags().GetBool("no-reload"); noReload {
		cfg.Server.LiveReload = false
	}

	s, err := loadContent(cfg)
	if err != nil {
		return err
	}
	opts := siteOptions(cfg, "", progress.NewReporter(), cfg.Server.LiveReload)
	if _, err := buildSite(ctx, s, opts); err != nil {
		return err
	}

	var hub *reload.Hub
	if cfg.Server.LiveReload {
		hub = reload.NewHub(logger)
	}
	srv := server.New(server.Config{
		Port:     cfg.Server.Port,
		SiteDir:  cfg.OutputDir,
		AllowAll: cfg.Server.AllowAllOrigins,
	}, s, hub, logger)

	if hub != nil {
		w, err := newSiteWatcher(cfg, srv, hub, logger)
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		defer w.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	fmt.Printf("Serving %s at %s\n", cfg.OutputDir, srv.URL())
	if cfg.Server.Open {
		server.OpenBrowser(srv.URL())
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newSiteWatcher rebuilds the site when content or media change, then tells
// open pages to reload. A rebuild that fails keeps the previous output.
func newSiteWatcher(cfg *config.Config, srv *server.Server, hub *reload.Hub, logger *log.Logger) (*reload.Watcher, error) {
	paths := []string{cfg.ContentFile, cfg.ContentDir, cfg.PublicDir}
	if cfg.Client.Wasm != "" {
		paths = append(paths, cfg.Client.Wasm)
	}
	if cfgFile != "" {
		paths = append(paths, cfgFile)
	}

	rebuild := func(ctx context.Context, changed []string) {
		logger.Info("change detected", "files", len(changed), "first", filepath.Base(changed[0]))

		next, err := config.Load(cfgFile)
		if err == nil {
			err = next.Validate()
		}
		if err != nil {
			logger.Error("reloading config", "err", err)
			return
		}
		// The server keeps its port and output dir until restart.
		next.OutputDir = cfg.OutputDir
		next.Server = cfg.Server

		s, err := loadContent(next)
		if err != nil {
			logger.Error("reloading content", "err", err)
			return
		}
		if _, err := buildSite(ctx, s, siteOptions(next, "", progress.Nop{}, true)); err != nil {
			logger.Error("rebuilding site", "err", err)
			return
		}
		srv.SetSite(s)
		logger.Debug("reload sent", "pages", hub.Broadcast(reload.MessageReload))
	}

	return reload.NewWatcher(reload.WatcherConfig{
		Paths:  paths,
		Ignore: []string{cfg.OutputDir},
	}, rebuild, logger)
}
