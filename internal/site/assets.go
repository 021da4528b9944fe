package site

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/nkuebler/portfolio/internal/walker"
)

// copyAssets publishes the public directory into the output. Files whose
// content hash already matches the destination are left alone so rebuilds
// during live reload stay cheap. Returns the number of files written.
func (g *Generator) copyAssets(ctx context.Context) (int, error) {
	if g.opts.PublicDir == "" {
		return 0, nil
	}

	files, err := walker.Walk(walker.WalkerConfig{
		RootDir: g.opts.PublicDir,
		Include: g.opts.Include,
		Exclude: g.opts.Exclude,
	})
	if err != nil {
		return 0, err
	}
	if g.opts.Logger != nil {
		sum := walker.Summarize(files)
		g.opts.Logger.Debug("publishing assets", "files", sum.Files, "bytes", sum.Bytes,
			"images", sum.Kinds[walker.KindImage], "videos", sum.Kinds[walker.KindVideo])
	}

	written := 0
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		dst := filepath.Join(g.opts.OutputDir, filepath.FromSlash(f.RelPath))
		if hash, err := walker.HashFile(dst); err == nil && hash == f.ContentHash {
			continue
		}
		if err := copyFile(f.Path, dst); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// copyClient copies the wasm client and its loader when they exist.
func (g *Generator) copyClient() error {
	for _, src := range []string{g.opts.WasmPath, g.opts.WasmExecPath} {
		if src == "" {
			continue
		}
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}
		if err := copyFile(src, filepath.Join(g.opts.OutputDir, filepath.Base(src))); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
