package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/nkuebler/portfolio/internal/chrome"
	"github.com/nkuebler/portfolio/internal/content"
	"github.com/nkuebler/portfolio/internal/logging"
	"github.com/nkuebler/portfolio/internal/marquee"
	"github.com/nkuebler/portfolio/internal/progress"
)

// Options controls where the site is read from and written to.
type Options struct {
	OutputDir  string
	PublicDir  string
	ContentDir string
	Include    []string
	Exclude    []string

	// WasmPath and WasmExecPath point at the optional browser client.
	WasmPath     string
	WasmExecPath string

	Marquee marquee.Options
	Intro   chrome.IntroTiming

	// LiveReload makes pages connect to the reload websocket.
	LiveReload bool

	Reporter progress.Reporter
	Logger   *log.Logger
}

// Generator renders a content.Site into a static HTML site.
type Generator struct {
	site  *content.Site
	opts  Options
	md    goldmark.Markdown
	pages map[string]*template.Template
}

// New parses the templates and prepares the markdown renderer.
func New(site *content.Site, opts Options) (*Generator, error) {
	if site == nil {
		return nil, errors.New("site content is required")
	}
	if opts.OutputDir == "" {
		return nil, errors.New("output directory is required")
	}
	if opts.Reporter == nil {
		opts.Reporter = progress.Nop{}
	}

	pages, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	return &Generator{site: site, opts: opts, md: md, pages: pages}, nil
}

// parseTemplates clones the layout once per page template.
func parseTemplates() (map[string]*template.Template, error) {
	layout, err := template.New("layout").Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}

	out := make(map[string]*template.Template, len(pageTemplates))
	for name, src := range pageTemplates {
		t, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

// Generate builds the full static site. Returns the number of pages generated.
func (g *Generator) Generate(ctx context.Context) (int, error) {
	logger := g.opts.Logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}

	if err := os.MkdirAll(g.opts.OutputDir, 0o755); err != nil {
		return 0, err
	}

	pages, err := g.buildPages()
	if err != nil {
		return 0, err
	}

	rep := g.opts.Reporter
	total := len(pages) + 4
	rep.Start(total)
	defer rep.Finish()
	step := 0

	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		step++
		rep.Update(step, p.path)
		if err := g.writePage(p); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", p.path, err)
		}
		logger.Debug("wrote page", "path", p.path)
	}

	step++
	rep.Update(step, "style.css")
	if err := os.WriteFile(filepath.Join(g.opts.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}

	step++
	rep.Update(step, "app.js")
	if err := os.WriteFile(filepath.Join(g.opts.OutputDir, "app.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}

	step++
	rep.Update(step, "gallery.json")
	if err := WriteManifest(BuildManifest(g.site), filepath.Join(g.opts.OutputDir, "gallery.json")); err != nil {
		return 0, fmt.Errorf("writing gallery manifest: %w", err)
	}

	step++
	rep.Update(step, "assets")
	copied, err := g.copyAssets(ctx)
	if err != nil {
		return 0, fmt.Errorf("copying assets: %w", err)
	}
	if err := g.copyClient(); err != nil {
		return 0, fmt.Errorf("copying client: %w", err)
	}

	for _, missing := range g.missingMedia() {
		logger.Warn("referenced media not found", "src", missing)
	}

	logger.Debug("site generated", "pages", len(pages), "assets", copied)
	return len(pages), nil
}

// page is one HTML file to render.
type page struct {
	path     string
	template string
	data     pageData
}

func (g *Generator) writePage(p page) error {
	tmpl, ok := g.pages[p.template]
	if !ok {
		return fmt.Errorf("unknown template %q", p.template)
	}

	outPath := filepath.Join(g.opts.OutputDir, filepath.FromSlash(p.path))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", p.data); err != nil {
		return err
	}
	return os.WriteFile(outPath, buf.Bytes(), 0o644)
}

// renderMarkdown converts markdown to HTML.
func (g *Generator) renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(rewriteMDLinks(buf.String())), nil
}

// basePathFor returns the relative prefix from an output page to the site
// root, e.g. "../" for work/ringallets.html.
func basePathFor(relPath string) string {
	return strings.Repeat("../", strings.Count(relPath, "/"))
}

// extractTitle pulls the first # heading from markdown content, or falls back
// to the fallback.
func extractTitle(markdown, fallback string) string {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return fallback
}

// stripTitle removes the first # heading, which the page header already shows.
func stripTitle(markdown string) string {
	lines := strings.Split(markdown, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "# ") {
			return strings.Join(append(lines[:i:i], lines[i+1:]...), "\n")
		}
	}
	return markdown
}

// rewriteMDLinks changes links between case studies from .md to .html.
func rewriteMDLinks(content string) string {
	result := strings.ReplaceAll(content, `.md"`, `.html"`)
	return strings.ReplaceAll(result, `.md#`, `.html#`)
}
