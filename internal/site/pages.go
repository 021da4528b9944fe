package site

import (
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nkuebler/portfolio/internal/chrome"
	"github.com/nkuebler/portfolio/internal/content"
	"github.com/nkuebler/portfolio/internal/gallery"
)

// pageData is what the layout and every page template receive.
type pageData struct {
	Title     string
	SiteTitle string
	Owner     string
	BasePath  string
	Page      string
	Nav       []navLink
	Body      bodyAttrs

	Home     *homeData
	Concepts []conceptTile
	Work     *workData
	About    *content.About
	Contact  *content.Contact
	Resume   *content.Resume
}

// bodyAttrs are emitted as data-* attributes for the browser client.
type bodyAttrs struct {
	Base       string
	Wasm       string
	Speed      string
	Hover      string
	Threshold  string
	IntroFade  string
	IntroEnd   string
	LiveReload bool
}

type navLink struct {
	ID     string
	Label  string
	Href   string
	Active bool
	Sparks []sparkView
}

type sparkView struct {
	Style template.CSS
}

type homeData struct {
	Tagline string
	Items   []carouselItem
}

type carouselItem struct {
	Title    string
	Subtitle string
	Image    string
	Href     string
	Clone    bool
}

type conceptTile struct {
	Index    int
	Title    string
	Subtitle string
	Thumb    string
	Fit      string
	Media    string
	MediaSrc string
	IsVideo  bool
}

type workData struct {
	Slug     string
	Subtitle string
	Summary  string
	Hero     *content.Figure
	Sections []workSection
	Markdown template.HTML
}

type workSection struct {
	Heading string
	Body    template.HTML
	Figures []content.Figure
	Video   string
}

// buildPages assembles the data for every HTML file in the site.
func (g *Generator) buildPages() ([]page, error) {
	s := g.site
	pages := []page{
		g.newPage("index.html", "home", "index", s.Title),
		g.newPage("concepts.html", "concepts", "concepts", "Concepts"),
		g.newPage("about.html", "about", "about", "About"),
		g.newPage("contact.html", "contact", "contact", "Contact"),
		g.newPage("resume.html", "resume", "resume", s.Resume.Heading),
		g.newPage("404.html", "notfound", "notfound", "Not found"),
	}

	pages[0].data.Home = g.homeData(pages[0].data.BasePath)
	pages[1].data.Concepts = conceptTiles(s.Concepts, pages[1].data.BasePath)

	about := s.About
	about.Photo = assetURL(pages[2].data.BasePath, about.Photo)
	pages[2].data.About = &about

	contact := s.Contact
	pages[3].data.Contact = &contact

	resume := s.Resume
	if resume.Heading == "" {
		resume.Heading = "Resume"
		pages[4].data.Title = resume.Heading
	}
	resume.PDF = assetURL(pages[4].data.BasePath, resume.PDF)
	pages[4].data.Resume = &resume

	for _, p := range s.Projects {
		wp, err := g.workPage(p)
		if err != nil {
			return nil, err
		}
		pages = append(pages, wp)
	}
	return pages, nil
}

func (g *Generator) newPage(path, tmpl, id, title string) page {
	base := basePathFor(path)
	return page{
		path:     path,
		template: tmpl,
		data: pageData{
			Title:     title,
			SiteTitle: g.site.Title,
			Owner:     g.site.Owner,
			BasePath:  base,
			Page:      id,
			Nav:       g.navLinks(path, base),
			Body:      g.bodyAttrs(base),
		},
	}
}

func (g *Generator) bodyAttrs(base string) bodyAttrs {
	m := g.opts.Marquee
	var wasm string
	if g.opts.WasmPath != "" {
		wasm = filepath.Base(g.opts.WasmPath)
	}
	return bodyAttrs{
		Base:       base,
		Wasm:       wasm,
		Speed:      formatFloat(m.BaseSpeed),
		Hover:      formatFloat(m.HoverMultiplier),
		Threshold:  formatFloat(m.DragThreshold),
		IntroFade:  strconv.FormatInt(g.opts.Intro.FadeAt.Milliseconds(), 10),
		IntroEnd:   strconv.FormatInt(g.opts.Intro.Duration.Milliseconds(), 10),
		LiveReload: g.opts.LiveReload,
	}
}

// navLinks renders the top-right nav for one page. Each page gets its own
// Sparkifier since every page carries its own copy of the nav markup.
func (g *Generator) navLinks(path, base string) []navLink {
	links := make([]chrome.NavLink, 0, len(g.site.Nav))
	for _, item := range g.site.Nav {
		links = append(links, chrome.NavLink{
			ID:    "nav-" + slugify(item.Label),
			Label: item.Label,
			Href:  item.Href,
		})
	}

	sparked := make(map[string][]chrome.Spark)
	for _, sl := range chrome.NewSparkifier(nil).Sparkify(links) {
		sparked[sl.ID] = sl.Sparks
	}

	out := make([]navLink, 0, len(links))
	for _, l := range links {
		nl := navLink{
			ID:     l.ID,
			Label:  l.Label,
			Href:   linkURL(base, l.Href),
			Active: l.Href == path,
		}
		for _, sp := range sparked[l.ID] {
			nl.Sparks = append(nl.Sparks, sparkView{Style: sparkStyle(sp)})
		}
		out = append(out, nl)
	}
	return out
}

func sparkStyle(sp chrome.Spark) template.CSS {
	return template.CSS(fmt.Sprintf("--sx:%s;--sy:%s;--dx:%s;--dy:%s;--delay:%dms",
		sp.SX, sp.SY, sp.DX, sp.DY, sp.Delay.Milliseconds()))
}

// homeData lists the projects twice; the second copy makes the strip seamless
// and is hidden from assistive tech.
func (g *Generator) homeData(base string) *homeData {
	h := &homeData{Tagline: g.site.Tagline}
	for _, clone := range []bool{false, true} {
		for _, p := range g.site.Projects {
			h.Items = append(h.Items, carouselItem{
				Title:    p.Title,
				Subtitle: p.Subtitle,
				Image:    assetURL(base, p.Image),
				Href:     base + p.Href(),
				Clone:    clone,
			})
		}
	}
	return h
}

func conceptTiles(entries []gallery.Entry, base string) []conceptTile {
	tiles := make([]conceptTile, 0, len(entries))
	for i, e := range entries {
		tiles = append(tiles, conceptTile{
			Index:    i,
			Title:    e.Title,
			Subtitle: e.Subtitle,
			Thumb:    assetURL(base, e.Thumb),
			Fit:      string(e.ThumbFit()),
			Media:    string(e.Media),
			MediaSrc: assetURL(base, e.MediaSrc),
			IsVideo:  e.IsVideo(),
		})
	}
	return tiles
}

// workPage renders a project. A markdown case study in content_dir/work
// replaces the built-in sections.
func (g *Generator) workPage(p content.Project) (page, error) {
	pg := g.newPage(p.Href(), "work", "work", p.Title)
	base := pg.data.BasePath

	w := &workData{Slug: p.Slug, Subtitle: p.Subtitle, Summary: p.Summary, Hero: p.Hero}

	cs, err := g.caseStudy(p.Slug)
	if err != nil {
		return page{}, err
	}
	if cs != nil {
		if cs.Title != "" {
			pg.data.Title = cs.Title
		} else {
			pg.data.Title = extractTitle(cs.Body, p.Title)
		}
		if cs.Summary != "" {
			w.Summary = cs.Summary
		}
		if cs.Hero != nil {
			w.Hero = cs.Hero
		}
		html, err := g.renderMarkdown(stripTitle(cs.Body))
		if err != nil {
			return page{}, fmt.Errorf("case study %s: %w", p.Slug, err)
		}
		w.Markdown = html
	} else {
		for _, s := range p.Sections {
			body, err := g.renderMarkdown(s.Body)
			if err != nil {
				return page{}, fmt.Errorf("project %s section %q: %w", p.Slug, s.Heading, err)
			}
			ws := workSection{Heading: s.Heading, Body: body, Video: assetURL(base, s.Video)}
			for _, f := range s.Figures {
				f.Src = assetURL(base, f.Src)
				ws.Figures = append(ws.Figures, f)
			}
			w.Sections = append(w.Sections, ws)
		}
	}

	if w.Hero != nil {
		hero := *w.Hero
		hero.Src = assetURL(base, hero.Src)
		w.Hero = &hero
	}

	pg.data.Work = w
	return pg, nil
}

func (g *Generator) caseStudy(slug string) (*content.CaseStudy, error) {
	if g.opts.ContentDir == "" {
		return nil, nil
	}
	cs, err := content.ReadCaseStudy(filepath.Join(g.opts.ContentDir, "work"), slug)
	if errors.Is(err, content.ErrNoCaseStudy) {
		return nil, nil
	}
	return cs, err
}

// missingMedia lists root-relative media the site references that are not in
// the public directory.
func (g *Generator) missingMedia() []string {
	if g.opts.PublicDir == "" {
		return nil
	}
	if _, err := os.Stat(g.opts.PublicDir); err != nil {
		return nil
	}

	var refs []string
	s := g.site
	refs = append(refs, s.About.Photo, s.Resume.PDF)
	for _, p := range s.Projects {
		refs = append(refs, p.Image)
		if p.Hero != nil {
			refs = append(refs, p.Hero.Src)
		}
		for _, sec := range p.Sections {
			refs = append(refs, sec.Video)
			for _, f := range sec.Figures {
				refs = append(refs, f.Src)
			}
		}
	}
	for _, e := range s.Concepts {
		refs = append(refs, e.Thumb, e.MediaSrc)
	}

	seen := make(map[string]bool)
	var missing []string
	for _, ref := range refs {
		if !isRootRelative(ref) || seen[ref] {
			continue
		}
		seen[ref] = true
		if _, err := os.Stat(filepath.Join(g.opts.PublicDir, filepath.FromSlash(ref[1:]))); err != nil {
			missing = append(missing, ref)
		}
	}
	return missing
}

// assetURL makes a root-relative media path relative to the page so the
// output works from any mount point.
func assetURL(base, src string) string {
	if !isRootRelative(src) {
		return src
	}
	return base + src[1:]
}

// linkURL prefixes site-relative nav targets with the page's base path.
func linkURL(base, href string) string {
	if href == "" || strings.Contains(href, ":") || strings.HasPrefix(href, "#") {
		return href
	}
	if strings.HasPrefix(href, "//") {
		return href
	}
	return base + strings.TrimPrefix(href, "/")
}

func isRootRelative(s string) bool {
	return strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//")
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case b.Len() > 0:
			b.WriteByte('-')
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
