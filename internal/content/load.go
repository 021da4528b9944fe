package content

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/nkuebler/portfolio/internal/gallery"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML content file over the built-in defaults. Top-level keys
// present in the file replace the default value wholesale. A missing file
// yields the defaults.
func Load(path string) (*Site, error) {
	site := Default()
	if path == "" {
		return site, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return site, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, site); err != nil {
		return nil, fmt.Errorf("parsing content %s: %w", path, err)
	}
	return site, nil
}

// ApplyOverrides replaces the title and owner when non-empty.
func (s *Site) ApplyOverrides(title, owner string) {
	if t := strings.TrimSpace(title); t != "" {
		s.Title = t
	}
	if o := strings.TrimSpace(owner); o != "" {
		s.Owner = o
	}
}

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validate checks the content for mistakes that would produce a broken site.
func (s *Site) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("title is required")
	}

	seen := make(map[string]bool, len(s.Projects))
	for i, p := range s.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("projects[%d]: title is required", i)
		}
		if !slugRe.MatchString(p.Slug) {
			return fmt.Errorf("projects[%d]: invalid slug %q: use lowercase letters, digits and dashes", i, p.Slug)
		}
		if seen[p.Slug] {
			return fmt.Errorf("projects[%d]: duplicate slug %q", i, p.Slug)
		}
		seen[p.Slug] = true
	}

	for i, c := range s.Concepts {
		if strings.TrimSpace(c.Title) == "" {
			return fmt.Errorf("concepts[%d]: title is required", i)
		}
		if !c.Media.Valid() {
			return fmt.Errorf("concepts[%d] %q: invalid media %q: must be image or video", i, c.Title, c.Media)
		}
		if c.MediaSrc == "" {
			return fmt.Errorf("concepts[%d] %q: media_src is required", i, c.Title)
		}
		if c.Fit != "" && c.Fit != gallery.FitCover && c.Fit != gallery.FitContain {
			return fmt.Errorf("concepts[%d] %q: invalid fit %q: must be cover or contain", i, c.Title, c.Fit)
		}
	}

	for i, n := range s.Nav {
		if n.Label == "" || n.Href == "" {
			return fmt.Errorf("nav[%d]: label and href are required", i)
		}
	}

	return nil
}

// Project returns the project with the given slug.
func (s *Site) Project(slug string) (Project, bool) {
	for _, p := range s.Projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return Project{}, false
}
